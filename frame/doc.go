// Package frame provides the zero-copy frame descriptor passed to the
// native engine.
//
// A Buffer aliases the managed caller's pixel memory directly; construction
// never copies bytes. The pixel layout is fixed to interleaved 8-bit RGB for
// this contract.
//
// A Buffer is valid only for the duration of the classify call it was built
// for. The backing memory is owned by the caller and must stay unmoved until
// that call returns.
package frame
