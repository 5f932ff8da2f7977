package frame

import (
	bridge "github.com/wippyai/classifier-bridge"
	"github.com/wippyai/classifier-bridge/errors"
)

// Format identifies the pixel layout of a Buffer.
type Format uint8

const (
	// FormatRGB is interleaved 8-bit RGB, the only layout this contract
	// carries.
	FormatRGB Format = iota
)

// Buffer is a borrowed view over raw pixel memory plus dimensions. It does
// not own or copy the pixels.
type Buffer struct {
	pix    []byte
	width  int
	height int
	format Format
}

// WrapRGB builds a Buffer aliasing pix directly. Width and height are
// caller-validated upstream and passed through unchecked. A nil pix means
// the source buffer could not be mapped to a raw address.
func WrapRGB(pix []byte, width, height int) (*Buffer, error) {
	if pix == nil {
		return nil, errors.BufferUnmapped("pixel buffer has no backing memory")
	}
	return &Buffer{
		pix:    pix,
		width:  width,
		height: height,
		format: FormatRGB,
	}, nil
}

// FromByteBuffer builds a Buffer over a managed direct buffer's backing
// memory.
func FromByteBuffer(buf bridge.ByteBuffer, width, height int) (*Buffer, error) {
	if buf == nil {
		return nil, errors.NilValue(errors.PhaseFrame, "image byte buffer")
	}
	return WrapRGB(buf.Bytes(), width, height)
}

// Pixels returns the borrowed pixel memory. The slice aliases the caller's
// buffer; it must not be retained past the enclosing classify call.
func (b *Buffer) Pixels() []byte { return b.pix }

func (b *Buffer) Width() int     { return b.width }
func (b *Buffer) Height() int    { return b.height }
func (b *Buffer) Format() Format { return b.format }
