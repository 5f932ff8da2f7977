// Package resource provides the handle table that maps opaque integer
// handles to owned native engine instances.
//
// The managed side of the bridge never holds a pointer to a native instance.
// It holds a Handle, an integer token minted by the table at creation time
// and redeemed on every classify and on release. Handle 0 is reserved as the
// invalid sentinel: it is never minted, and every lookup of it fails.
//
// # Handle Table
//
//	table := resource.NewTable()
//
//	// Insert a value, get a handle
//	handle := table.Insert(typeID, instance)
//
//	// Redeem the handle
//	value, ok := table.GetTyped(handle, typeID)
//
//	// Remove and destroy (values implementing Dropper are dropped)
//	table.Remove(handle)
//
// Slots freed by Remove are reused for later inserts. The table does not
// detect redemption of a handle after its removal followed by slot reuse;
// at most one Remove per handle is the caller's contract, matching the
// one-shot destroy semantics of the engine lifecycle.
//
// # Observers
//
// Observers receive create and drop events, which the bridge uses for
// lifecycle logging.
//
// # Memory Management
//
// Instances are not garbage collected. The owner must Remove each handle it
// created, or Close the table to drop everything at once.
package resource
