// Package paint holds the cell buffer and the contexts widgets paint through.
//
// A paint pass starts with an Unsized context wrapping the frame's Buffer.
// Each node converts it into a Sized context covering its own size and
// position; all writes through a Sized context use node-local coordinates
// and are dropped when they fall outside the node or the active clip
// region.
package paint
