// Package component implements the component layer of the widget tree.
//
// A component is user code bound to a subtree: it owns a state value S,
// accepts messages of type M and reacts to input, ticks and resizes. The
// typed Component[S, M] interface is wrapped by Erase into an AnyComponent so
// that components of different types share one Registry.
//
// # Checkout and checkin
//
// The Registry owns every component and its state. To dispatch to a component
// the driver checks it out, which moves the component and state out of their
// slot and leaves the slot hollow. The registry stays free for other lookups
// while the dispatch runs, and the driver checks the pair back in afterwards.
// Prototype slots manufacture a fresh pair on every checkout and are never
// checked back in.
//
// # Messages
//
// An Emitter sends a value to a component id from any goroutine. Emit never
// blocks. EmitAsync waits for the receiver to take the message.
//
// # Associated events
//
// A child notifies its parent by publishing a named value from its state with
// Publish. The notification is queued as an AssociatedEvent and delivered by
// the driver after the child's dispatch returns, most recent first.
//
// # Contract violations
//
// Checking out an unknown id, checking in to a prototype or unknown slot,
// and a state of the wrong type reaching a component are programming errors.
// They panic with an *errors.ContractError instead of returning an error.
package component
