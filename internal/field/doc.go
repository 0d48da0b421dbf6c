// Package field implements the composition contract for the fieldkit text
// field: a pure base renderer plus a stack of wrappers that layer decoration,
// local value state, shared-store binding, and remote loading over it without
// the base renderer knowing about any of them.
//
// # Main Types
//
//   - [Props]: The per-render input record of named slots
//   - [Renderer]: The capability contract every layer implements and accepts
//   - [Base]: Stateless renderer producing the label/prefix/input/postfix tree
//   - [Decorate]: Wrapper injecting fixed prefix/postfix sub-trees
//   - [Tracker]: Wrapper owning the value as local, ephemeral state
//   - [Binder]: Wrapper deriving value and OnChange from a store.Store
//   - [Remote]: Wrapper fetching an initial value once per mount
//
// # Composition Model
//
// Data flows down: Binder (or Tracker) fills the Value and OnChange slots,
// Decorate fills Prefix and Postfix, Base turns the completed Props into a
// display tree. Control flows up: the interactive layer invokes OnChange,
// whichever wrapper owns the value records it, and the next render reflects
// it. Every layer both implements and accepts [Renderer], so wrappers stack
// in any order that type-checks; there is no inheritance and no slot
// discovery at runtime.
//
//	base := field.NewBase()
//	deco := field.Decorate(base, "$", ".00")
//	bound, _ := field.Bind(st, deco, store.SelectTextFieldValue, field.TextFieldDispatchers)
//	tree := bound.Render(field.Props{Label: "Amount"})
//
// # Threading
//
// Renderers and wrappers are driven from a single logical UI thread, the way
// a bubbletea Update loop does. Tracker is not safe for concurrent use; the
// store-backed layers inherit the store's own synchronization.
package field
