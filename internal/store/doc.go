// Package store provides the shared state container for fieldkit.
//
// The container holds one state value per registered feature, keyed by name.
// All mutation is funneled through Dispatch: an action is reduced
// synchronously under the store lock, and the resulting state is delivered to
// subscribers afterwards. Renderers never mutate state directly; they read it
// through selectors and describe mutations as actions.
//
// # Main Types
//
//   - [State]: Immutable keyed mapping from feature name to feature state
//   - [Action]: Tagged record describing an intended mutation
//   - [Reducer]: Pure function producing the next feature state
//   - [Store]: The container: Dispatch, State, Subscribe, Close
//   - [Listener]: Function type for state-change subscribers
//
// # Delivery Semantics
//
// Dispatch is synchronous from the caller's point of view: the action is
// fully reduced before Dispatch returns. Subscribers are notified
// asynchronously relative to one another, each from its own delivery
// goroutine. Every subscriber observes every distinct state in dispatch
// order; no state is skipped or reordered for a single subscriber. Ordering
// between independent subscribers is unspecified.
//
// Reducers preserve reference identity for no-op updates: dispatching an
// action that leaves a feature state unchanged produces no new state and no
// notification, letting subscribers skip redundant work.
//
// # Basic Usage
//
//	st := store.New(logger)
//	st.RegisterFeature(store.FeatureTextField, store.NewTextFieldState(""), store.TextFieldReducer)
//
//	id := st.Subscribe(func(s store.State) {
//	    // react to the new state
//	})
//	defer st.Unsubscribe(id)
//
//	st.Dispatch(store.UpdateValue("hello"))
package store
