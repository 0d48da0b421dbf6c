package field

import (
	"github.com/fieldkit/fieldkit/internal/errors"
	"github.com/fieldkit/fieldkit/internal/store"
)

// ValueSelector projects the bound value out of a container state.
type ValueSelector func(store.State) string

// Dispatchers is the write half of a binding: the callbacks a bound renderer
// exposes, each backed by a dispatched action.
type Dispatchers struct {
	OnChange func(string)
}

// DispatchSelector builds the bound callbacks from the store's dispatch
// function. It runs once, at bind time.
type DispatchSelector func(store.Dispatch) Dispatchers

// TextFieldDispatchers is the canonical dispatch selector for the text-field
// feature: OnChange dispatches UPDATE_VALUE with the new value.
func TextFieldDispatchers(dispatch store.Dispatch) Dispatchers {
	return Dispatchers{
		OnChange: func(value string) {
			dispatch(store.UpdateValue(value))
		},
	}
}

// Binder derives a renderer's Value and OnChange slots from a shared state
// container. It owns no state of its own: the value is re-selected from the
// current container state on every render, and OnChange dispatches through
// the store. The store is injected explicitly at construction; nothing here
// reaches for an ambient global.
type Binder struct {
	renderer    Renderer
	store       *store.Store
	selectValue ValueSelector
	dispatchers Dispatchers
}

// Bind wraps a renderer with store-derived Value and OnChange slots.
func Bind(st *store.Store, r Renderer, selectValue ValueSelector, selectDispatch DispatchSelector) (*Binder, error) {
	if r == nil {
		return nil, errors.NewValidationError("renderer", errors.ErrNilRenderer.Error())
	}
	if st == nil {
		return nil, errors.NewValidationError("store", "must not be nil")
	}
	if selectValue == nil {
		selectValue = store.SelectTextFieldValue
	}
	if selectDispatch == nil {
		selectDispatch = TextFieldDispatchers
	}

	return &Binder{
		renderer:    r,
		store:       st,
		selectValue: selectValue,
		dispatchers: selectDispatch(st.Dispatch),
	}, nil
}

// Render implements Renderer. Value is selected from the container state at
// render time, so a render after a dispatch always reflects the new state.
func (b *Binder) Render(p Props) string {
	p.Value = b.selectValue(b.store.State())
	p.OnChange = b.dispatchers.OnChange
	return b.renderer.Render(p)
}

// OnChange delivers a change notification through the binding, exactly as if
// the rendered input element had invoked its OnChange slot. The interactive
// layer uses this when it owns the edit buffer itself.
func (b *Binder) OnChange(value string) {
	b.dispatchers.OnChange(value)
}

// Watch subscribes fn to container state changes and returns a cancel
// function. The UI loop uses this to schedule re-renders; delivery follows
// the store's per-subscriber ordering guarantees.
func (b *Binder) Watch(fn func(store.State)) func() {
	id := b.store.Subscribe(store.Listener(fn))
	return func() { b.store.Unsubscribe(id) }
}
