package field

import (
	"github.com/fieldkit/fieldkit/internal/errors"
)

// Tracker owns the current value of a wrapped renderer as local, ephemeral
// state. It is the only layer with memory: a change notification sets the
// value, and the next render feeds it back into the wrapped renderer along
// with the tracker's own change handler.
//
// The handler is created once at construction and reused for every render,
// so the wrapped renderer sees a stable OnChange identity and equal Props
// keep producing equal trees.
//
// Tracker is not safe for concurrent use. Drive it from the UI loop; to
// update from a background goroutine, go through the store instead.
type Tracker struct {
	renderer Renderer
	value    string
	handler  func(string)
	hook     func(string)
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithInitialValue sets the tracker's starting value. The default is "".
func WithInitialValue(value string) TrackerOption {
	return func(t *Tracker) { t.value = value }
}

// WithChangeHook registers a callback invoked after each accepted change.
// The UI loop uses this to schedule a re-render.
func WithChangeHook(hook func(string)) TrackerOption {
	return func(t *Tracker) { t.hook = hook }
}

// NewTracker wraps a renderer with local value state.
func NewTracker(r Renderer, opts ...TrackerOption) (*Tracker, error) {
	if r == nil {
		return nil, errors.NewValidationError("renderer", errors.ErrNilRenderer.Error())
	}

	t := &Tracker{renderer: r}
	for _, opt := range opts {
		opt(t)
	}
	t.handler = func(value string) {
		t.value = value
		if t.hook != nil {
			t.hook(value)
		}
	}
	return t, nil
}

// Value returns the current tracked value.
func (t *Tracker) Value() string {
	return t.value
}

// HandleChange records a change notification. It cannot fail; setting the
// value is a pure in-memory assignment.
func (t *Tracker) HandleChange(value string) {
	t.handler(value)
}

// Render implements Renderer. The Value and OnChange slots are overridden
// with the tracked state and the stable handler; all other slots pass
// through untouched.
func (t *Tracker) Render(p Props) string {
	p.Value = t.value
	p.OnChange = t.handler
	return t.renderer.Render(p)
}
