package field

import (
	"github.com/fieldkit/fieldkit/internal/errors"
)

// DefaultLabel is rendered when the Label slot is absent.
const DefaultLabel = "Text Field"

// Props is the input record for one render pass: a mapping of named slots to
// values. Props is passed by value and never retained by renderers, so a
// given record is immutable for the duration of a render.
//
// Optional slots use the empty string as "absent": an absent slot must not
// appear in the rendered output (Label falls back to DefaultLabel instead).
type Props struct {
	// Value is the current text of the input element.
	Value string
	// OnChange is invoked with the new value when the user edits the field.
	// It is the only slot stateful wrappers require.
	OnChange func(string)
	// Label is the caption above the input. Empty renders DefaultLabel.
	Label string
	// Prefix is an optional sub-tree rendered before the input element.
	Prefix string
	// Postfix is an optional sub-tree rendered after the input element.
	Postfix string
}

// Notify delivers a change notification through the OnChange slot.
// Returns ErrMissingOnChange when no callback is wired, which means the
// record was rendered outside a Tracker or Binder.
func (p Props) Notify(value string) error {
	if p.OnChange == nil {
		return errors.ErrMissingOnChange
	}
	p.OnChange(value)
	return nil
}

// Renderer is the capability contract between composition layers: a pure
// mapping from an input record to a display tree. Rendering the same Props
// twice must yield the same tree; any state lives in the wrapper that fills
// the slots, never in the renderer.
//
// Wrappers declare this interface as the required capability of what they
// wrap, so a renderer missing the contract fails at compile time rather than
// at render time.
type Renderer interface {
	Render(p Props) string
}

// RenderFunc adapts a plain function to the Renderer interface.
type RenderFunc func(p Props) string

// Render implements Renderer.
func (f RenderFunc) Render(p Props) string {
	return f(p)
}
