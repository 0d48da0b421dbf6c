package field

import (
	"github.com/charmbracelet/lipgloss"
)

// cursorGlyph marks the insertion point at the end of the input element.
const cursorGlyph = "█"

// BaseStyles controls how each sub-element of the base renderer is drawn.
type BaseStyles struct {
	Label   lipgloss.Style
	Prefix  lipgloss.Style
	Input   lipgloss.Style
	Cursor  lipgloss.Style
	Postfix lipgloss.Style
}

// DefaultBaseStyles returns the unthemed styles: a bold label, a bordered
// input box, muted prefix/postfix lines.
func DefaultBaseStyles() BaseStyles {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	return BaseStyles{
		Label:  lipgloss.NewStyle().Bold(true),
		Prefix: muted,
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		Cursor:  lipgloss.NewStyle().Blink(true),
		Postfix: muted,
	}
}

// Base is the base renderer: a pure function from Props to a display tree
// containing, in order, the label, the prefix (when present), the input
// element bound to Value, and the postfix (when present). It holds no state;
// rendering equal Props twice yields equal trees.
type Base struct {
	// Width fixes the input element's inner width. Zero means natural width.
	Width  int
	Styles BaseStyles
}

// NewBase creates a base renderer with default styles.
func NewBase() *Base {
	return &Base{Styles: DefaultBaseStyles()}
}

// Render implements Renderer.
func (b *Base) Render(p Props) string {
	label := p.Label
	if label == "" {
		label = DefaultLabel
	}

	lines := make([]string, 0, 4)
	lines = append(lines, b.Styles.Label.Render(label))

	if p.Prefix != "" {
		lines = append(lines, b.Styles.Prefix.Render(p.Prefix))
	}

	input := b.Styles.Input
	if b.Width > 0 {
		input = input.Width(b.Width)
	}
	lines = append(lines, input.Render(p.Value+b.Styles.Cursor.Render(cursorGlyph)))

	if p.Postfix != "" {
		lines = append(lines, b.Styles.Postfix.Render(p.Postfix))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
