package field

// decorator forwards all slots to the wrapped renderer but overrides the
// Prefix and Postfix slots with fixed sub-trees.
type decorator struct {
	renderer Renderer
	prefix   string
	postfix  string
}

// Decorate wraps a renderer so that its Prefix and Postfix slots are always
// the fixed sub-trees supplied here. The fixed values win over anything the
// caller passes in Props: decoration is deliberately non-overridable, so a
// decorated field looks the same no matter who renders it. Callers wanting a
// different decoration compose a different decorator; there is no branching
// on decoration variants inside a single renderer.
func Decorate(r Renderer, prefix, postfix string) Renderer {
	return &decorator{renderer: r, prefix: prefix, postfix: postfix}
}

// Render implements Renderer.
func (d *decorator) Render(p Props) string {
	p.Prefix = d.prefix
	p.Postfix = d.postfix
	return d.renderer.Render(p)
}
