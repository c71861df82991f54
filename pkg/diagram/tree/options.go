package tree

// UnitWidth is the horizontal indentation per depth level, in pixels.
const UnitWidth = 24

// guideInset is how far left of its column's indentation a guide line sits.
const guideInset = 20

// GuideX returns the x offset of the vertical guide for column col.
func GuideX(col int) float64 {
	return float64(col*UnitWidth - guideInset)
}

// Option configures the tree sinks.
type Option func(*options)

type options struct {
	className string
	plain     bool
	title     string
}

// WithClassName adds a CSS class to the outermost HTML element.
func WithClassName(c string) Option { return func(o *options) { o.className = c } }

// WithPlain disables terminal styling in [RenderText].
func WithPlain() Option { return func(o *options) { o.plain = true } }

// WithTitle sets a heading rendered above the tree.
func WithTitle(t string) Option { return func(o *options) { o.title = t } }

func newOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
