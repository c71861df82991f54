package grid

// Option configures the grid sinks.
type Option func(*options)

type options struct {
	rowSize int
	columns int
	plain   bool
}

// WithRowSize overrides [DefaultRowSize] for badge sections.
func WithRowSize(n int) Option { return func(o *options) { o.rowSize = n } }

// WithColumns sets how many sections or blocks are placed side by side in
// SVG output.
func WithColumns(n int) Option { return func(o *options) { o.columns = n } }

// WithPlain disables terminal styling.
func WithPlain() Option { return func(o *options) { o.plain = true } }

func newOptions(defColumns int, opts ...Option) options {
	o := options{rowSize: DefaultRowSize, columns: defColumns}
	for _, opt := range opts {
		opt(&o)
	}
	if o.columns <= 0 {
		o.columns = defColumns
	}
	return o
}
