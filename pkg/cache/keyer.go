package cache

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	Large     bool    `json:"large,omitempty"`
	NoIcons   bool    `json:"no_icons,omitempty"`
	Plain     bool    `json:"plain,omitempty"`
	Lang      string  `json:"lang,omitempty"`
	ClassName string  `json:"class_name,omitempty"`
	Scale     float64 `json:"scale,omitempty"`
	Layout    string  `json:"layout,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey returns the key for a document hash rendered with opts.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "artifact:<hash>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", docHash, opts)
}

// ScopedKeyer prefixes every key of an inner Keyer, so several previews can
// share one redis database without colliding.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner (DefaultKeyer when nil) with prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(docHash, opts)
}
