package buildinfo

import "testing"

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "v1.2.3", "none"
	if got := Short(); got != "v1.2.3" {
		t.Errorf("Short() = %q", got)
	}
	Version, Commit = "v1.2.3", "0123456789abcdef"
	if got := Short(); got != "v1.2.3 (0123456)" {
		t.Errorf("Short() = %q", got)
	}
}
