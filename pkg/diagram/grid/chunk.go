// Package grid lays out short labels in fixed-size rows and columns: badge
// sections (rows of at most [DefaultRowSize] badges under a heading) and
// stacked blocks (side-by-side cards with bullet lists).
package grid

// DefaultRowSize is the number of badges per row in a section.
const DefaultRowSize = 3

// Chunk partitions items into consecutive groups of size elements. The last
// group may be shorter; order is preserved and empty input yields no groups.
// The groups share items' backing array. Chunk panics if size is not positive.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		panic("grid: chunk size must be positive")
	}
	out := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		out = append(out, items[i:min(i+size, len(items)):min(i+size, len(items))])
	}
	return out
}
