package grid_test

import (
	"fmt"

	"github.com/kunhq/kundocs/pkg/diagram/grid"
)

func ExampleChunk() {
	fmt.Println(grid.Chunk([]string{"x1", "x2", "x3", "x4", "x5"}, grid.DefaultRowSize))
	fmt.Println(len(grid.Chunk([]string{}, grid.DefaultRowSize)))
	// Output:
	// [[x1 x2 x3] [x4 x5]]
	// 0
}
