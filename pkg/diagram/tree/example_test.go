package tree_test

import (
	"fmt"

	"github.com/kunhq/kundocs/pkg/diagram/tree"
)

func ExampleRenderText() {
	root := tree.Branch("prisma/", "Database layer",
		tree.Leaf("schema.prisma", "Models"),
		tree.Branch("migrations/", "",
			tree.Leaf("0001_init.sql", ""),
		),
	)
	fmt.Print(tree.RenderText(root, tree.WithPlain()))
	// Output:
	// prisma/ — Database layer
	// ├── schema.prisma — Models
	// └── migrations/
	//     └── 0001_init.sql
}

func ExampleLayout() {
	root := tree.Branch("A", "",
		tree.Leaf("B", ""),
		tree.Branch("C", "", tree.Leaf("D", ""), tree.Leaf("E", "")),
	)
	for _, r := range tree.Layout(root) {
		fmt.Printf("%s guides=%v continues=%v\n", r.Name, r.Guides, r.Continues)
	}
	// Output:
	// A guides=[] continues=false
	// B guides=[] continues=true
	// C guides=[] continues=false
	// D guides=[] continues=true
	// E guides=[] continues=false
}
