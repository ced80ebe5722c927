// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvcurrent/builder"
)

// ExampleBarbell builds two triangles joined through a single bridge vertex.
func ExampleBarbell() {
	g, err := builder.BuildGraph(nil, nil, builder.Barbell(3, 1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount())
	// Output: 7 8
}
