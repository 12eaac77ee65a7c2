package geometry_test

import (
	"fmt"

	"github.com/matzehuels/tshape/pkg/geometry"
)

func ExampleBoundary_VerticalExtentAtCenterline() {
	b, _ := geometry.NewBoundary([]geometry.Point{
		{X: 0, Y: 5}, {X: 0, Y: -5}, {X: 0, Y: 3}, {X: 8, Y: 0},
	})

	h, err := b.VerticalExtentAtCenterline()
	fmt.Println("shoulder:", h, err)
	fmt.Println("width:", b.HorizontalExtent())
	// Output:
	// shoulder: 5 <nil>
	// width: 8
}
