package partition_test

import (
	"fmt"

	"github.com/dvirbo/shapely/builder"
	"github.com/dvirbo/shapely/geometry"
	"github.com/dvirbo/shapely/partition"
)

// ExamplePartition cuts an L into two rectangles.
func ExamplePartition() {
	p := geometry.FromXY(0, 0, 2, 0, 2, 1, 1, 1, 1, 2, 0, 2)
	edges, err := partition.Partition(p)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(edges)
	// Output:
	// [(0,1)-(1,1)]
}

// ExampleSolve compares both strategies on a cross.
func ExampleSolve() {
	p, _ := builder.Plus(1, 1)
	for _, s := range []partition.Strategy{partition.Greedy, partition.Minimum} {
		res, err := partition.Solve(p, partition.WithStrategy(s))
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%s: %d cuts, %d rectangles\n", s, len(res.Edges), len(res.Rectangles))
	}
	// Output:
	// greedy: 4 cuts, 5 rectangles
	// minimum: 2 cuts, 3 rectangles
}

// ExampleRectangles checks a hand-made cut.
func ExampleRectangles() {
	p := geometry.FromXY(2, 0, 6, 0, 6, 4, 8, 4, 8, 6, 0, 6, 0, 4, 2, 4)
	rects, err := partition.Rectangles(p, []geometry.Segment{
		geometry.Seg(geometry.Pt(2, 4), geometry.Pt(6, 4)),
	})
	fmt.Println(len(rects), err)

	_, err = partition.Rectangles(p, nil)
	fmt.Println(err)
	// Output:
	// 2 <nil>
	// Rectangles: partition: face is not a rectangle
}
