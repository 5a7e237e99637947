package randomwalk_test

import (
	"fmt"

	"github.com/katalvlaran/wayfinder/builder"
	"github.com/katalvlaran/wayfinder/randomwalk"
)

// ExampleWalk shows the only route a line graph allows; on richer graphs
// the result depends on the injected random source.
func ExampleWalk() {
	g, _ := builder.Line(5)
	res, _ := randomwalk.Walk(g, 2, randomwalk.WithSeed(42))
	fmt.Println(res.Path, "attempts:", res.Attempts)
	// Output: [0 1 2 3 4] attempts: 1
}
