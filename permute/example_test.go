package permute_test

import (
	"fmt"

	"github.com/katalvlaran/wayfinder/permute"
)

func ExampleAll() {
	for p := range permute.All(3) {
		fmt.Println(p)
	}
	// Output:
	// [1 2 3]
	// [1 3 2]
	// [3 1 2]
	// [3 2 1]
	// [2 3 1]
	// [2 1 3]
}
