package sampling_test

import (
	"fmt"

	"github.com/katalvlaran/lvsample/sampling"
)

func ExampleRandom() {
	a, _ := sampling.Random(10, 3, 42)
	b, _ := sampling.Random(10, 3, 42)
	fmt.Println(len(a), fmt.Sprint(a) == fmt.Sprint(b))
	// Output: 3 true
}
