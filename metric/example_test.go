package metric_test

import (
	"fmt"

	"github.com/katalvlaran/irneighbors/metric"
)

// ExampleParse binds an alignment metric to a pool and scores one pair.
func ExampleParse() {
	m, err := metric.Parse("alignment")
	if err != nil {
		fmt.Println(err)
		return
	}
	score, _ := m.Bind([]string{"CAR", "CAT"})
	d, ok, _ := score(0, 1, 10)
	fmt.Println(m.Name(), d, ok)
	// Output:
	// alignment 6 true
}

// ExampleBoundedEditDistance shows the cutoff short-circuit.
func ExampleBoundedEditDistance() {
	fmt.Println(metric.BoundedEditDistance("CASSLG", "CASRLG", 1))
	fmt.Println(metric.BoundedEditDistance("CASSLG", "CA", 1))
	// Output:
	// 1 true
	// 4 false
}
