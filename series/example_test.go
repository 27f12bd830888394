package series_test

import (
	"fmt"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/series"
)

// ExampleFixed_Compose composes 1/(1−x) with x/(1−x).
func ExampleFixed_Compose() {
	geom := series.Geometric[field.P65521]()
	got, err := geom.Compose(geom.Rshift().Truncate(8))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(got)
	// Output: 1,1,2,4,8,16,32,64
}

// ExampleFixed_Sqrt recovers the Catalan numbers from C² = (C − 1)/x.
func ExampleFixed_Sqrt() {
	cat, _ := series.Parse[field.Rat]("1,1,2,5,14,42,132,429")
	root, _ := cat.Lshift().Sqrt()
	fmt.Println(root)
	// Output: 1,1,2,5,14,42,132
}

// ExampleApplyChain runs a named operator chain.
func ExampleApplyChain() {
	ones := series.Geometric[field.P65521]().Truncate(6)
	got, _ := series.ApplyChain(ones, []string{"stirling"})
	fmt.Println(got)
	// Output: 1,1,2,5,15,52
}
