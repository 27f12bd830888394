package field_test

import (
	"fmt"

	"github.com/katalvlaran/fpseq/field"
)

// ExampleParse shows in-field reduction of a literal and division.
func ExampleParse() {
	x, _ := field.Parse[field.P65521]("-1")
	half, _ := field.One[field.P65521]().Div(field.FromUint64[field.P65521](2))
	fmt.Println(x, x.Signed())
	fmt.Println(half, half.Add(half))
	// Output:
	// 65520 -1
	// 32761 1
}
