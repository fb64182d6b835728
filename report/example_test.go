package report_test

import (
	"fmt"

	"github.com/MrLoydHD/mei-aa-p1/clique"
	"github.com/MrLoydHD/mei-aa-p1/report"
)

func ExampleFormatClique() {
	c := &clique.Clique{Vertices: []int{2, 0, 1}, Weight: 18}
	fmt.Print(report.FormatClique(c, "Backtracking"))

	// Output:
	// -=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=
	//
	//  Backtracking
	//
	//  Max Weight Clique:
	//    [2 0 1]
	//
	//  Max Weight:
	//    18
	//
	// -=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=
}
