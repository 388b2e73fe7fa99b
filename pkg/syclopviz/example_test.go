package syclopviz_test

import (
	"fmt"
	"strings"

	"github.com/latticeplan/syclop/pkg/syclop"
	"github.com/latticeplan/syclop/pkg/syclopviz"
)

// lineDecomp is a 1-D chain of n regions, used only to exercise rendering.
type lineDecomp struct{ n int }

func (l lineDecomp) NumRegions() int                 { return l.n }
func (l lineDecomp) LocateRegion(s syclop.State) int { return 0 }
func (l lineDecomp) RegionVolume(r int) float64      { return 1.0 }
func (l lineDecomp) Neighbors(r int, buf []int) []int {
	if r > 0 {
		buf = append(buf, r-1)
	}
	if r < l.n-1 {
		buf = append(buf, r+1)
	}
	return buf
}

func ExampleToDOT() {
	g := syclop.NewDecompositionGraph(lineDecomp{n: 4})
	lead := syclop.Lead{0, 1, 2, 3}

	dot := syclopviz.ToDOT(g, lead, nil, syclopviz.Options{})

	fmt.Println("has header:", strings.Contains(dot, "digraph SYCLOP"))
	fmt.Println("lead edges highlighted:", strings.Contains(dot, "color=red"))
	// Output:
	// has header: true
	// lead edges highlighted: true
}
