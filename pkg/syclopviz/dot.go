package syclopviz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/latticeplan/syclop/pkg/syclop"
)

// Options configures decomposition-graph rendering.
type Options struct {
	// ShowWeights includes each region's current Weight in its label.
	ShowWeights bool
}

// ToDOT renders g as a Graphviz DOT digraph. If lead is non-nil, its edges
// are drawn in red and its regions outlined bold. If avail is non-nil, the
// regions it currently holds are filled light blue, matching the "regions
// eligible for expansion right now" reading of [syclop.AvailabilityBuilder].
func ToDOT(g *syclop.DecompositionGraph, lead syclop.Lead, avail *syclop.DiscreteDistribution, opts Options) string {
	onLead := make(map[int]bool, len(lead))
	leadEdges := make(map[[2]int]bool, len(lead))
	for i, r := range lead {
		onLead[r] = true
		if i > 0 {
			leadEdges[[2]int{lead[i-1], r}] = true
		}
	}
	available := make(map[int]bool)
	if avail != nil {
		for _, k := range avail.Keys() {
			available[k] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph SYCLOP {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n\n")

	for i := 0; i < g.NumRegions(); i++ {
		r := g.Region(i)
		label := fmt.Sprintf("%d", r.Index)
		if opts.ShowWeights {
			label = fmt.Sprintf("%d\\nw=%.3g", r.Index, r.Weight)
		}
		attrs := []string{fmt.Sprintf("label=%q", label)}
		switch {
		case available[i]:
			attrs = append(attrs, "fillcolor=lightblue")
		case onLead[i]:
			attrs = append(attrs, "fillcolor=lightyellow")
		}
		if onLead[i] {
			attrs = append(attrs, "penwidth=2")
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", i, joinAttrs(attrs))
	}

	buf.WriteString("\n")
	var neighborBuf []int
	seen := make(map[[2]int]bool)
	for i := 0; i < g.NumRegions(); i++ {
		neighborBuf = g.Neighbors(i)
		for _, j := range neighborBuf {
			key := [2]int{i, j}
			if seen[[2]int{j, i}] {
				continue // draw each undirected pair once
			}
			seen[key] = true
			attrs := []string{"dir=none"}
			if leadEdges[key] || leadEdges[[2]int{j, i}] {
				attrs = []string{"dir=none", "color=red", "penwidth=2"}
			}
			fmt.Fprintf(&buf, "  %d -> %d [%s];\n", i, j, joinAttrs(attrs))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func joinAttrs(attrs []string) string {
	out := attrs[0]
	for _, a := range attrs[1:] {
		out += ", " + a
	}
	return out
}

// RenderSVG renders a DOT graph produced by [ToDOT] to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, syclop.Wrap(syclop.ErrCodeInvalidDecomposition, err, "init graphviz")
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, syclop.Wrap(syclop.ErrCodeInvalidDecomposition, err, "parse DOT")
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, syclop.Wrap(syclop.ErrCodeInvalidDecomposition, err, "render SVG")
	}
	return buf.Bytes(), nil
}
