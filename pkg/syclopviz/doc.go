// Package syclopviz renders a [syclop.DecompositionGraph], its current
// [syclop.Lead], and its availability distribution as a Graphviz DOT graph,
// mirroring the teacher's pkg/render/nodelink DOT/SVG pipeline.
package syclopviz
