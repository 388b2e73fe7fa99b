// Package decompose provides concrete [syclop.Decomposition] implementations.
//
// [Grid] partitions an axis-aligned bounding box of ℝⁿ into a uniform grid
// of cells, each cell a region. Region indices are the row-major flattening
// of the per-dimension cell coordinate. Neighbors are the up-to-2n
// axis-adjacent cells.
package decompose
