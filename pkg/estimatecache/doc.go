// Package estimatecache persists [syclop.DecompositionGraph] region and
// edge estimates to Redis, keyed by a caller-supplied decomposition
// signature, so a long-lived service can resume [syclop.Planner] setup
// without re-running free-volume sampling on every request.
package estimatecache
