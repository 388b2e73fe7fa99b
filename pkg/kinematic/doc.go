// Package kinematic provides a small 2D single-integrator control system
// used as a concrete [syclop.Extender], [syclop.StateSampler], and
// [syclop.StateValidityChecker] for demos and integration tests.
//
// [System] tracks, per decomposition region, the motions an extension has
// produced there, so [System.SelectAndExtend] can honor SYCLOP's
// region-restricted extension contract without any help from the caller.
package kinematic
