// Package planrun records [syclop.Planner] runs to MongoDB: the
// decomposition signature used, every lead computed, and the final
// solved/approximate outcome, so a service can answer "what happened on
// run X" after the fact.
package planrun
