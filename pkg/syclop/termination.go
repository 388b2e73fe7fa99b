package syclop

import "time"

// TerminationNever returns a [TerminationCondition] that never signals stop
// on its own; useful when the caller drives termination entirely through
// the ctx passed to [Planner.Solve].
func TerminationNever() TerminationCondition {
	return func() bool { return false }
}

// TerminationAfter returns a [TerminationCondition] that reports true once
// d has elapsed since the call to TerminationAfter.
func TerminationAfter(d time.Duration) TerminationCondition {
	deadline := time.Now().Add(d)
	return func() bool { return time.Now().After(deadline) }
}

// TerminationAfterMotions returns a [TerminationCondition] bound to p that
// reports true once p has produced at least n motions in total.
func TerminationAfterMotions(p *Planner, n int) TerminationCondition {
	return func() bool { return p.NumMotions() >= n }
}
