package planrun

import (
	"time"

	"github.com/latticeplan/syclop/pkg/syclop"
)

// LeadRecord is one lead computed over the course of a run.
type LeadRecord struct {
	Regions    []int     `bson:"regions" json:"regions"`
	RecordedAt time.Time `bson:"recorded_at" json:"recorded_at"`
}

// Run is the durable record of one [syclop.Planner.Solve] call.
type Run struct {
	ID                     string       `bson:"_id" json:"id"`
	DecompositionSignature string       `bson:"decomposition_signature" json:"decomposition_signature"`
	StartCount             int          `bson:"start_count" json:"start_count"`
	Leads                  []LeadRecord `bson:"leads" json:"leads"`
	Solved                 bool         `bson:"solved" json:"solved"`
	Exact                  bool         `bson:"exact" json:"exact"`
	GoalDistance           float64      `bson:"goal_distance" json:"goal_distance"`
	NumMotions             int          `bson:"num_motions" json:"num_motions"`
	StartedAt              time.Time    `bson:"started_at" json:"started_at"`
	FinishedAt             time.Time    `bson:"finished_at,omitempty" json:"finished_at,omitempty"`
}

// leadRecordOf converts a [syclop.Lead] into a [LeadRecord] stamped at
// recordedAt, copying the region slice so later mutation of lead by the
// caller cannot corrupt the stored history.
func leadRecordOf(lead syclop.Lead, recordedAt time.Time) LeadRecord {
	return LeadRecord{
		Regions:    append([]int(nil), lead...),
		RecordedAt: recordedAt,
	}
}
