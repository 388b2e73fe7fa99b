package planrun

import (
	"testing"
	"time"

	"github.com/latticeplan/syclop/pkg/syclop"
)

func TestLeadRecordOf_CopiesRegionsIndependently(t *testing.T) {
	lead := syclop.Lead{1, 2, 3}
	ts := time.Now()
	rec := leadRecordOf(lead, ts)

	lead[0] = 99
	if rec.Regions[0] == 99 {
		t.Errorf("LeadRecord.Regions shares backing array with the source lead")
	}
	if !rec.RecordedAt.Equal(ts) {
		t.Errorf("RecordedAt = %v, want %v", rec.RecordedAt, ts)
	}
}

func TestLeadRecordOf_EmptyLead(t *testing.T) {
	rec := leadRecordOf(nil, time.Now())
	if len(rec.Regions) != 0 {
		t.Errorf("expected an empty Regions slice for a nil lead")
	}
}
