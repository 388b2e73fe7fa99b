package estimatecache

import "testing"

func TestSnapshotFromGraph_CapturesRegionsAndEdges(t *testing.T) {
	g := chainGraph(t, 3)

	snap := SnapshotFromGraph(g)
	if len(snap.Regions) != 3 {
		t.Fatalf("len(Regions) = %d, want 3", len(snap.Regions))
	}
	// Chain of 3 has 2 undirected pairs, stored as 4 directed edges.
	if len(snap.Edges) != 4 {
		t.Fatalf("len(Edges) = %d, want 4", len(snap.Edges))
	}
}

func TestApplySnapshot_RoundTripsEstimates(t *testing.T) {
	src := chainGraph(t, 3)
	src.Region(1).NumSelections = 7
	src.Region(1).CovGridCells[42] = struct{}{}

	snap := SnapshotFromGraph(src)

	dst := chainGraph(t, 3)
	ApplySnapshot(dst, snap)

	r := dst.Region(1)
	if r.NumSelections != 7 {
		t.Errorf("NumSelections = %d, want 7", r.NumSelections)
	}
	if _, ok := r.CovGridCells[42]; !ok {
		t.Errorf("CovGridCells should contain restored cell 42")
	}
}

func TestApplySnapshot_IgnoresOutOfRangeRegions(t *testing.T) {
	dst := chainGraph(t, 2)
	snap := Snapshot{Regions: []RegionSnapshot{{Index: 99, NumSelections: 5}}}
	ApplySnapshot(dst, snap) // must not panic
}
