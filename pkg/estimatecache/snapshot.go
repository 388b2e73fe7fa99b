package estimatecache

import "github.com/latticeplan/syclop/pkg/syclop"

// RegionSnapshot captures the persisted fields of one [syclop.Region].
type RegionSnapshot struct {
	Index             int     `json:"index"`
	Volume            float64 `json:"volume"`
	PercentValidCells float64 `json:"percent_valid_cells"`
	FreeVolume        float64 `json:"free_volume"`
	NumSelections     int     `json:"num_selections"`
	CovGridCells      []int   `json:"cov_grid_cells"`
	Alpha             float64 `json:"alpha"`
	Weight            float64 `json:"weight"`
}

// EdgeSnapshot captures the persisted fields of one [syclop.Adjacency].
type EdgeSnapshot struct {
	Source            int     `json:"source"`
	Target            int     `json:"target"`
	Cost              float64 `json:"cost"`
	Empty             bool    `json:"empty"`
	NumSelections     int     `json:"num_selections"`
	NumLeadInclusions int     `json:"num_lead_inclusions"`
	CovGridCells      []int   `json:"cov_grid_cells"`
}

// Snapshot is the serializable content of a [syclop.DecompositionGraph]'s
// region and edge estimates, excluding motions (which are caller-owned and
// not round-tripped).
type Snapshot struct {
	Regions []RegionSnapshot `json:"regions"`
	Edges   []EdgeSnapshot   `json:"edges"`
}

// SnapshotFromGraph walks every region and outgoing edge of g and returns
// their current estimate state.
func SnapshotFromGraph(g *syclop.DecompositionGraph) Snapshot {
	var snap Snapshot
	var neighborBuf []int
	for i := 0; i < g.NumRegions(); i++ {
		r := g.Region(i)
		snap.Regions = append(snap.Regions, RegionSnapshot{
			Index:             r.Index,
			Volume:            r.Volume,
			PercentValidCells: r.PercentValidCells,
			FreeVolume:        r.FreeVolume,
			NumSelections:     r.NumSelections,
			CovGridCells:      cellKeys(r.CovGridCells),
			Alpha:             r.Alpha,
			Weight:            r.Weight,
		})

		neighborBuf = g.Neighbors(i)
		for _, j := range neighborBuf {
			a, ok := g.Edge(i, j)
			if !ok {
				continue
			}
			snap.Edges = append(snap.Edges, EdgeSnapshot{
				Source:            i,
				Target:            j,
				Cost:              a.Cost,
				Empty:             a.Empty,
				NumSelections:     a.NumSelections,
				NumLeadInclusions: a.NumLeadInclusions,
				CovGridCells:      cellKeys(a.CovGridCells),
			})
		}
	}
	return snap
}

// ApplySnapshot overwrites g's region and edge estimates with snap's
// values. g must have the same topology snap was taken from; regions or
// edges outside that topology are silently ignored.
func ApplySnapshot(g *syclop.DecompositionGraph, snap Snapshot) {
	for _, rs := range snap.Regions {
		if rs.Index < 0 || rs.Index >= g.NumRegions() {
			continue
		}
		r := g.Region(rs.Index)
		r.Volume = rs.Volume
		r.PercentValidCells = rs.PercentValidCells
		r.FreeVolume = rs.FreeVolume
		r.NumSelections = rs.NumSelections
		r.CovGridCells = cellSet(rs.CovGridCells)
		r.Alpha = rs.Alpha
		r.Weight = rs.Weight
	}
	for _, es := range snap.Edges {
		a, ok := g.Edge(es.Source, es.Target)
		if !ok {
			continue
		}
		a.Cost = es.Cost
		a.Empty = es.Empty
		a.NumSelections = es.NumSelections
		a.NumLeadInclusions = es.NumLeadInclusions
		a.CovGridCells = cellSet(es.CovGridCells)
	}
}

func cellKeys(cells map[int]struct{}) []int {
	keys := make([]int, 0, len(cells))
	for k := range cells {
		keys = append(keys, k)
	}
	return keys
}

func cellSet(keys []int) map[int]struct{} {
	set := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}
