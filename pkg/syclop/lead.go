package syclop

import "container/heap"

// Lead is a sequence of region indices [r0, ..., rL] with r0 == start and
// rL == goal, every consecutive pair adjacent in the [DecompositionGraph]
// (or the single element [start] when start == goal) (spec §3).
type Lead []int

// LeadBuilder computes a [Lead] on a [DecompositionGraph], choosing between
// a shortest-path search and a randomized depth-first search (spec §4.F).
type LeadBuilder struct {
	graph            *DecompositionGraph
	rng              *RNG
	probShortestPath float64
}

// newLeadBuilder constructs a LeadBuilder over graph using rng and the
// configured probability of preferring the shortest-path branch.
func newLeadBuilder(graph *DecompositionGraph, rng *RNG, probShortestPath float64) *LeadBuilder {
	return &LeadBuilder{graph: graph, rng: rng, probShortestPath: probShortestPath}
}

// Build computes a lead from startRegion to goalRegion and returns it,
// updating NumLeadInclusions on every still-empty edge the lead traverses
// (spec §4.F step 4).
func (lb *LeadBuilder) Build(startRegion, goalRegion int) Lead {
	if startRegion == goalRegion {
		return Lead{startRegion}
	}

	var lead Lead
	if lb.rng.Uniform01() < lb.probShortestPath {
		lead = lb.shortestPath(startRegion, goalRegion)
	}
	if lead == nil {
		// Either the random branch was chosen, or the shortest-path
		// search found no path at all — Open Question (a) is resolved by
		// falling back to random DFS rather than keeping a stale lead.
		lead = lb.randomDFS(startRegion, goalRegion)
	}
	if lead == nil {
		return nil
	}

	for i := 0; i < len(lead)-1; i++ {
		a, ok := lb.graph.Edge(lead[i], lead[i+1])
		if !ok {
			continue
		}
		if a.Empty {
			a.NumLeadInclusions++
			lb.graph.UpdateEdge(a)
		}
	}
	return lead
}

// heuristicFor returns the admissible heuristic used to speed up the
// shortest-path search, or a zero heuristic (making the search Dijkstra)
// if the decomposition does not provide one.
func (lb *LeadBuilder) heuristicFor(goalRegion int) func(int) float64 {
	if h, ok := lb.graph.decomp.(HeuristicDecomposition); ok {
		return func(r int) float64 { return h.Heuristic(r, goalRegion) }
	}
	return func(int) float64 { return 0 }
}

// pqItem is one entry of the shortest-path search's open set.
type pqItem struct {
	region   int
	priority float64
	seq      int // insertion order, for stable tie-breaking
	index    int
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index, pq[j].index = i, j
}
func (pq *priorityQueue) Push(x any) {
	item := x.(*pqItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// shortestPath runs a best-first (A*-equivalent) search over the graph
// using current edge costs, breaking ties by visitation order, and
// reconstructs the path by backtracking predecessors (spec §4.F step 2).
// Returns nil if goalRegion is unreachable from startRegion.
func (lb *LeadBuilder) shortestPath(startRegion, goalRegion int) Lead {
	n := lb.graph.NumRegions()
	dist := make([]float64, n)
	visited := make([]bool, n)
	parent := make([]int, n)
	for i := range dist {
		dist[i] = -1
		parent[i] = -1
	}
	dist[startRegion] = 0
	h := lb.heuristicFor(goalRegion)

	pq := &priorityQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &pqItem{region: startRegion, priority: h(startRegion), seq: seq})
	seq++

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*pqItem)
		if visited[cur.region] {
			continue
		}
		visited[cur.region] = true
		if cur.region == goalRegion {
			return reconstructPath(parent, startRegion, goalRegion)
		}
		for _, next := range lb.graph.Neighbors(cur.region) {
			if visited[next] {
				continue
			}
			a, ok := lb.graph.Edge(cur.region, next)
			if !ok {
				continue
			}
			nd := dist[cur.region] + a.Cost
			if dist[next] < 0 || nd < dist[next] {
				dist[next] = nd
				parent[next] = cur.region
				heap.Push(pq, &pqItem{region: next, priority: nd + h(next), seq: seq})
				seq++
			}
		}
	}
	return nil
}

func reconstructPath(parent []int, start, goal int) Lead {
	var rev Lead
	for r := goal; ; r = parent[r] {
		rev = append(rev, r)
		if r == start {
			break
		}
		if parent[r] < 0 {
			return nil
		}
	}
	lead := make(Lead, len(rev))
	for i, r := range rev {
		lead[len(rev)-1-i] = r
	}
	return lead
}

// randomDFS performs a randomized depth-first search from startRegion,
// exploring children in a uniformly random order produced by a
// swap-and-pick (Fisher-Yates-style) selection, and terminates as soon as
// goalRegion is discovered (spec §4.F step 3). Every discovered neighbor's
// parent is assigned at discovery time. Returns nil if the search
// exhausts the reachable component without finding goalRegion.
func (lb *LeadBuilder) randomDFS(startRegion, goalRegion int) Lead {
	n := lb.graph.NumRegions()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	parent[startRegion] = startRegion

	stack := []int{startRegion}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var neighbors []int
		for _, u := range lb.graph.Neighbors(v) {
			if parent[u] < 0 {
				neighbors = append(neighbors, u)
				parent[u] = v
			}
		}
		for i := 0; i < len(neighbors); i++ {
			choice := lb.rng.UniformInt(i, len(neighbors)-1)
			if neighbors[choice] == goalRegion {
				return reconstructDFSPath(parent, startRegion, goalRegion)
			}
			stack = append(stack, neighbors[choice])
			neighbors[i], neighbors[choice] = neighbors[choice], neighbors[i]
		}
	}
	return nil
}

func reconstructDFSPath(parent []int, start, goal int) Lead {
	var rev Lead
	r := goal
	for r != start {
		rev = append(rev, r)
		r = parent[r]
	}
	rev = append(rev, start)
	lead := make(Lead, len(rev))
	for i, v := range rev {
		lead[len(rev)-1-i] = v
	}
	return lead
}
