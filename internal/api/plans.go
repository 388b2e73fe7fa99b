package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/latticeplan/syclop/internal/demo"
	"github.com/latticeplan/syclop/pkg/kinematic"
	"github.com/latticeplan/syclop/pkg/planrun"
	"github.com/latticeplan/syclop/pkg/syclop"
)

// createPlanRequest is the POST /plans body.
type createPlanRequest struct {
	Scenario string  `json:"scenario"`
	Seed     uint64  `json:"seed"`
	Timeout  string  `json:"timeout"` // parsed via time.ParseDuration; defaults to 5s
	CellSize float64 `json:"coverage_cell_size"`
}

// createPlanResponse is the POST /plans response body. RunID is empty when the
// server has no MongoDB recorder configured.
type createPlanResponse struct {
	RunID        string  `json:"run_id,omitempty"`
	Scenario     string  `json:"scenario"`
	Solved       bool    `json:"solved"`
	Exact        bool    `json:"exact"`
	GoalDistance float64 `json:"goal_distance,omitempty"`
	NumMotions   int     `json:"num_motions"`
	NumRegions   int     `json:"num_regions"`
	Lead         []int   `json:"lead,omitempty"`
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Scenario == "" {
		req.Scenario = "corridor"
	}
	if req.CellSize <= 0 {
		req.CellSize = 0.5
	}
	timeout := 5 * time.Second
	if req.Timeout != "" {
		d, err := time.ParseDuration(req.Timeout)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid timeout: "+err.Error())
			return
		}
		timeout = d
	}

	scn, err := demo.Build(req.Scenario, req.Seed)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := syclop.DefaultOptions()
	opts.Seed = req.Seed
	opts.Logger = s.Logger
	opts.CoverageCellSize = []float64{req.CellSize, req.CellSize}
	opts.Projector = func(state syclop.State) []float64 {
		p := state.(kinematic.Point)
		return []float64{p[0], p[1]}
	}

	planner, err := scn.NewPlanner(opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "build planner: "+err.Error())
		return
	}

	ctx := r.Context()
	var run *planrun.Run
	if s.Recorder != nil {
		run, err = s.Recorder.Start(ctx, req.Scenario, 1)
		if err != nil {
			s.Logger.Warnf("start run recording: %v", err)
			run = nil
		}
	}

	starts := newSingleStateSource(scn.Start)
	goals := newSingleStateSource(scn.Goal.Target)
	term := syclop.TerminationAfter(timeout)

	sol, err := planner.Solve(ctx, starts, goals, scn.Goal, term)
	if err != nil {
		writeError(w, planStatusFor(err), err.Error())
		return
	}

	if run != nil {
		if err := s.Recorder.RecordLead(ctx, run.ID, planner.Lead()); err != nil {
			s.Logger.Warnf("record lead for run %s: %v", run.ID, err)
		}
		if err := s.Recorder.Finish(ctx, run.ID, sol, planner.NumMotions()); err != nil {
			s.Logger.Warnf("finish run %s: %v", run.ID, err)
		}
	}

	resp := createPlanResponse{
		Scenario:   req.Scenario,
		NumMotions: planner.NumMotions(),
		NumRegions: planner.Graph().NumRegions(),
		Lead:       []int(planner.Lead()),
	}
	if run != nil {
		resp.RunID = run.ID
	}
	if sol != nil {
		resp.Solved = true
		resp.Exact = sol.Exact
		resp.GoalDistance = sol.GoalDistance
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	if s.Recorder == nil {
		writeError(w, http.StatusNotFound, "run recording is not configured on this server")
		return
	}
	id := chi.URLParam(r, "id")
	run, err := s.Recorder.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if run == nil {
		writeError(w, http.StatusNotFound, "no run with id "+id)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// planStatusFor maps a syclop error code to an HTTP status: insufficient
// planner input is a client error, anything else is a server error.
func planStatusFor(err error) int {
	switch syclop.GetCode(err) {
	case syclop.ErrCodeNoValidStarts, syclop.ErrCodeNoGoalRegion:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// singleStateSource implements both [syclop.StartStateSource] and
// [syclop.GoalStateSource], yielding p exactly once. It mirrors
// internal/cli's singleStateSource for the same demo-scenario shape.
type singleStateSource struct {
	state kinematic.Point
	used  bool
}

func newSingleStateSource(p kinematic.Point) *singleStateSource { return &singleStateSource{state: p} }

func (s *singleStateSource) NextStart() (syclop.State, bool) { return s.next() }
func (s *singleStateSource) NextGoal() (syclop.State, bool)  { return s.next() }
func (s *singleStateSource) next() (syclop.State, bool) {
	if s.used {
		return nil, false
	}
	s.used = true
	return s.state, true
}
