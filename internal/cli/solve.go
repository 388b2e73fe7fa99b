package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/latticeplan/syclop/internal/demo"
	"github.com/latticeplan/syclop/pkg/estimatecache"
	"github.com/latticeplan/syclop/pkg/kinematic"
	"github.com/latticeplan/syclop/pkg/observability"
	"github.com/latticeplan/syclop/pkg/planrun"
	"github.com/latticeplan/syclop/pkg/syclop"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	scenario  string
	seed      uint64
	timeout   time.Duration
	config    string
	redisAddr string
	mongoURI  string
	cellSize  float64
	dotOut    string
	tui       bool
}

// solveCommand creates the solve command for running a planner against a
// demo scenario.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{
		scenario: "corridor",
		seed:     1,
		timeout:  5 * time.Second,
		cellSize: 0.5,
	}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run a SYCLOP-guided planner against a demo scenario",
		Long: fmt.Sprintf(`Run a SYCLOP-guided planner against a demo scenario.

Available scenarios: %s`, strings.Join(demo.Names(), ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.scenario, "scenario", opts.scenario, "demo scenario to solve")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "RNG seed for reproducible runs")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "wall-clock budget before giving up")
	cmd.Flags().StringVar(&opts.config, "config", "", "path to a TOML file overriding planner options")
	cmd.Flags().Float64Var(&opts.cellSize, "coverage-cell-size", opts.cellSize, "per-dimension coverage grid cell size")
	cmd.Flags().StringVar(&opts.redisAddr, "cache-redis-addr", "", "Redis address for region/edge estimate caching (disabled if empty)")
	cmd.Flags().StringVar(&opts.mongoURI, "record-mongo-uri", "", "MongoDB URI to record this run's leads and outcome (disabled if empty)")
	cmd.Flags().StringVar(&opts.dotOut, "dot-out", "", "write the final decomposition graph as a DOT file to this path")
	cmd.Flags().BoolVar(&opts.tui, "tui", false, "show a live bubbletea progress view instead of a spinner")

	return cmd
}

// runSolve builds the requested scenario, runs a planner against it, and
// prints the outcome.
func (c *CLI) runSolve(ctx context.Context, opts solveOpts) error {
	scn, err := demo.Build(opts.scenario, opts.seed)
	if err != nil {
		return err
	}

	planOpts, err := c.loadPlannerOptions(opts)
	if err != nil {
		return err
	}

	planner, err := scn.NewPlanner(planOpts)
	if err != nil {
		return fmt.Errorf("build planner: %w", err)
	}

	var recorder *planrun.Recorder
	var run *planrun.Run
	if opts.mongoURI != "" {
		r, run0, err := c.startRecording(ctx, opts)
		if err != nil {
			c.Logger.Warnf("run recording disabled: %v", err)
		} else {
			recorder, run = r, run0
		}
	}

	if opts.redisAddr != "" {
		if err := c.restoreCache(ctx, opts, planner); err != nil {
			c.Logger.Warnf("estimate cache restore skipped: %v", err)
		}
	}

	term := syclop.TerminationAfter(opts.timeout)
	starts := onceStartSource(scn.Start)
	goals := onceGoalSource(scn.Goal.Target)

	observability.Solve().OnSolveStart(ctx, opts.scenario)
	solveStart := time.Now()

	var sol *syclop.Solution
	if opts.tui {
		sol, err = c.runSolveWithTUI(ctx, scn.Name, planner, starts, goals, scn.Goal, term)
	} else {
		sol, err = c.runSolveWithSpinner(ctx, opts.scenario, planner, starts, goals, scn.Goal, term)
	}
	observability.Solve().OnSolveComplete(ctx, opts.scenario, sol != nil, planner.NumMotions(), time.Since(solveStart), err)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	printSolution(scn.Name, sol, planner)

	if recorder != nil && run != nil {
		if err := recorder.RecordLead(ctx, run.ID, planner.Lead()); err != nil {
			c.Logger.Warnf("record lead: %v", err)
		}
		if err := recorder.Finish(ctx, run.ID, sol, planner.NumMotions()); err != nil {
			c.Logger.Warnf("record finish: %v", err)
		}
	}

	if opts.dotOut != "" {
		if err := c.writeDot(planner, opts.dotOut); err != nil {
			c.Logger.Warnf("write dot: %v", err)
		}
	}

	return nil
}

// runSolveWithSpinner runs planner.Solve in the foreground behind a simple
// terminal spinner.
func (c *CLI) runSolveWithSpinner(ctx context.Context, scenario string, planner *syclop.Planner, starts syclop.StartStateSource, goals syclop.GoalStateSource, goal syclop.Goal, term syclop.TerminationCondition) (*syclop.Solution, error) {
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Solving %s...", scenario))
	spinner.Start()

	prog := newProgress(c.Logger)
	sol, err := planner.Solve(ctx, starts, goals, goal, term)
	if err != nil {
		spinner.StopWithError("Solve failed")
		return nil, err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("explored %d motions", planner.NumMotions()))
	return sol, nil
}

// runSolveWithTUI runs planner.Solve on a background goroutine while a
// bubbletea program renders live progress in the foreground.
func (c *CLI) runSolveWithTUI(ctx context.Context, scenario string, planner *syclop.Planner, starts syclop.StartStateSource, goals syclop.GoalStateSource, goal syclop.Goal, term syclop.TerminationCondition) (*syclop.Solution, error) {
	solveCh := make(chan solveDoneMsg, 1)
	go func() {
		sol, err := planner.Solve(ctx, starts, goals, goal, term)
		solveCh <- solveDoneMsg{sol: sol, err: err}
	}()

	model := NewSolveProgressModel(scenario, planner, solveCh)
	finalModel, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, fmt.Errorf("run tui: %w", err)
	}

	result := finalModel.(SolveProgressModel).result
	return result.sol, result.err
}

func (c *CLI) loadPlannerOptions(opts solveOpts) (syclop.Options, error) {
	planOpts := syclop.DefaultOptions()
	if opts.config != "" {
		loaded, err := syclop.LoadOptionsTOML(opts.config)
		if err != nil {
			return syclop.Options{}, fmt.Errorf("load config: %w", err)
		}
		planOpts = loaded
	}
	planOpts.Seed = opts.seed
	planOpts.Logger = c.Logger
	planOpts.CoverageCellSize = []float64{opts.cellSize, opts.cellSize}
	planOpts.Projector = func(s syclop.State) []float64 {
		p := s.(kinematic.Point)
		return []float64{p[0], p[1]}
	}
	return planOpts, nil
}

func printSolution(scenario string, sol *syclop.Solution, p *syclop.Planner) {
	if sol == nil {
		printWarning("No solution found for %s within the time budget", scenario)
		printDetail("Explored %d motions", p.NumMotions())
		return
	}
	if sol.Exact {
		printSuccess("Solved %s exactly with %d states", scenario, len(sol.Path))
	} else {
		printWarning("Solved %s approximately (goal distance %.3f) with %d states", scenario, sol.GoalDistance, len(sol.Path))
	}
	printDetail("Explored %d motions across %d regions", p.NumMotions(), p.Graph().NumRegions())
	printDetail("Lead: %v", p.Lead())
}

func (c *CLI) startRecording(ctx context.Context, opts solveOpts) (*planrun.Recorder, *planrun.Run, error) {
	coll, err := connectMongoCollection(ctx, opts.mongoURI)
	if err != nil {
		return nil, nil, err
	}
	recorder := planrun.NewRecorder(coll)
	run, err := recorder.Start(ctx, opts.scenario, 1)
	if err != nil {
		return nil, nil, fmt.Errorf("start run: %w", err)
	}
	return recorder, run, nil
}

func (c *CLI) restoreCache(ctx context.Context, opts solveOpts, planner *syclop.Planner) error {
	rdb, err := connectRedis(opts.redisAddr)
	if err != nil {
		return err
	}
	defer rdb.Close()
	cache := estimatecache.New(rdb, time.Hour, appName)
	restored, err := cache.Restore(ctx, opts.scenario, planner.Graph())
	if err != nil {
		return err
	}
	if restored {
		observability.Cache().OnCacheHit(ctx, "estimate")
		planner.MarkGraphReady()
		c.Logger.Infof("restored cached region/edge estimates for %s", opts.scenario)
	} else {
		observability.Cache().OnCacheMiss(ctx, "estimate")
	}
	return nil
}

func (c *CLI) writeDot(planner *syclop.Planner, path string) error {
	return writeDotFile(planner.Graph(), planner.Lead(), path)
}

// onceStartSource returns a [syclop.StartStateSource] that yields p exactly
// once.
func onceStartSource(p kinematic.Point) syclop.StartStateSource {
	return &singleStateSource{state: p}
}

// onceGoalSource returns a [syclop.GoalStateSource] that yields p exactly
// once.
func onceGoalSource(p kinematic.Point) syclop.GoalStateSource {
	return &singleStateSource{state: p}
}

// singleStateSource implements both [syclop.StartStateSource] and
// [syclop.GoalStateSource] by yielding a single fixed state once.
type singleStateSource struct {
	state kinematic.Point
	used  bool
}

func (s *singleStateSource) NextStart() (syclop.State, bool) {
	return s.next()
}

func (s *singleStateSource) NextGoal() (syclop.State, bool) {
	return s.next()
}

func (s *singleStateSource) next() (syclop.State, bool) {
	if s.used {
		return nil, false
	}
	s.used = true
	return s.state, true
}
