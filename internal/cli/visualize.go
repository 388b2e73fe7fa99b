package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/latticeplan/syclop/internal/demo"
	"github.com/latticeplan/syclop/pkg/httputil"
	"github.com/latticeplan/syclop/pkg/syclopviz"
)

// visualizeCommand creates the visualize command for rendering a demo
// scenario's decomposition graph without running a full solve.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		scenario string
		seed     uint64
		output   string
		format   string
		weights  bool
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "visualize",
		Short: "Render a demo scenario's decomposition graph as DOT or SVG",
		Long: fmt.Sprintf(`Render a demo scenario's decomposition graph as DOT or SVG.

Available scenarios: %s`, strings.Join(demo.Names(), ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVisualize(scenario, seed, output, format, weights, noCache)
		},
	}

	cmd.Flags().StringVar(&scenario, "scenario", "corridor", "demo scenario to visualize")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "RNG seed used to build the scenario")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (required)")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot or svg")
	cmd.Flags().BoolVar(&weights, "weights", false, "annotate each region with its current sampling weight")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "skip the on-disk render cache and always rebuild the graph")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// visualizeCacheTTL is how long a rendered graph is trusted before
// runVisualize rebuilds it from scratch. A decomposition graph for a given
// (scenario, seed, weights, format) is deterministic, so this is purely a
// disk-space/staleness tradeoff, not a correctness one.
const visualizeCacheTTL = 24 * time.Hour

func (c *CLI) runVisualize(scenario string, seed uint64, output, format string, weights, noCache bool) error {
	var cache *httputil.Cache
	if !noCache {
		disk, err := httputil.NewCache("", visualizeCacheTTL)
		if err != nil {
			c.Logger.Warnf("render cache disabled: %v", err)
		} else {
			cache = disk.Namespace("visualize:")
		}
	}
	cacheKey := fmt.Sprintf("%s:%d:%v:%s", scenario, seed, weights, format)

	var body []byte
	if cache != nil {
		var cached string
		if hit, err := cache.Get(cacheKey, &cached); err != nil {
			c.Logger.Debugf("render cache read failed: %v", err)
		} else if hit {
			body = []byte(cached)
			printDetail("using cached render (%s)", cache.Dir())
		}
	}

	var numRegions int
	if body == nil {
		scn, err := demo.Build(scenario, seed)
		if err != nil {
			return err
		}

		planOpts, err := c.loadPlannerOptions(solveOpts{seed: seed, cellSize: 0.5})
		if err != nil {
			return err
		}
		planner, err := scn.NewPlanner(planOpts)
		if err != nil {
			return fmt.Errorf("build planner: %w", err)
		}
		numRegions = planner.Graph().NumRegions()

		dot := syclopviz.ToDOT(planner.Graph(), nil, nil, syclopviz.Options{ShowWeights: weights})

		switch format {
		case "dot":
			body = []byte(dot)
		case "svg":
			svg, err := syclopviz.RenderSVG(dot)
			if err != nil {
				return fmt.Errorf("render svg: %w", err)
			}
			body = svg
		default:
			return fmt.Errorf("unknown format %q (want dot or svg)", format)
		}

		if cache != nil {
			if err := cache.Set(cacheKey, string(body)); err != nil {
				c.Logger.Debugf("render cache write failed: %v", err)
			}
		}
	}

	if err := os.WriteFile(output, body, 0o644); err != nil {
		return fmt.Errorf("write %s file %s: %w", format, output, err)
	}

	printSuccess("Wrote %s decomposition graph to %s", scenario, output)
	if numRegions > 0 {
		printDetail("%d regions", numRegions)
	}
	return nil
}
