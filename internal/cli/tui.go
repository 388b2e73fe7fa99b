package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/latticeplan/syclop/pkg/syclop"
)

// tickMsg drives the progress model's periodic re-render.
type tickMsg time.Time

// solveDoneMsg signals that the background Solve call has returned.
type solveDoneMsg struct {
	sol *syclop.Solution
	err error
}

// SolveProgressModel is a bubbletea model showing live progress of a
// [syclop.Planner.Solve] call running in the background: elapsed time,
// motions explored, and the decomposition's region count.
type SolveProgressModel struct {
	scenario string
	planner  *syclop.Planner
	start    time.Time
	done     bool
	result   solveDoneMsg
	solveCh  chan solveDoneMsg
}

// NewSolveProgressModel wires a progress model to planner. solveCh must
// receive exactly one [solveDoneMsg] when the background Solve call
// finishes.
func NewSolveProgressModel(scenario string, planner *syclop.Planner, solveCh chan solveDoneMsg) SolveProgressModel {
	return SolveProgressModel{
		scenario: scenario,
		planner:  planner,
		start:    time.Now(),
		solveCh:  solveCh,
	}
}

func (m SolveProgressModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(), waitForSolve(m.solveCh))
}

func (m SolveProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case tickMsg:
		if m.done {
			return m, nil
		}
		return m, tickCmd()
	case solveDoneMsg:
		m.done = true
		m.result = msg
		return m, tea.Quit
	}
	return m, nil
}

func (m SolveProgressModel) View() string {
	elapsed := time.Since(m.start).Round(100 * time.Millisecond)
	if m.done {
		status := "no solution"
		if m.result.err != nil {
			status = fmt.Sprintf("error: %v", m.result.err)
		} else if m.result.sol != nil && m.result.sol.Exact {
			status = "solved exactly"
		} else if m.result.sol != nil {
			status = fmt.Sprintf("solved approximately (goal distance %.3f)", m.result.sol.GoalDistance)
		}
		return StyleSuccess.Render(fmt.Sprintf("[%s] %s — %d motions in %s\n", m.scenario, status, m.planner.NumMotions(), elapsed))
	}
	spinnerFrame := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧"}[int(elapsed/(100*time.Millisecond))%8]
	line := fmt.Sprintf("%s solving %s — %d motions, %d regions (%s)",
		styleIconSpinner.Render(spinnerFrame), m.scenario, m.planner.NumMotions(), m.planner.Graph().NumRegions(), elapsed)
	return lipgloss.NewStyle().Render(line)
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func waitForSolve(ch chan solveDoneMsg) tea.Cmd {
	return func() tea.Msg { return <-ch }
}
