package results

import (
	"errors"
	"io"

	"github.com/bnema/devicefarm-e2e/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// report is the stored results arranged the way they are printed: one
// section per test group, in the order the groups first appear.
type report struct {
	passed int
	failed int
	groups []groupSection
}

type groupSection struct {
	name    string
	passed  int
	results []application.TestResult
}

func (r report) total() int {
	return r.passed + r.failed
}

func summarize(results []application.TestResult) report {
	var r report
	index := map[string]int{}
	for _, result := range results {
		i, ok := index[result.GroupName]
		if !ok {
			i = len(r.groups)
			index[result.GroupName] = i
			r.groups = append(r.groups, groupSection{name: result.GroupName})
		}

		section := &r.groups[i]
		section.results = append(section.results, result)
		if result.Passed {
			section.passed++
			r.passed++
		} else {
			r.failed++
		}
	}
	return r
}

type summarizedMsg struct {
	report report
}

type model struct {
	results []application.TestResult
	opts    RenderOptions
	styles  styles
	report  report
	output  string
}

func (m model) Init() tea.Cmd {
	results := m.results
	return func() tea.Msg {
		return summarizedMsg{report: summarize(results)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	summarized, ok := msg.(summarizedMsg)
	if !ok {
		return m, nil
	}

	m.report = summarized.report
	m.output = renderView(m.report, m.opts, m.styles)
	return m, tea.Quit
}

func (m model) View() string {
	return m.output
}

// Render lays out results once and returns the text without touching the
// terminal.
func Render(results []application.TestResult, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		model{results: results, opts: opts, styles: newStyles()},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := final.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
