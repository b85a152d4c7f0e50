package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type hubFetchFunc func(context.Context) (hubStatus, error)

// hubCheckedMsg carries the answer of the hub and how long it took.
type hubCheckedMsg struct {
	status  hubStatus
	err     error
	latency time.Duration
}

type hubCheckModel struct {
	spinner spinner.Model
	target  string
	fetch   tea.Cmd
	result  hubCheckedMsg
	done    bool

	readyStyle    lipgloss.Style
	notReadyStyle lipgloss.Style
}

func newHubCheckModel(ctx context.Context, host, username string, fetch hubFetchFunc) hubCheckModel {
	return hubCheckModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
		),
		target: fmt.Sprintf("%s as %s", host, username),
		fetch: func() tea.Msg {
			started := time.Now()
			status, err := fetch(ctx)
			return hubCheckedMsg{status: status, err: err, latency: time.Since(started)}
		},
		readyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		notReadyStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

func (m hubCheckModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m hubCheckModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case hubCheckedMsg:
		m.result = msg
		m.done = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m hubCheckModel) View() string {
	if !m.done {
		return fmt.Sprintf("%s Checking hub %s...", m.spinner.View(), m.target)
	}

	latency := m.result.latency.Round(time.Millisecond)
	switch {
	case m.result.err != nil:
		return m.notReadyStyle.Render(fmt.Sprintf("x hub %s did not answer (%s)", m.target, latency)) + "\n"
	case !m.result.status.Ready:
		return m.notReadyStyle.Render(fmt.Sprintf("! hub answered in %s but is not ready", latency)) + "\n"
	default:
		return m.readyStyle.Render(fmt.Sprintf("ok hub answered in %s", latency)) + "\n"
	}
}

// runHubCheck fetches the hub status while a spinner runs on output and
// returns what the hub answered.
func runHubCheck(ctx context.Context, output io.Writer, host, username string, fetch hubFetchFunc) (hubCheckedMsg, error) {
	p := tea.NewProgram(
		newHubCheckModel(ctx, host, username, fetch),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return hubCheckedMsg{}, err
	}

	model, ok := final.(hubCheckModel)
	if !ok {
		return hubCheckedMsg{}, fmt.Errorf("unexpected final hub check model type %T", final)
	}

	return model.result, model.result.err
}
