package results

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/bnema/devicefarm-e2e/internal/application"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// Verbose adds the log files of every test.
	Verbose  bool
	BarWidth int
}

const defaultBarWidth = 24

func renderView(r report, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Device Farm Test Results"),
		s.header.Render(fmt.Sprintf("tests: %d  passed: %d  failed: %d", r.total(), r.passed, r.failed)),
	}

	if r.total() == 0 {
		lines = append(lines, s.empty.Render("No test results stored."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	width := opts.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}
	lines = append(lines, renderPassBar(r.passed, r.total(), width, s))

	for _, section := range r.groups {
		lines = append(lines, s.section.Render(lipgloss.JoinHorizontal(lipgloss.Top,
			s.group.Render(groupTitle(section.name)), " ",
			s.header.Render(fmt.Sprintf("%d/%d passed", section.passed, len(section.results))),
		)))
		for _, result := range section.results {
			lines = append(lines, renderTest(result, opts, s)...)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTest(result application.TestResult, opts RenderOptions, s styles) []string {
	badge := s.passed.Render("PASS")
	if !result.Passed {
		badge = s.failed.Render("FAIL")
	}

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			badge, " ",
			s.test.Render(result.Name), " ",
			s.header.Render(runsLabel(result.Runs, result.Steps)),
		),
	}

	if result.Error != "" {
		for _, line := range errorLines(result.Error) {
			lines = append(lines, s.errorText.Render(line))
		}
	}

	if opts.Verbose && len(result.LogsPaths) > 0 {
		names := make([]string, 0, len(result.LogsPaths))
		for name := range result.LogsPaths {
			names = append(names, name)
		}
		sort.Strings(names)

		lines = append(lines, s.detail.Render("logs:"))
		for _, name := range names {
			lines = append(lines, s.logPath.Render(fmt.Sprintf("%s -> %s", name, result.LogsPaths[name])))
		}
	}

	return lines
}

func groupTitle(group string) string {
	if strings.TrimSpace(group) == "" {
		return "(no group)"
	}
	return group
}

func runsLabel(runs, steps int) string {
	runWord := "runs"
	if runs == 1 {
		runWord = "run"
	}
	stepWord := "steps"
	if steps == 1 {
		stepWord = "step"
	}
	return fmt.Sprintf("(%d %s, %d %s)", runs, runWord, steps, stepWord)
}

// errorLines splits an aggregated run error into one line per device error.
func errorLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func renderPassBar(passed, total, width int, s styles) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * float64(passed) / float64(total)))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
		" ",
		s.header.Render(fmt.Sprintf("%3.0f%%", 100*float64(passed)/float64(total))),
	)
}
