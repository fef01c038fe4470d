// Package pretty renders shapes and regression summaries for terminals.
package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rnashapes-core/dotbracket"
	"rnashapes/pkg/api"
)

const linePrefix = "# "

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Width(11)
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func row(label, value string) string {
	return linePrefix + lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

// RenderShape draws one structure with its three shape levels aligned below it.
func RenderShape(s api.ShapeV1) string {
	var b strings.Builder
	title := s.ID
	if title == "" {
		title = "structure"
	}
	b.WriteString(linePrefix + titleStyle.Render(title))
	b.WriteByte('\n')
	if s.Seq != "" {
		b.WriteString(row("sequence", s.Seq) + "\n")
	}
	b.WriteString(row("structure", s.Structure) + "\n")
	if table, err := dotbracket.PairTable(s.Structure); err == nil {
		pairs := 0
		for i, j := range table {
			if j > i {
				pairs++
			}
		}
		b.WriteString(row("pairs", fmt.Sprintf("%d in %d stems, %d unpaired", pairs, s.Stems, len(table)-2*pairs)) + "\n")
	}
	b.WriteString(row("level 1", s.Level1) + "\n")
	b.WriteString(row("level 3", s.Level3) + "\n")
	b.WriteString(row("level 5", s.Level5))
	return b.String()
}

// RenderReport draws a bordered regression summary followed by the listed mismatches.
func RenderReport(r api.BenchReportV1) string {
	ratio := fmt.Sprintf("%.2f%%", 100*r.SuccessRatio)
	if r.Passed == r.Cases {
		ratio = okStyle.Render(ratio)
	} else {
		ratio = badStyle.Render(ratio)
	}
	summary := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("shape regression"),
		labelStyle.Render("cases")+fmt.Sprint(r.Cases),
		labelStyle.Render("passed")+fmt.Sprint(r.Passed),
		labelStyle.Render("level 5")+failCount(r.FailedLevel5),
		labelStyle.Render("level 3")+failCount(r.FailedLevel3),
		labelStyle.Render("level 1")+failCount(r.FailedLevel1),
		labelStyle.Render("invalid")+failCount(r.Invalid),
		labelStyle.Render("success")+ratio,
	)

	var b strings.Builder
	b.WriteString(boxStyle.Render(summary))
	for _, sec := range []struct {
		name string
		list []api.MismatchV1
	}{
		{"level 5", r.Level5},
		{"level 3", r.Level3},
		{"level 1", r.Level1},
		{"invalid", r.InvalidCases},
	} {
		for _, m := range sec.list {
			fmt.Fprintf(&b, "\n%s%s line %d  %s\n", linePrefix, sec.name, m.Line, m.Structure)
			fmt.Fprintf(&b, "%s  got  %s\n", linePrefix, badStyle.Render(m.Got))
			fmt.Fprintf(&b, "%s  want %s", linePrefix, okStyle.Render(m.Want))
		}
	}
	return b.String()
}

func failCount(n int) string {
	if n == 0 {
		return okStyle.Render("0")
	}
	return badStyle.Render(fmt.Sprint(n))
}
