package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/agiangrant/cssns"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	ruleStyles  = map[cssns.Rule]lipgloss.Style{
		cssns.RuleSelf:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		cssns.RulePrefix: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		cssns.RuleKeep:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

// Explain implements the 'cssns explain' command
// Prints how each token of a class list is rewritten and why.
func Explain(args []string) error {
	return explain(args, os.Stdout, os.Stderr)
}

func explain(args []string, stdout, stderr io.Writer) error {
	fs, common := newFlagSet("explain", stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("explain needs a class list argument")
	}

	ns, _, err := common.setup(fs, stderr)
	if err != nil {
		return err
	}

	decisions, err := cssns.Explain(ns.Options(), joinArgs(fs.Args()))
	if err != nil {
		return err
	}

	_, err = io.WriteString(stdout, renderDecisions(decisions))
	return err
}

func renderDecisions(decisions []cssns.Decision) string {
	headers := []string{"TOKEN", "RULE", "RESULT"}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, d := range decisions {
		widths[0] = max(widths[0], lipgloss.Width(d.Token))
		widths[1] = max(widths[1], lipgloss.Width(d.Rule.String()))
		widths[2] = max(widths[2], lipgloss.Width(d.Result))
	}

	var b strings.Builder
	row := make([]string, len(headers))
	for i, h := range headers {
		row[i] = cellStyle.Width(widths[i] + 2).Render(headerStyle.Render(h))
	}
	b.WriteString(strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, row...), " "))
	b.WriteByte('\n')

	for _, d := range decisions {
		style := ruleStyles[d.Rule]
		row[0] = cellStyle.Width(widths[0] + 2).Render(d.Token)
		row[1] = cellStyle.Width(widths[1] + 2).Render(style.Render(d.Rule.String()))
		row[2] = cellStyle.Width(widths[2] + 2).Render(d.Result)
		b.WriteString(strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, row...), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
