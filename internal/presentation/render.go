package presentation

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	riskStyles = map[string]lipgloss.Style{
		"high":   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		"medium": lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		"low":    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
)

// Render prints a view for a terminal of the given width.
func Render(v View, width int) string {
	var b strings.Builder

	switch {
	case v.Loading:
		b.WriteString(dimStyle.Render("Analyzing code...") + "\n")
	case v.Err != nil:
		style := errorStyle
		if v.Err.Kind == ErrorValidation {
			style = warnStyle
		}
		b.WriteString(style.Render("Error: "+v.Err.Message) + "\n")
		if v.Err.Retryable {
			b.WriteString(dimStyle.Render("Try again in a moment.") + "\n")
		}
	}

	res := v.Result
	if res == nil {
		return b.String()
	}

	fmt.Fprintf(&b, "%s  %s\n\n",
		badgeStyle.Render(res.DetectedLanguage),
		dimStyle.Render(fmt.Sprintf("%.2fs", res.ResponseTime)),
	)

	section(&b, "Explanation")
	b.WriteString(markdown(res.Explanation, width))

	if len(res.KeyPoints) > 0 {
		section(&b, "Key Points")
		for _, p := range res.KeyPoints {
			fmt.Fprintf(&b, "  • %s\n", p)
		}
	}

	if len(res.StepByStep) > 0 {
		section(&b, "Step by Step")
		for _, s := range res.StepByStep {
			step := lipgloss.NewStyle().Bold(true)
			if s.Color != "" && strings.HasPrefix(s.Color, "#") {
				step = step.Foreground(lipgloss.Color(s.Color))
			}
			fmt.Fprintf(&b, "  %s %s\n", step.Render(s.Step), s.Description)
		}
	}

	if len(res.Concepts) > 0 {
		section(&b, "Concepts")
		for _, c := range res.Concepts {
			fmt.Fprintf(&b, "  %s: %s\n", lipgloss.NewStyle().Bold(true).Render(c.Name), c.Description)
		}
	}

	if res.PerformanceNotes != "" {
		section(&b, "Performance Notes")
		b.WriteString(markdown(res.PerformanceNotes, width))
	}

	if len(res.OptimizationSuggestions) > 0 {
		section(&b, "Optimization Suggestions")
		for _, o := range res.OptimizationSuggestions {
			fmt.Fprintf(&b, "  %s\n    %s\n", lipgloss.NewStyle().Bold(true).Render(o.Issue), o.Solution)
			if o.Example != "" {
				fmt.Fprintf(&b, "    %s\n", dimStyle.Render(o.Example))
			}
		}
	}

	section(&b, "Complexity Analysis")
	fmt.Fprintf(&b, "  Time:  %s\n  Space: %s\n  %s\n",
		res.ComplexityAnalysis.TimeComplexity,
		res.ComplexityAnalysis.SpaceComplexity,
		res.ComplexityAnalysis.Analysis,
	)

	if len(res.BlackboxComponents) > 0 {
		section(&b, "Blackbox Components")
		for _, c := range res.BlackboxComponents {
			risk, ok := riskStyles[c.RiskLevel]
			if !ok {
				risk = dimStyle
			}
			fmt.Fprintf(&b, "  %s (%s) %s\n", c.Name, c.Type, risk.Render(c.RiskLevel+" risk"))
			if c.Description != "" {
				fmt.Fprintf(&b, "    %s\n", c.Description)
			}
			for _, r := range c.Recommendations {
				fmt.Fprintf(&b, "    - %s\n", r)
			}
		}
	}

	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString("\n" + headerStyle.Render(title) + "\n")
}

// markdown renders model prose, which often carries markdown, and falls back
// to the raw text if glamour fails.
func markdown(text string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text + "\n"
	}
	out, err := r.Render(text)
	if err != nil {
		return text + "\n"
	}
	return out
}
