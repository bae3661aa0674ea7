package handlers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/plan"
)

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorDim    = lipgloss.Color("#6b7280")
	colorWhite  = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	greenStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	redStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	yellowStyle = lipgloss.NewStyle().
			Foreground(colorYellow)
)

// colorEnabled is false when stdout is not a terminal.
var colorEnabled = isInteractiveTTY

func paint(style lipgloss.Style, s string) string {
	if !colorEnabled() {
		return s
	}
	return style.Render(s)
}

func rule(width int) string {
	return paint(dimStyle, "  "+strings.Repeat("─", width))
}

// renderPlan produces a styled plan summary.
func renderPlan(p *plan.Plan) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(paint(titleStyle, fmt.Sprintf("  tierplan: %s (%s, stage %d)", p.BaseName, p.Environment, p.Stage)))
	b.WriteString("\n")
	b.WriteString(paint(dimStyle, "  "+strings.Repeat("═", 40)))
	b.WriteString("\n")

	for level, kinds := range p.Levels {
		b.WriteString("\n")
		b.WriteString(paint(sectionStyle, fmt.Sprintf("  Level %d", level)))
		b.WriteString("\n")
		for _, kind := range kinds {
			r, _ := p.Lookup(kind)
			fmt.Fprintf(&b, "    %-32s %-20s %s\n", r.Name, r.Kind, sizeLabel(r))
		}
	}

	if inactive := p.Inactive(); len(inactive) > 0 {
		b.WriteString("\n")
		b.WriteString(paint(sectionStyle, fmt.Sprintf("  Inactive (%d)", len(inactive))))
		b.WriteString("\n")
		for _, r := range inactive {
			b.WriteString(paint(dimStyle, fmt.Sprintf("    %-32s %s", r.Name, r.Kind)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(paint(sectionStyle, "  Outputs"))
	b.WriteString("\n")
	b.WriteString(rule(50))
	b.WriteString("\n")
	keys := make([]string, 0, len(p.Outputs))
	for k := range p.Outputs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v, ok := p.Outputs[k].Get(); ok {
			fmt.Fprintf(&b, "    %-28s %s\n", k, v)
		} else {
			b.WriteString(paint(dimStyle, fmt.Sprintf("    %-28s -", k)))
			b.WriteString("\n")
		}
	}

	if len(p.Diagnostics) > 0 {
		b.WriteString("\n")
		b.WriteString(paint(sectionStyle, "  Diagnostics"))
		b.WriteString("\n")
		for _, d := range p.Diagnostics {
			b.WriteString("    ")
			b.WriteString(severityLabel(d.Severity))
			fmt.Fprintf(&b, " %s\n", d.Message)
		}
	}

	b.WriteString("\n")
	b.WriteString(paint(dimStyle, fmt.Sprintf("  %d active, %d inactive, fingerprint %s",
		len(p.Active()), len(p.Inactive()), p.Fingerprint()[:12])))
	b.WriteString("\n")
	return b.String()
}

func sizeLabel(r plan.ResolvedResource) string {
	return fmt.Sprintf("%s x%s (cap %s)",
		r.Properties[plan.PropertySKU],
		r.Properties[plan.PropertyReplicas],
		r.Properties[plan.PropertyCapacity])
}

func severityLabel(s plan.Severity) string {
	switch s {
	case plan.SeverityWarning:
		return paint(yellowStyle, "warning")
	default:
		return paint(dimStyle, "info   ")
	}
}

// renderChanges produces a styled diff between two plans.
func renderChanges(from, to string, changes plan.Changes) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(paint(titleStyle, fmt.Sprintf("  tierplan diff: %s → %s", from, to)))
	b.WriteString("\n")
	b.WriteString(rule(40))
	b.WriteString("\n")

	if changes.Empty() {
		b.WriteString(paint(dimStyle, "    No changes"))
		b.WriteString("\n")
		return b.String()
	}

	for _, c := range changes {
		switch c.Type {
		case plan.ChangeAdded:
			b.WriteString(paint(greenStyle, fmt.Sprintf("    + %-22s %s", c.Kind, c.To)))
		case plan.ChangeRemoved:
			b.WriteString(paint(redStyle, fmt.Sprintf("    - %-22s %s", c.Kind, c.From)))
		default:
			b.WriteString(paint(yellowStyle, fmt.Sprintf("    ~ %-22s %s → %s", c.Kind, c.From, c.To)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "    %d added, %d removed, %d resized, %d renamed\n",
		changes.Count(plan.ChangeAdded),
		changes.Count(plan.ChangeRemoved),
		changes.Count(plan.ChangeResized),
		changes.Count(plan.ChangeRenamed))
	return b.String()
}

// renderBatch produces a one-line-per-plan batch summary.
func renderBatch(labels []string, plans []*plan.Plan) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(paint(titleStyle, fmt.Sprintf("  tierplan batch: %d plans", len(plans))))
	b.WriteString("\n")
	b.WriteString(rule(60))
	b.WriteString("\n")
	for i, p := range plans {
		warn := ""
		if n := len(p.CascadeWarnings()); n > 0 {
			warn = paint(yellowStyle, fmt.Sprintf("  %d cascade warnings", n))
		}
		fmt.Fprintf(&b, "    %-24s %-8s stage %-3d %3d active%s\n",
			labels[i], p.Environment, p.Stage, len(p.Active()), warn)
	}
	b.WriteString("\n")
	b.WriteString(paint(greenStyle, "    No naming collisions"))
	b.WriteString("\n")
	return b.String()
}
