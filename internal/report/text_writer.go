package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/wordwrap"

	"asteroid-sim/internal/history"
	"asteroid-sim/internal/impact"
)

const defaultWrapWidth = 80

// TextWriter renders records as terminal reports.
type TextWriter struct {
	out   io.Writer
	width int

	title   lipgloss.Style
	label   lipgloss.Style
	hit     lipgloss.Style
	miss    lipgloss.Style
	dim     lipgloss.Style
	section lipgloss.Style
	r       *lipgloss.Renderer
}

// NewTextWriter creates a TextWriter writing to out, or os.Stdout when nil.
// Colours are only emitted when out is a terminal.
func NewTextWriter(out io.Writer, width int) *TextWriter {
	if out == nil {
		out = os.Stdout
	}
	if width <= 0 {
		width = defaultWrapWidth
	}
	r := lipgloss.NewRenderer(out)
	return &TextWriter{
		out:     out,
		width:   width,
		r:       r,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label:   r.NewStyle().Foreground(lipgloss.Color("8")),
		hit:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		miss:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		dim:     r.NewStyle().Faint(true),
		section: r.NewStyle().Bold(true).Underline(true),
	}
}

// Write outputs a single record.
func (w *TextWriter) Write(rec history.Record) error {
	_, err := io.WriteString(w.out, w.Render(rec))
	return err
}

// WriteBatch outputs multiple records.
func (w *TextWriter) WriteBatch(rows []history.Record) error {
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// Render formats one record.
func (w *TextWriter) Render(rec history.Record) string {
	in, res := rec.Input, rec.Result
	var b strings.Builder

	name := in.Name
	if name == "" {
		name = "Unnamed asteroid"
	}
	fmt.Fprintf(&b, "%s %s\n", w.title.Render(name), w.dim.Render("["+rec.ID+"]"))
	fmt.Fprintf(&b, "%s %s\n", w.label.Render("analyzed"), res.Timestamp.Format(time.RFC3339))

	status := w.miss.Render("MISS")
	if res.IsHit {
		status = w.hit.Render("HIT")
	}

	b.WriteString(w.table().Rows(
		[]string{"Type", string(in.Type)},
		[]string{"Diameter", fmt.Sprintf("%.2f m", in.Diameter)},
		[]string{"Velocity", fmt.Sprintf("%.2f km/s", in.Velocity)},
		[]string{"Distance", fmt.Sprintf("%.0f km", in.Distance)},
		[]string{"Status", status},
		[]string{"Impact probability", fmt.Sprintf("%.1f%%", res.ImpactProbability)},
		[]string{"Kinetic energy", fmt.Sprintf("%.4f MT", res.KineticEnergyMegatons)},
		[]string{"Crater diameter", fmt.Sprintf("%.1f m", res.CraterSizeMeters)},
		[]string{"Severity", string(impact.SeverityFor(res.KineticEnergyMegatons))},
	).String())
	b.WriteString("\n")

	fmt.Fprintf(&b, "\n%s\n", w.section.Render("Dimensional analysis"))
	trace := w.table()
	for i, s := range res.DimensionalProcess {
		trace.Row(fmt.Sprintf("%d.", i+1), s.Step, s.Equation, s.Result)
	}
	b.WriteString(trace.String())
	b.WriteString("\n")

	if len(res.Composition) > 0 {
		fmt.Fprintf(&b, "\n%s\n", w.section.Render("Composition"))
		comp := w.table()
		for _, c := range res.Composition {
			swatch := w.r.NewStyle().Foreground(lipgloss.Color(c.Fill)).Render("■")
			comp.Row(swatch, c.Element, fmt.Sprintf("%.0f%%", c.Percentage))
		}
		b.WriteString(comp.String())
		b.WriteString("\n")
	}

	if res.AnalysisSummary != "" {
		fmt.Fprintf(&b, "\n%s\n%s\n", w.section.Render("Summary"), wordwrap.String(res.AnalysisSummary, w.width))
	}
	b.WriteString("\n")
	return b.String()
}

// table returns a borderless table whose first column is dimmed.
func (w *TextWriter) table() *table.Table {
	cell := w.r.NewStyle().PaddingRight(2)
	first := cell.Inherit(w.label)
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return first
			}
			return cell
		})
}
