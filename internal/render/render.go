package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/wgomg/digest/internal/comparison"
	"github.com/wgomg/digest/internal/utils"
)

const (
	previewRunes = 150
	cardWidth    = 80
)

var (
	background = lipgloss.Color("#1A1A2E")
	highlight  = lipgloss.Color("#F9C80E")
	muted      = lipgloss.Color("#888888")
	failure    = lipgloss.Color("#FF6B6B")
)

// palette maps a candidate key to its card color.
var palette = map[string]lipgloss.Color{
	"graph-degree":      lipgloss.Color("#FF2A6D"),
	"graph-eigenvector": lipgloss.Color("#05D9E8"),
	"latent-semantic":   lipgloss.Color("#F9C80E"),
	"term-weight":       lipgloss.Color("#D65108"),
	"bart":              lipgloss.Color("#3A86FF"),
	"t5":                lipgloss.Color("#8338EC"),
}

func colorFor(key string) lipgloss.Color {
	if c, ok := palette[key]; ok {
		return c
	}
	return muted
}

// Terminal writes a comparison report for humans. Colors are dropped
// automatically when the writer is not a terminal.
type Terminal struct {
	w        io.Writer
	renderer *lipgloss.Renderer
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w, renderer: lipgloss.NewRenderer(w)}
}

func (t *Terminal) Report(report *comparison.Report) error {
	sections := []string{t.sourceLine(report)}

	for _, c := range report.Candidates {
		sections = append(sections, t.card(c))
	}

	if report.Winner != nil {
		sections = append(sections, t.scoreTable(report), t.winnerLine(report.Winner))
	}

	sections = append(sections, t.finalComparison(report))

	_, err := fmt.Fprintln(t.w, strings.Join(sections, "\n\n"))
	return err
}

func (t *Terminal) sourceLine(report *comparison.Report) string {
	style := t.renderer.NewStyle().Foreground(muted)
	line := fmt.Sprintf("Source: %d words, %d sentences, %.1f words per sentence",
		report.Source.Words, report.Source.Sentences, report.Source.AvgSentenceLength)

	if len(report.Source.TopWords) > 0 {
		words := make([]string, len(report.Source.TopWords))
		for i, w := range report.Source.TopWords {
			words[i] = fmt.Sprintf("%s (%d)", w.Word, w.Count)
		}
		line += "\nTop words: " + strings.Join(words, ", ")
	}

	return style.Render(line)
}

func (t *Terminal) card(c comparison.Candidate) string {
	color := colorFor(c.Key)

	title := t.renderer.NewStyle().Bold(true).Foreground(color).
		Render(fmt.Sprintf("%s (%s)", c.Name, c.Kind))

	var body string
	if c.Failed() {
		body = t.renderer.NewStyle().Foreground(failure).Render("failed: " + c.Error)
	} else {
		meta := fmt.Sprintf("%d words, compression %.2f", c.Words, c.CompressionRatio)
		if c.Scores != nil {
			meta += fmt.Sprintf(", ROUGE avg %.4f", c.Average)
		}
		body = c.Summary + "\n\n" + t.renderer.NewStyle().Foreground(muted).Render(meta)
	}

	for _, w := range c.Warnings {
		body += "\n" + t.renderer.NewStyle().Foreground(highlight).Render("warning: "+w)
	}

	return t.renderer.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Width(cardWidth).
		Render(title + "\n" + body)
}

func (t *Terminal) scoreTable(report *comparison.Report) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(t.renderer.NewStyle().Foreground(muted)).
		Headers("Method", "ROUGE-1", "ROUGE-2", "ROUGE-L", "Average")

	for _, c := range report.Candidates {
		if c.Scores == nil {
			continue
		}
		tbl.Row(
			c.Name,
			fmt.Sprintf("%.4f", c.Scores.Rouge1.F1),
			fmt.Sprintf("%.4f", c.Scores.Rouge2.F1),
			fmt.Sprintf("%.4f", c.Scores.RougeL.F1),
			fmt.Sprintf("%.4f", c.Average),
		)
	}

	tbl.StyleFunc(func(row, col int) lipgloss.Style {
		style := t.renderer.NewStyle().Padding(0, 1)
		if row == table.HeaderRow {
			return style.Bold(true).Foreground(highlight)
		}
		return style
	})

	return tbl.String()
}

func (t *Terminal) winnerLine(w *comparison.Winner) string {
	return t.renderer.NewStyle().
		Bold(true).
		Foreground(highlight).
		Background(background).
		Padding(0, 1).
		Render(fmt.Sprintf("Best method: %s (average ROUGE %.4f)", w.Name, w.Average))
}

// finalComparison lists a short preview of every candidate.
func (t *Terminal) finalComparison(report *comparison.Report) string {
	lines := []string{t.renderer.NewStyle().Bold(true).Render("Final comparison")}

	for _, c := range report.Candidates {
		name := t.renderer.NewStyle().Foreground(colorFor(c.Key)).Render(c.Name + ":")
		text := utils.Preview(c.Summary, previewRunes)
		if c.Failed() {
			text = "unavailable"
		}
		lines = append(lines, name+" "+text)
	}

	return strings.Join(lines, "\n")
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
