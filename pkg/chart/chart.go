package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/ionut-t/sift/pkg/result"
)

const (
	minBarWidth = 1
	maxBarWidth = 8
	barGap      = 1
	bar         = "█"
)

type Options struct {
	Width  int
	Height int

	BarStyle   lipgloss.Style
	LineStyle  lipgloss.Style
	LabelStyle lipgloss.Style
}

// DefaultOptions returns unstyled options of the given size.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:      width,
		Height:     height,
		BarStyle:   lipgloss.NewStyle(),
		LineStyle:  lipgloss.NewStyle(),
		LabelStyle: lipgloss.NewStyle(),
	}
}

// Render draws the chart selected by the shape. It returns an empty string when the
// result has no chart.
func Render(shape result.Shape, rows result.Rows, opts Options) string {
	if !shape.HasChart() {
		return ""
	}

	labels, values := shape.Series(rows)
	title := opts.LabelStyle.Render(fmt.Sprintf("%s by %s", shape.Numeric, shape.Category))

	var body string
	switch shape.Chart {
	case result.ChartLine:
		body = Line(labels, values, opts)
	default:
		body = Bar(labels, values, opts)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

// Line plots values as a connected line without point markers. The Y axis is scaled to
// the data range.
func Line(labels []string, values []float64, opts Options) string {
	if len(values) == 0 {
		return ""
	}

	height := max(opts.Height, 2)
	width := max(opts.Width-axisWidth(values)-2, len(values))

	plot := asciigraph.Plot(
		values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(precision(values)),
	)

	first, last := labels[0], labels[len(labels)-1]
	offset := strings.Repeat(" ", axisWidth(values)+2)
	gap := max(1, width-lipgloss.Width(first)-lipgloss.Width(last))

	xAxis := offset + first
	if len(labels) > 1 {
		xAxis += strings.Repeat(" ", gap) + last
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		opts.LineStyle.Render(plot),
		opts.LabelStyle.Render(truncate(xAxis, opts.Width)),
	)
}

// Bar draws one vertical bar per category. Bars grow up or down from the zero line and
// the scale always includes zero. Categories that do not fit in the width are
// summarised.
func Bar(labels []string, values []float64, opts Options) string {
	if len(values) == 0 {
		return ""
	}

	height := max(opts.Height, 2)
	width := max(opts.Width, minBarWidth)

	axis := axisWidth(values)
	plotWidth := max(width-axis-2, minBarWidth)

	barWidth := clamp(plotWidth/len(values)-barGap, minBarWidth, maxBarWidth)
	fits := max(1, plotWidth/(barWidth+barGap))
	hidden := 0
	if fits < len(values) {
		hidden = len(values) - fits
		labels = labels[:fits]
		values = values[:fits]
	}

	low := math.Min(0, minOf(values))
	high := math.Max(0, maxOf(values))
	span := high - low
	if span == 0 {
		span = 1
	}

	// rows are counted from the bottom; zero is the top edge of row zero
	zero := int(math.Round(-low / span * float64(height)))
	tops := make([]int, len(values))
	for i, v := range values {
		tops[i] = int(math.Round((v - low) / span * float64(height)))
	}

	var sb strings.Builder
	for row := height; row >= 1; row-- {
		tick := strings.Repeat(" ", axis)
		switch row {
		case height:
			tick = padLeft(formatValue(high), axis)
		case 1:
			tick = padLeft(formatValue(low), axis)
		case zero:
			tick = padLeft(formatValue(0), axis)
		}
		sb.WriteString(opts.LabelStyle.Render(tick + " ┤"))

		for i := range values {
			cell := strings.Repeat(" ", barWidth)
			if filled(row, zero, tops[i]) {
				cell = opts.BarStyle.Render(strings.Repeat(bar, barWidth))
			}
			sb.WriteString(cell + strings.Repeat(" ", barGap))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(opts.LabelStyle.Render(strings.Repeat(" ", axis) + " └" + strings.Repeat("─", len(values)*(barWidth+barGap))))
	sb.WriteString("\n")

	var labelRow strings.Builder
	labelRow.WriteString(strings.Repeat(" ", axis+2))
	for _, l := range labels {
		labelRow.WriteString(padRight(truncate(l, barWidth), barWidth) + strings.Repeat(" ", barGap))
	}
	sb.WriteString(opts.LabelStyle.Render(labelRow.String()))

	if hidden > 0 {
		sb.WriteString("\n")
		sb.WriteString(opts.LabelStyle.Render(fmt.Sprintf("%s+%d more", strings.Repeat(" ", axis+2), hidden)))
	}

	return sb.String()
}

// filled reports whether row lies between the zero line and the top of a bar.
func filled(row, zero, top int) bool {
	return row > min(zero, top) && row <= max(zero, top)
}

func axisWidth(values []float64) int {
	return max(len(formatValue(minOf(values))), len(formatValue(maxOf(values))), len(formatValue(0)))
}

func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatFloat(v, 'f', 2, 64)
}

func precision(values []float64) uint {
	for _, v := range values {
		if v != math.Trunc(v) {
			return 2
		}
	}

	return 0
}

func minOf(values []float64) float64 {
	m := math.Inf(1)
	for _, v := range values {
		m = math.Min(m, v)
	}
	return m
}

func maxOf(values []float64) float64 {
	m := math.Inf(-1)
	for _, v := range values {
		m = math.Max(m, v)
	}
	return m
}

func clamp(v, low, high int) int {
	return min(max(v, low), high)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= width {
		return s
	}

	if width == 1 {
		return string(runes[:1])
	}

	return string(runes[:width-1]) + "…"
}

func padLeft(s string, width int) string {
	return strings.Repeat(" ", max(0, width-len([]rune(s)))) + s
}

func padRight(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-len([]rune(s))))
}
