package result

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Kind is the data role a column plays for charting.
type Kind int

const (
	Unknown Kind = iota
	Numeric
	Category
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Category:
		return "category"
	default:
		return "unknown"
	}
}

type ChartType int

const (
	ChartNone ChartType = iota
	ChartBar
	ChartLine
)

func (c ChartType) String() string {
	switch c {
	case ChartBar:
		return "bar"
	case ChartLine:
		return "line"
	default:
		return "none"
	}
}

// Shape is what rendering needs to know about a result set. It is computed once per
// response.
type Shape struct {
	Empty    bool
	Columns  []string
	Kinds    []Kind
	Chart    ChartType
	Category string
	Numeric  string
	DateLike bool
}

// HasChart reports whether a chart can be drawn for the result.
func (s Shape) HasChart() bool {
	return !s.Empty && s.Chart != ChartNone
}

// Infer classifies the columns of the first row and selects a chart type.
func Infer(rows Rows) Shape {
	if len(rows) == 0 {
		return Shape{Empty: true, Chart: ChartNone}
	}

	first := rows[0]
	columns := first.Columns()

	shape := Shape{
		Columns: columns,
		Kinds:   make([]Kind, len(columns)),
		Chart:   ChartNone,
	}

	for i, column := range columns {
		cell, _ := first.Get(column)
		shape.Kinds[i] = kindOf(cell.Value)
	}

	if len(columns) < 2 {
		return shape
	}

	for i, column := range columns {
		if shape.Kinds[i] == Numeric {
			shape.Numeric = column
			break
		}
	}

	for _, column := range columns {
		if column != shape.Numeric {
			shape.Category = column
			break
		}
	}

	if shape.Numeric == "" || shape.Category == "" {
		return shape
	}

	sample, _ := first.Get(shape.Category)
	shape.DateLike = LooksLikeDate(sample.Value)

	if shape.DateLike {
		shape.Chart = ChartLine
	} else {
		shape.Chart = ChartBar
	}

	return shape
}

// Series extracts the chart labels and values. Values that are not numeric are
// plotted as zero.
func (s Shape) Series(rows Rows) ([]string, []float64) {
	if !s.HasChart() {
		return nil, nil
	}

	labels := make([]string, len(rows))
	values := make([]float64, len(rows))

	for i, row := range rows {
		if cell, ok := row.Get(s.Category); ok {
			labels[i] = cell.String()
		}

		if cell, ok := row.Get(s.Numeric); ok {
			values[i] = toFloat(cell.Value)
		}
	}

	return labels, values
}

func kindOf(v any) Kind {
	switch v.(type) {
	case float64:
		return Numeric
	case string, bool:
		return Category
	default:
		return Unknown
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}

	return 0
}

var dateLayouts = []string{
	"2006-01",
	"2006-01-02",
	"2006/01/02",
	"2006/01",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"Jan 2006",
	"January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// LooksLikeDate is a heuristic on a single sample value: strings that parse as a
// calendar date or timestamp are date-like. Numbers never are.
func LooksLikeDate(sample any) bool {
	s, ok := sample.(string)
	if !ok {
		return false
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}

	// bare integers such as "42" are identifiers far more often than years
	if _, err := strconv.Atoi(s); err == nil {
		return len(s) == 4
	}

	_, err := dateparse.ParseStrict(s)
	return err == nil
}
