package result

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

var ErrNotArray = errors.New("result is not an array of rows")

// Cell is a single column value of a row. Value holds a string, float64, bool or nil.
type Cell struct {
	Column string
	Value  any
	raw    string
}

// String stringifies the value the way the table renders it.
func (c Cell) String() string {
	switch v := c.Value.(type) {
	case nil:
		return "NULL"
	case string:
		return v
	case float64:
		if c.raw != "" {
			return c.raw
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Row keeps the cells in the order they appear in the response document.
type Row []Cell

// Get returns the cell for the given column.
func (r Row) Get(column string) (Cell, bool) {
	for _, c := range r {
		if c.Column == column {
			return c, true
		}
	}

	return Cell{}, false
}

// Columns returns the row keys in document order.
func (r Row) Columns() []string {
	columns := make([]string, 0, len(r))
	seen := make(map[string]bool, len(r))

	for _, c := range r {
		if seen[c.Column] {
			continue
		}
		seen[c.Column] = true
		columns = append(columns, c.Column)
	}

	return columns
}

// MarshalJSON writes the row as an object, preserving column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, c := range r {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(c.Column)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		if _, ok := c.Value.(float64); ok && c.raw != "" {
			buf.WriteString(c.raw)
			continue
		}

		val, err := json.Marshal(c.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Rows is the result set returned with a generated query.
type Rows []Row

// Columns returns the authoritative column set: the keys of the first row.
func (rs Rows) Columns() []string {
	if len(rs) == 0 {
		return nil
	}

	return rs[0].Columns()
}

// Table stringifies every row against the given columns. Missing keys render empty.
func (rs Rows) Table(columns []string) [][]string {
	out := make([][]string, len(rs))

	for i, row := range rs {
		cells := make([]string, len(columns))
		for j, column := range columns {
			if cell, ok := row.Get(column); ok {
				cells[j] = cell.String()
			}
		}
		out[i] = cells
	}

	return out
}

// Parse decodes a JSON array of objects into ordered rows.
func Parse(raw gjson.Result) (Rows, error) {
	if !raw.Exists() || raw.Type == gjson.Null {
		return nil, nil
	}

	if !raw.IsArray() {
		return nil, ErrNotArray
	}

	var rows Rows
	var parseErr error

	raw.ForEach(func(_, value gjson.Result) bool {
		if !value.IsObject() {
			parseErr = fmt.Errorf("row %d is not an object", len(rows))
			return false
		}

		row := Row{}
		value.ForEach(func(key, v gjson.Result) bool {
			row = append(row, newCell(key.String(), v))
			return true
		})

		rows = append(rows, row)
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}

	return rows, nil
}

// ParseJSON is Parse for raw bytes.
func ParseJSON(data []byte) (Rows, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}

	return Parse(gjson.ParseBytes(data))
}

func newCell(column string, v gjson.Result) Cell {
	c := Cell{Column: column}

	switch v.Type {
	case gjson.Number:
		c.Value = v.Float()
		c.raw = v.Raw
	case gjson.String:
		c.Value = v.String()
	case gjson.True, gjson.False:
		c.Value = v.Bool()
	case gjson.Null:
		c.Value = nil
	default:
		// nested objects and arrays are kept as their JSON text
		c.Value = v.Raw
	}

	return c
}

// NewCell builds a cell from a Go value. Integers are widened to float64.
func NewCell(column string, value any) Cell {
	switch v := value.(type) {
	case int:
		return Cell{Column: column, Value: float64(v), raw: strconv.Itoa(v)}
	case int64:
		return Cell{Column: column, Value: float64(v), raw: strconv.FormatInt(v, 10)}
	case float32:
		return Cell{Column: column, Value: float64(v)}
	}

	return Cell{Column: column, Value: value}
}
