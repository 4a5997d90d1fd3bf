// Package dataset defines the normalized spreadsheet payload shared by the
// fetch cache, the upstream source, and the view-model builders.
package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is a single spreadsheet row keyed by column header.
type Row map[string]string

// Dataset is the normalized contents of one spreadsheet: every sheet's rows
// keyed by column header, plus the sheet names in spreadsheet order.
type Dataset struct {
	SheetNames []string         `json:"sheetNames"`
	Sheets     map[string][]Row `json:"sheets"`
}

// New creates an empty dataset.
func New() *Dataset {
	return &Dataset{
		SheetNames: []string{},
		Sheets:     make(map[string][]Row),
	}
}

// AddSheet appends a sheet and its rows, preserving insertion order.
func (d *Dataset) AddSheet(name string, rows []Row) {
	d.SheetNames = append(d.SheetNames, name)
	d.Sheets[name] = rows
}

// Rows returns the rows of the named sheet, or nil if the sheet is absent.
func (d *Dataset) Rows(name string) []Row {
	return d.Sheets[name]
}

// RowCount returns the total number of rows across all sheets.
func (d *Dataset) RowCount() int {
	total := 0
	for _, rows := range d.Sheets {
		total += len(rows)
	}
	return total
}

// Normalize converts a raw cell grid into header-keyed rows. The first row
// supplies the headers; rows shorter than the header row are padded with
// empty strings and surplus cells are dropped. Blank header cells get
// positional names ("column_3") so their data is not silently lost.
func Normalize(grid [][]interface{}) []Row {
	// Header-only and empty grids produce an empty slice, not nil, so the
	// sheet serializes as [] rather than null.
	if len(grid) < 2 {
		return []Row{}
	}

	headers := make([]string, len(grid[0]))
	for i, cell := range grid[0] {
		h := strings.TrimSpace(cellString(cell))
		if h == "" {
			h = fmt.Sprintf("column_%d", i+1)
		}
		headers[i] = h
	}

	rows := make([]Row, 0, len(grid)-1)
	for _, raw := range grid[1:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(raw) {
				row[h] = cellString(raw[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// cellString renders a raw API cell value as a string. The Sheets API
// delivers formatted values as strings, but unformatted reads decode numbers
// and booleans as their JSON types.
func cellString(v interface{}) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case bool:
		return strconv.FormatBool(c)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		return fmt.Sprint(c)
	}
}
