package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/slidekit/measure"
)

// Table is a grid of text cells with a fixed number of columns.
type Table struct {
	Graphic
	columns int
	rows    []*Row
}

// NewTable creates an empty table with the given number of columns.
// A non-positive count yields a single column.
func NewTable(columns int) *Table {
	if columns < 1 {
		columns = 1
	}
	return &Table{Graphic: newGraphic(), columns: columns}
}

func (t *Table) Kind() Kind { return KindTable }

// ColCount returns the number of columns
func (t *Table) ColCount() int { return t.columns }

// RowCount returns the number of rows
func (t *Table) RowCount() int { return len(t.rows) }

// Rows returns the rows in order.
func (t *Table) Rows() []*Row { return t.rows }

// CreateRow appends a row with one empty cell per column.
func (t *Table) CreateRow() *Row {
	r := &Row{cells: make([]*Cell, t.columns)}
	for i := range r.cells {
		r.cells[i] = &Cell{RowSpan: 1, ColSpan: 1}
	}
	t.rows = append(t.rows, r)
	return r
}

// Cell returns the cell at the given row and column (0-indexed)
func (t *Table) Cell(row, col int) (*Cell, error) {
	if row < 0 || row >= len(t.rows) {
		return nil, fmt.Errorf("row index %d out of bounds", row)
	}
	if col < 0 || col >= t.columns {
		return nil, fmt.Errorf("col index %d out of bounds", col)
	}
	return t.rows[row].cells[col], nil
}

// SetCellText sets the text of the cell at the given position
func (t *Table) SetCellText(row, col int, text string) error {
	c, err := t.Cell(row, col)
	if err != nil {
		return err
	}
	c.Text = text
	return nil
}

// PlainText returns the cells tab-separated, one row per line.
func (t *Table) PlainText() string {
	var sb strings.Builder
	for _, row := range t.rows {
		for j, cell := range row.cells {
			sb.WriteString(cell.Text)
			if j < len(row.cells)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToMarkdown converts the table to markdown format. The first row is the
// header.
func (t *Table) ToMarkdown() string {
	if len(t.rows) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(r *Row) {
		for _, cell := range r.cells {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(cell.Text, "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	writeRow(t.rows[0])
	sb.WriteString(strings.Repeat("|---", t.columns))
	sb.WriteString("|\n")
	for _, r := range t.rows[1:] {
		writeRow(r)
	}
	return sb.String()
}

// ToCSV converts the table to CSV format
func (t *Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.rows {
		for j, cell := range row.cells {
			// Quote fields holding separators, quotes or newlines
			text := cell.Text
			if strings.ContainsAny(text, ",\"\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row.cells)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Table) HashCode() string {
	parts := append(t.Graphic.hashParts(), strconv.Itoa(t.columns))
	for _, r := range t.rows {
		parts = append(parts, r.height.HashCode())
		for _, c := range r.cells {
			parts = append(parts, c.Text, strconv.Itoa(c.RowSpan), strconv.Itoa(c.ColSpan), strconv.FormatBool(c.IsHeader))
		}
	}
	return hashOf(append(parts, "model.Table")...)
}

// Row is one table row.
type Row struct {
	cells  []*Cell
	height measure.Measure
}

// Cells returns the cells of the row.
func (r *Row) Cells() []*Cell { return r.cells }

// Height returns the row height, zero meaning automatic.
func (r *Row) Height() measure.Measure { return r.height }

func (r *Row) SetHeight(h measure.Measure) { r.height = h }

// Cell represents a table cell
type Cell struct {
	Text     string
	RowSpan  int
	ColSpan  int
	IsHeader bool
}
