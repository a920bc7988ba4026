// Package models defines data structures for roster extraction.
package models

// Document is an already-opened roster document: its tables and its
// free-form paragraphs, both reduced to plain text.
type Document struct {
	// Name is the document file name (no path).
	Name string `json:"name"`
	// Tables contains every table of the document in reading order.
	Tables []Table `json:"tables,omitempty"`
	// Paragraphs contains free-form text outside of tables.
	Paragraphs []Paragraph `json:"paragraphs,omitempty"`
}

// Table is an ordered sequence of columns. All columns of one table
// have the same number of cells.
type Table struct {
	Columns []Column `json:"columns"`
}

// Column is one vertical slice of a table. Cells[0] is the header.
type Column struct {
	Cells []string `json:"cells"`
}

// Header returns the first cell of the column, or "" for an empty column.
func (c Column) Header() string {
	if len(c.Cells) == 0 {
		return ""
	}
	return c.Cells[0]
}

// Paragraph is an ordered sequence of text runs.
type Paragraph struct {
	Runs []string `json:"runs"`
}

// NewTable builds a table from rows, padding short rows with empty cells
// so that every column has the same length.
func NewTable(rows [][]string) Table {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	columns := make([]Column, width)
	for colIdx := range columns {
		cells := make([]string, len(rows))
		for rowIdx, row := range rows {
			if colIdx < len(row) {
				cells[rowIdx] = row[colIdx]
			}
		}
		columns[colIdx] = Column{Cells: cells}
	}

	return Table{Columns: columns}
}
