package parser

import (
	"regexp"
	"unicode/utf8"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

// maxRowIndexLen is the rune length below which a cell under the
// row-index marker still counts as a row number.
const maxRowIndexLen = 4

// RawValue is one raw cell of a located field.
type RawValue struct {
	// Row is the position of the cell in the located field.
	Row int
	// Text is the cell text as read from the document.
	Text string
	// Present is false for blank cells.
	Present bool
}

// Strategy names how a field was located.
type Strategy string

const (
	StrategyNone     Strategy = "none"
	StrategyHeader   Strategy = "header"
	StrategyRowCount Strategy = "row-count"
)

// FlattenColumns returns the columns of every table, in table order.
func FlattenColumns(doc *models.Document) []models.Column {
	var columns []models.Column
	for _, table := range doc.Tables {
		columns = append(columns, table.Columns...)
	}
	return columns
}

// FlattenText returns the runs of every paragraph, in order.
func FlattenText(doc *models.Document) []string {
	var runs []string
	for _, para := range doc.Paragraphs {
		runs = append(runs, para.Runs...)
	}
	return runs
}

// LocateField returns the raw values of the field whose header matches
// pattern. Columns with a matching header contribute all their data
// cells. When no header matches, the row count is inferred from the
// row-index column and that many cells are taken below the first cell
// matching pattern.
func LocateField(columns []models.Column, pattern, rowIndex *regexp.Regexp) ([]RawValue, Strategy) {
	var values []RawValue
	for _, column := range columns {
		if len(column.Cells) == 0 || !pattern.MatchString(column.Header()) {
			continue
		}
		for _, text := range column.Cells[1:] {
			values = append(values, newRawValue(len(values), text))
		}
	}
	if len(values) > 0 {
		return values, StrategyHeader
	}

	count := inferRowCount(columns, rowIndex)
	if count == 0 {
		return nil, StrategyNone
	}

	for _, column := range columns {
		for idx, text := range column.Cells {
			if !pattern.MatchString(text) {
				continue
			}
			end := min(idx+1+count, len(column.Cells))
			for _, cell := range column.Cells[idx+1 : end] {
				values = append(values, newRawValue(len(values), cell))
			}
			if len(values) == 0 {
				return nil, StrategyNone
			}
			return values, StrategyRowCount
		}
	}

	return nil, StrategyNone
}

// inferRowCount counts the short non-blank cells that follow the first
// row-index marker with at least one such cell.
func inferRowCount(columns []models.Column, rowIndex *regexp.Regexp) int {
	for _, column := range columns {
		for idx, text := range column.Cells {
			if !rowIndex.MatchString(text) {
				continue
			}
			count := 0
			for _, cell := range column.Cells[idx+1:] {
				if isBlank(cell) || utf8.RuneCountInString(cell) >= maxRowIndexLen {
					break
				}
				count++
			}
			if count > 0 {
				return count
			}
		}
	}
	return 0
}

func newRawValue(row int, text string) RawValue {
	return RawValue{Row: row, Text: text, Present: !isBlank(text)}
}
