// Package reader turns roster documents into models.Document: tables
// as columns of cell text and free text as paragraphs of runs.
package reader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

// ErrUnsupportedFormat indicates a file extension no reader handles.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Format is a supported document container.
type Format string

const (
	FormatDocx Format = "docx"
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// Detect returns the document format based on file extension.
func Detect(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return FormatDocx, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Open reads the document at path with the reader for its format.
func Open(path string) (*models.Document, error) {
	format, err := Detect(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	switch format {
	case FormatDocx:
		return ReadDocx(f, info.Size(), name)
	case FormatXLSX:
		return ReadXLSX(f, name)
	default:
		return ReadCSV(f, name)
	}
}

// cleanText brings cell text to NFC so that headers typed with
// combining marks (и + breve) match the precomposed patterns.
func cleanText(s string) string {
	return norm.NFC.String(s)
}

// splitSheet separates a grid of rows into title lines and a table.
// Leading rows with at most one filled cell are titles (the form
// heading and the team line); the table starts at the first row with
// two or more filled cells.
func splitSheet(rows [][]string) ([]models.Paragraph, []models.Table) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, nil
	}

	var paragraphs []models.Paragraph
	start := minRow
	for ; start <= maxRow; start++ {
		filled := nonEmptyCells(rows[start])
		if len(filled) > 1 {
			break
		}
		if len(filled) == 1 {
			paragraphs = append(paragraphs, models.Paragraph{Runs: filled})
		}
	}
	if start > maxRow {
		return paragraphs, nil
	}

	grid := make([][]string, 0, maxRow-start+1)
	for rowIdx := start; rowIdx <= maxRow; rowIdx++ {
		row := rows[rowIdx]
		cells := make([]string, maxCol-minCol+1)
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			cells[colIdx-minCol] = cleanText(row[colIdx])
		}
		grid = append(grid, cells)
	}

	return paragraphs, []models.Table{models.NewTable(grid)}
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

func nonEmptyCells(row []string) []string {
	var filled []string
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			filled = append(filled, cleanText(cell))
		}
	}
	return filled
}
