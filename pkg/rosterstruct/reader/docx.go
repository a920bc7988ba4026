package reader

import (
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

// ReadDocx reads a Word document. Only top-level paragraphs and tables
// are read; hyperlinks and drawings carry no roster data.
func ReadDocx(r io.ReaderAt, size int64, name string) (*models.Document, error) {
	doc, err := docx.Parse(r, size)
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}
	return FromDocx(doc, name), nil
}

// FromDocx converts a parsed Word document.
func FromDocx(doc *docx.Docx, name string) *models.Document {
	out := &models.Document{Name: name}
	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			out.Paragraphs = append(out.Paragraphs, models.Paragraph{Runs: paragraphRuns(it)})
		case *docx.Table:
			out.Tables = append(out.Tables, docxTable(it))
		}
	}
	return out
}

// docxTable lays the table out on its grid: a cell spanning several
// grid columns repeats its text in each of them, and a vertically merged
// cell repeats the text of the cell above.
func docxTable(tbl *docx.Table) models.Table {
	rows := make([][]string, 0, len(tbl.TableRows))
	for rowIdx, tr := range tbl.TableRows {
		var row []string
		for _, tc := range tr.TableCells {
			text := cellText(tc)
			span := 1
			if props := tc.TableCellProperties; props != nil {
				if props.GridSpan != nil && props.GridSpan.Val > 1 {
					span = props.GridSpan.Val
				}
				if props.VMerge != nil && props.VMerge.Val != "restart" && rowIdx > 0 {
					if above := rows[rowIdx-1]; len(row) < len(above) {
						text = above[len(row)]
					}
				}
			}
			for i := 0; i < span; i++ {
				row = append(row, text)
			}
		}
		rows = append(rows, row)
	}
	return models.NewTable(rows)
}

// cellText joins the paragraphs of a cell with newlines.
func cellText(tc *docx.WTableCell) string {
	lines := make([]string, 0, len(tc.Paragraphs))
	for _, p := range tc.Paragraphs {
		lines = append(lines, strings.Join(paragraphRuns(p), ""))
	}
	return cleanText(strings.Join(lines, "\n"))
}

func paragraphRuns(p *docx.Paragraph) []string {
	var runs []string
	for _, child := range p.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		runs = append(runs, cleanText(runText(run)))
	}
	return runs
}

func runText(run *docx.Run) string {
	var sb strings.Builder
	for _, child := range run.Children {
		switch c := child.(type) {
		case *docx.Text:
			sb.WriteString(c.Text)
		case *docx.Tab:
			sb.WriteString("\t")
		case *docx.BarterRabbet:
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
