package reader

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

// ReadXLSX reads a workbook. Each sheet contributes its title lines and
// text boxes as paragraphs and its data region as one table.
func ReadXLSX(r io.Reader, name string) (*models.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read xlsx: %w", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	// Encrypted workbooks are not zip archives; their text boxes are skipped.
	var textBoxes map[string][]models.Paragraph
	if zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data))); err == nil {
		textBoxes = sheetTextBoxes(zr)
	}

	doc := &models.Document{Name: name}
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
		}
		paragraphs, tables := splitSheet(rows)
		doc.Paragraphs = append(doc.Paragraphs, paragraphs...)
		doc.Paragraphs = append(doc.Paragraphs, textBoxes[sheetName]...)
		doc.Tables = append(doc.Tables, tables...)
	}

	return doc, nil
}
