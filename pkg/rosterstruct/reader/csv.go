package reader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV reads a roster exported as CSV. Files that are not valid UTF-8
// are decoded as Windows-1251, the encoding spreadsheet tools use for
// Russian text. The delimiter is ';' when the file has more semicolons
// than commas.
func ReadCSV(r io.Reader, name string) (*models.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(charmap.Windows1251.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("decode windows-1251: %w", err)
		}
		data = decoded
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = sniffDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	paragraphs, tables := splitSheet(rows)
	return &models.Document{Name: name, Paragraphs: paragraphs, Tables: tables}, nil
}

func sniffDelimiter(data []byte) rune {
	if bytes.Count(data, []byte(";")) > bytes.Count(data, []byte(",")) {
		return ';'
	}
	return ','
}
