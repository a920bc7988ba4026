package reader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path      string
		expected  Format
		expectErr bool
	}{
		{"roster.docx", FormatDocx, false},
		{"ROSTER.DOCX", FormatDocx, false},
		{"dir/roster.xlsx", FormatXLSX, false},
		{"roster.csv", FormatCSV, false},
		{"roster.doc", "", true},
		{"roster", "", true},
	}

	for _, tt := range tests {
		format, err := Detect(tt.path)
		if tt.expectErr {
			assert.True(t, errors.Is(err, ErrUnsupportedFormat), "path %q", tt.path)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.expected, format, "path %q", tt.path)
	}
}

func TestOpenErrors(t *testing.T) {
	_, err := Open("roster.pdf")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Open(filepath.Join(t.TempDir(), "missing.docx"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSplitSheet(t *testing.T) {
	rows := [][]string{
		{},
		{"", "Именная заявка"},
		{"", "Команда Ак Барс"},
		{"", "п/п", "Фамилия, имя"},
		{"", "1", "Иванов Иван"},
		{"", "2"},
	}

	paragraphs, tables := splitSheet(rows)

	assert.Equal(t, []models.Paragraph{
		{Runs: []string{"Именная заявка"}},
		{Runs: []string{"Команда Ак Барс"}},
	}, paragraphs)
	require.Len(t, tables, 1)
	assert.Equal(t, []models.Column{
		{Cells: []string{"п/п", "1", "2"}},
		{Cells: []string{"Фамилия, имя", "Иванов Иван", ""}},
	}, tables[0].Columns)
}

func TestSplitSheetWithoutTable(t *testing.T) {
	paragraphs, tables := splitSheet([][]string{{"Заявка"}, {" "}, {"", "Команда"}})
	assert.Len(t, paragraphs, 2)
	assert.Empty(t, tables)

	paragraphs, tables = splitSheet(nil)
	assert.Empty(t, paragraphs)
	assert.Empty(t, tables)
}

func TestFindDataBounds(t *testing.T) {
	minRow, maxRow, minCol, maxCol := findDataBounds([][]string{
		{"", ""},
		{"", "a", ""},
		{"", "", "", "b"},
		{" "},
	})

	assert.Equal(t, 1, minRow)
	assert.Equal(t, 2, maxRow)
	assert.Equal(t, 1, minCol)
	assert.Equal(t, 3, maxCol)
}

func TestCleanTextComposes(t *testing.T) {
	// "й" written as "и" followed by a combining breve.
	assert.Equal(t, "Игровой", cleanText("Игровои\u0306"))
}
