package reader

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

func TestReadXLSXTextBoxes(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.AddShape("Sheet1", &excelize.Shape{
		Cell:      "D1",
		Type:      "rect",
		Paragraph: []excelize.RichTextRun{{Text: "Команда Ак Барс"}},
	}))
	header := []interface{}{"п/п", "Фамилия, имя"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &header))
	row := []interface{}{1, "Иванов Иван"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &row))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	doc, err := ReadXLSX(bytes.NewReader(buf.Bytes()), "ak_bars.xlsx")

	require.NoError(t, err)
	assert.Equal(t, []models.Paragraph{{Runs: []string{"Команда Ак Барс"}}}, doc.Paragraphs)
	assert.Len(t, doc.Tables, 1)
}

func TestParseShapeTexts(t *testing.T) {
	drawing := `<xdr:wsDr xmlns:xdr="x" xmlns:a="a">
  <xdr:twoCellAnchor>
    <xdr:sp>
      <xdr:txBody>
        <a:p><a:r><a:t>Команда </a:t></a:r><a:r><a:t>Ак Барс</a:t></a:r></a:p>
        <a:p><a:r><a:t>г. Казань</a:t></a:r></a:p>
      </xdr:txBody>
    </xdr:sp>
  </xdr:twoCellAnchor>
  <xdr:twoCellAnchor>
    <xdr:sp><xdr:txBody><a:p><a:r><a:t> </a:t></a:r></a:p></xdr:txBody></xdr:sp>
  </xdr:twoCellAnchor>
  <xdr:twoCellAnchor>
    <xdr:pic><a:t>ignored</a:t></xdr:pic>
  </xdr:twoCellAnchor>
</xdr:wsDr>`

	assert.Equal(t, []string{"Команда Ак Барс\nг. Казань"}, parseShapeTexts([]byte(drawing)))
	assert.Empty(t, parseShapeTexts(nil))
}

func TestFindDrawingRelationship(t *testing.T) {
	rels := `<Relationships>
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/vmlDrawing" Target="../drawings/vmlDrawing1.vml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/drawing" Target="../drawings/drawing1.xml"/>
</Relationships>`

	assert.Equal(t, "../drawings/drawing1.xml", findDrawingRelationship([]byte(rels)))
	assert.Equal(t, "", findDrawingRelationship(nil))
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		baseDir  string
		expected string
	}{
		{"../drawings/drawing1.xml", "xl/drawings", "xl/drawings/drawing1.xml"},
		{"/xl/drawings/drawing2.xml", "xl/drawings", "xl/drawings/drawing2.xml"},
		{"worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, resolveRelativePath(tt.target, tt.baseDir))
	}
}
