package reader

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

// drawingRelType ends the relationship type of a sheet drawing part.
const drawingRelType = "/drawing"

// sheetTextBoxes returns the text boxes drawn on each sheet of an xlsx
// archive, one paragraph per shape in drawing order. Some federation
// workbooks carry the team line in a text box above the table.
func sheetTextBoxes(r *zip.Reader) map[string][]models.Paragraph {
	result := make(map[string][]models.Paragraph)

	workbookXML := readZipFile(r, "xl/workbook.xml")
	sheetNames := parseWorkbookSheets(workbookXML)
	if len(sheetNames) == 0 {
		return result
	}
	sheetFiles := parseWorkbookRels(readZipFile(r, "xl/_rels/workbook.xml.rels"), sheetNames)

	for sheetName, sheetPath := range sheetFiles {
		relsPath := strings.Replace(sheetPath, "worksheets/", "worksheets/_rels/", 1) + ".rels"
		target := findDrawingRelationship(readZipFile(r, relsPath))
		if target == "" {
			continue
		}
		drawingXML := readZipFile(r, resolveRelativePath(target, "xl/drawings"))
		for _, text := range parseShapeTexts(drawingXML) {
			result[sheetName] = append(result[sheetName], models.Paragraph{Runs: []string{cleanText(text)}})
		}
	}

	return result
}

// parseShapeTexts returns the non-blank text of every shape in a
// drawing part. Paragraphs of one shape are joined with newlines.
func parseShapeTexts(data []byte) []string {
	var texts []string
	var lines []string
	var line strings.Builder
	inShape := false

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sp":
				inShape = true
				lines = lines[:0]
			case "p":
				line.Reset()
			case "t":
				if inShape {
					text, _ := readElementText(decoder)
					line.WriteString(text)
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if inShape {
					lines = append(lines, line.String())
				}
			case "sp":
				inShape = false
				if text := strings.Join(lines, "\n"); strings.TrimSpace(text) != "" {
					texts = append(texts, text)
				}
			}
		}
	}

	return texts
}

func readZipFile(r *zip.Reader, name string) []byte {
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil
		}
		return data
	}
	return nil
}

// readElementText reads the character data up to the end of the
// current element.
func readElementText(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return sb.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return sb.String(), nil
}

func resolveRelativePath(target, baseDir string) string {
	switch {
	case strings.HasPrefix(target, "../"):
		for strings.HasPrefix(target, "../") {
			target = strings.TrimPrefix(target, "../")
		}
		return "xl/" + target
	case strings.HasPrefix(target, "/"):
		return strings.TrimPrefix(target, "/")
	default:
		return baseDir + "/" + target
	}
}

// parseWorkbookSheets maps relationship ids to sheet names.
func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "sheet" {
			continue
		}
		var name, rID string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "name":
				name = attr.Value
			case "id":
				rID = attr.Value
			}
		}
		if name != "" && rID != "" {
			result[rID] = name
		}
	}

	return result
}

// parseWorkbookRels maps sheet names to their worksheet part.
func parseWorkbookRels(data []byte, sheetNames map[string]string) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		var rID, target string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "Id":
				rID = attr.Value
			case "Target":
				target = attr.Value
			}
		}
		if name, ok := sheetNames[rID]; ok && strings.Contains(strings.ToLower(target), "worksheet") {
			result[name] = resolveRelativePath(target, "xl")
		}
	}

	return result
}

// findDrawingRelationship returns the target of the drawing part in a
// sheet relationships file. Comment drawings (vmlDrawing) are skipped.
func findDrawingRelationship(data []byte) string {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		var relType, target string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "Type":
				relType = attr.Value
			case "Target":
				target = attr.Value
			}
		}
		if strings.HasSuffix(relType, drawingRelType) {
			return target
		}
	}

	return ""
}
