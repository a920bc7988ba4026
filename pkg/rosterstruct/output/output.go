// Package output serializes extracted rosters.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

// Format is an output serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be json, csv, or xlsx)", s)
	}
}

// Write serializes rosters to w in the given format.
func Write(w io.Writer, format Format, rosters []*models.Roster, pretty bool) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, rosters)
	case FormatXLSX:
		return WriteXLSX(w, rosters)
	default:
		data, err := ToJSON(rosters, pretty)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	}
}

// tableHeader is the column layout of the flat CSV and XLSX exports.
var tableHeader = []string{
	"file", "team", "surname", "name", "patronymic", "date_of_birth", "number", "position",
}

// flatten returns one row per player in tableHeader order.
func flatten(rosters []*models.Roster) [][]string {
	var rows [][]string
	for _, roster := range rosters {
		for _, p := range roster.Players {
			rows = append(rows, []string{
				roster.File,
				p.Team,
				p.Surname,
				p.Name,
				p.Patronymic.String(),
				p.BirthDate.String(),
				strconv.Itoa(int(p.Number)),
				p.Position.Label(),
			})
		}
	}
	return rows
}
