package output

import (
	"encoding/csv"
	"io"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

// WriteCSV writes one line per player, with a header line.
func WriteCSV(w io.Writer, rosters []*models.Roster) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tableHeader); err != nil {
		return err
	}
	if err := cw.WriteAll(flatten(rosters)); err != nil {
		return err
	}
	return cw.Error()
}
