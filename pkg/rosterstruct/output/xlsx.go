package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

// SheetName is the name of the sheet the XLSX export writes.
const SheetName = "Players"

// WriteXLSX writes a workbook with one sheet listing every player.
func WriteXLSX(w io.Writer, rosters []*models.Roster) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	rows := append([][]string{tableHeader}, flatten(rosters)...)
	for idx, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, idx+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for i, v := range row {
			values[i] = v
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", idx+1, err)
		}
	}

	_, err := f.WriteTo(w)
	return err
}
