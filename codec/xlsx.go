package codec

import (
	"fmt"
	"io"

	"github.com/redexp/pedigree/state"
	"github.com/redexp/pedigree/utils"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Pedigree"

// EncodeXLSX writes the same table as the csv into a single sheet. Positions stay numeric.
func EncodeXLSX(w io.Writer, store *state.Store) (err error) {
	f := excelize.NewFile()
	defer f.Close()

	err = f.SetSheetName(f.GetSheetName(0), SheetName)

	if err != nil {
		return
	}

	for i, row := range Rows(store) {
		cells := make([]any, len(row))

		for j, value := range row {
			cells[j] = value

			if i > 0 && (Columns[j] == ColX || Columns[j] == ColY) {
				if v := parseCoord(value); v != nil {
					cells[j] = *v
				}
			}
		}

		cell, err := excelize.CoordinatesToCellName(1, i+1)

		if err != nil {
			return err
		}

		err = f.SetSheetRow(SheetName, cell, &cells)

		if err != nil {
			return err
		}
	}

	_, err = f.WriteTo(w)

	if err != nil {
		return
	}

	log.Infof("exported %d members to xlsx", store.Len())

	return
}

// DecodeXLSX reads the first sheet that has any rows.
func DecodeXLSX(r io.Reader, newId utils.IdGenerator) (*state.Store, error) {
	f, err := excelize.OpenReader(r)

	if err != nil {
		return nil, fmt.Errorf("opening xlsx: %w", err)
	}

	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)

		if err != nil || len(rows) == 0 {
			continue
		}

		return FromRows(rows, newId)
	}

	return nil, ErrNoHeader
}
