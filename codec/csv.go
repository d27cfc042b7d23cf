package codec

import (
	"encoding/csv"
	"io"

	"github.com/redexp/pedigree/state"
	"github.com/redexp/pedigree/utils"
)

func EncodeCSV(w io.Writer, store *state.Store) error {
	cw := csv.NewWriter(w)

	err := cw.WriteAll(Rows(store))

	if err != nil {
		return err
	}

	log.Infof("exported %d members to csv", store.Len())

	return nil
}

func DecodeCSV(r io.Reader, newId utils.IdGenerator) (*state.Store, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()

	if err != nil {
		return nil, err
	}

	return FromRows(rows, newId)
}
