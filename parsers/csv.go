package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ParseCSV reads a comma-separated schedule. The first record becomes the
// header; quoted cells may contain embedded line breaks, which is how some
// exports encode doubles pairs.
func ParseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSchedule, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: file contains no rows", ErrMalformedSchedule)
	}

	table := &Table{Header: records[0], Rows: records[1:]}
	table.normalize()
	return table, nil
}
