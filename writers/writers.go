package writers

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kverhoeven/matchfilter/parsers"
)

// Format selects the serialization used for an output table.
type Format int

const (
	FormatXLSX Format = iota
	FormatCSV
)

// FormatForPath maps an output path to its serialization: .csv writes CSV,
// everything else a workbook.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatXLSX
}

// WriteTable serializes t to w in the given format, header first, column
// order untouched.
func WriteTable(w io.Writer, t *parsers.Table, format Format) error {
	if format == FormatCSV {
		return WriteCSV(w, t)
	}
	return WriteXLSX(w, t)
}

// WriteCSV writes the table as RFC 4180 CSV.
func WriteCSV(w io.Writer, t *parsers.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the table as a single-sheet workbook.
func WriteXLSX(w io.Writer, t *parsers.Table) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	if err := setRow(f, sheet, 1, t.Header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, row int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	return f.SetSheetRow(sheet, cell, &values)
}
