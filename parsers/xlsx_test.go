package parsers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseXLSX(t *testing.T) {
	buf := workbookBytes(t, [][]interface{}{
		{"Time", "Court", "Discipline", "Team 1", "Score", "Team 2"},
		{"09:00", "1", "MS", "Noa Deprez", "", "Someone Else"},
		{"10:30", "4", "MD", "Carl / Dave", "", "Noa Deprez\nEve"},
	})

	table, err := ParseXLSX(buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"Time", "Court", "Discipline", "Team 1", "Score", "Team 2"}, table.Header)
	require.Equal(t, 2, table.RowCount())
	assert.Equal(t, "Noa Deprez", table.Rows[0][3])
	assert.Len(t, table.Rows[1], 6, "trailing empty cells padded back to header width")
}

func TestParseXLSXEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = ParseXLSX(buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedSchedule)
}

func TestParseXLSXNotAWorkbook(t *testing.T) {
	_, err := ParseXLSX(strings.NewReader("this is not a zip archive"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedSchedule)
}
