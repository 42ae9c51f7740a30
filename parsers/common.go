package parsers

import "errors"

// ErrMalformedSchedule marks input that could not be read as a table at all.
var ErrMalformedSchedule = errors.New("schedule is not a parsable table")

// Table is the in-memory form of a schedule file: a header row naming the
// columns and the match rows below it. Whether the header carries real column
// names or is just the first data row makes no difference to filtering; it
// only matters when columns are looked up by name.
type Table struct {
	Header []string
	Rows   [][]string
}

func (t *Table) ColumnCount() int { return len(t.Header) }

func (t *Table) RowCount() int { return len(t.Rows) }

// normalize squares off a ragged table. Spreadsheet readers trim trailing
// empty cells, so the header and individual rows can come back with different
// widths; every row (and the header) is padded to the widest one so that
// pass-through columns stay aligned in the output.
func (t *Table) normalize() {
	width := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	t.Header = pad(t.Header, width)
	for i, row := range t.Rows {
		t.Rows[i] = pad(row, width)
	}
}

func pad(cells []string, width int) []string {
	if len(cells) >= width {
		return cells
	}
	padded := make([]string, width)
	copy(padded, cells)
	return padded
}
