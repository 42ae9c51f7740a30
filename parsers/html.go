package parsers

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ParseHTML reads the first <table> element in the document. The first row
// (whether or not it sits in a <thead>) becomes the header. A <br> inside a
// cell is kept as a line break so doubles pairs stay splittable downstream.
func ParseHTML(r io.Reader) (*Table, error) {
	z := html.NewTokenizer(r)
	table := &Table{}
	inTable := false
	inRow := false
	inCell := false
	headerDone := false
	var row []string
	var cell strings.Builder

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("%w: %v", ErrMalformedSchedule, err)
			}
			return nil, fmt.Errorf("%w: no table element found", ErrMalformedSchedule)
		case html.StartTagToken, html.SelfClosingTagToken:
			t := z.Token()
			switch t.Data {
			case "table":
				inTable = true
			case "tr":
				if inTable {
					inRow = true
					row = nil
				}
			case "th", "td":
				if inRow {
					inCell = true
					cell.Reset()
				}
			case "br":
				if inCell {
					cell.WriteByte('\n')
				}
			}
		case html.TextToken:
			if inCell {
				cell.Write(z.Text())
			}
		case html.EndTagToken:
			t := z.Token()
			switch t.Data {
			case "th", "td":
				if inCell {
					row = append(row, strings.TrimSpace(cell.String()))
					inCell = false
				}
			case "tr":
				if inRow {
					inRow = false
					if !headerDone {
						table.Header = row
						headerDone = true
					} else {
						table.Rows = append(table.Rows, row)
					}
				}
			case "table":
				if !inTable {
					continue
				}
				if !headerDone {
					return nil, fmt.Errorf("%w: table has no rows", ErrMalformedSchedule)
				}
				table.normalize()
				return table, nil
			}
		}
	}
}
