package schedule

import (
	"strings"

	"github.com/kverhoeven/matchfilter/roster"
)

// SplitTeamCell breaks a raw team cell into individual normalized player
// names. Doubles pairs arrive either on two lines inside one cell or joined
// with a slash; both can occur in the same cell. A blank cell yields no
// names.
func SplitTeamCell(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	var names []string
	lines := strings.FieldsFunc(cell, func(r rune) bool { return r == '\n' || r == '\r' })
	for _, line := range lines {
		for _, part := range strings.Split(line, "/") {
			if name := roster.Normalize(part); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}
