package schedule

import (
	"github.com/kverhoeven/matchfilter/parsers"
	"github.com/kverhoeven/matchfilter/roster"
)

// Keep reports whether a match row stays in the schedule: it stays when
// either team cell is blank or when either team fields a roster player. Only
// rows where both teams are filled in and neither has a club player get
// dropped.
func Keep(players roster.Roster, team1Cell, team2Cell string) bool {
	team1 := SplitTeamCell(team1Cell)
	team2 := SplitTeamCell(team2Cell)
	if len(team1) == 0 || len(team2) == 0 {
		return true
	}
	return anyMember(players, team1) || anyMember(players, team2)
}

func anyMember(players roster.Roster, names []string) bool {
	for _, name := range names {
		if players.Contains(name) {
			return true
		}
	}
	return false
}

// Filter applies Keep to every row of t using the resolved team columns and
// returns a new table with the surviving rows in their original order. All
// columns pass through unchanged; t itself is not modified.
func Filter(t *parsers.Table, cols Columns, players roster.Roster) *parsers.Table {
	kept := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if Keep(players, row[cols.Team1], row[cols.Team2]) {
			kept = append(kept, row)
		}
	}
	return &parsers.Table{Header: t.Header, Rows: kept}
}
