package schedule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kverhoeven/matchfilter/parsers"
	"github.com/kverhoeven/matchfilter/roster"
)

func testRoster(t *testing.T, names ...string) roster.Roster {
	t.Helper()
	players, err := roster.Parse(strings.NewReader(strings.Join(names, "\n")))
	require.NoError(t, err)
	return players
}

func TestKeep(t *testing.T) {
	players := testRoster(t, "Noa Deprez")

	cases := []struct {
		name  string
		team1 string
		team2 string
		want  bool
	}{
		{"team1 hit", "Noa Deprez", "Someone Else", true},
		{"team1 blank", "", "Unrelated Player", true},
		{"team2 blank", "Unrelated Player", "   ", true},
		{"no hit", "Alice", "Bob", false},
		{"team2 doubles hit", "Carl / Dave", "Noa Deprez / Eve", true},
		{"case insensitive hit", "NOA DEPREZ", "Someone Else", true},
		{"newline doubles hit", "Alice", "Eve\nNoa Deprez", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Keep(players, tc.team1, tc.team2))
		})
	}
}

func TestKeepEmptyRoster(t *testing.T) {
	players := roster.Roster{}
	assert.False(t, Keep(players, "Alice", "Bob"), "non-blank teams never match an empty roster")
	assert.True(t, Keep(players, "", "Bob"), "blank teams are kept regardless of roster")
}

func scheduleTable() *parsers.Table {
	return &parsers.Table{
		Header: []string{"Time", "Court", "Discipline", "Team 1", "Score", "Team 2"},
		Rows: [][]string{
			{"09:00", "1", "MS", "Noa Deprez", "", "Someone Else"},
			{"09:30", "2", "WS", "", "", "Unrelated Player"},
			{"10:00", "3", "MS", "Alice", "", "Bob"},
			{"10:30", "4", "MD", "Carl / Dave", "", "Noa Deprez / Eve"},
		},
	}
}

func TestFilter(t *testing.T) {
	players := testRoster(t, "Noa Deprez")
	table := scheduleTable()
	cols, err := ResolveColumns(table, nil, nil)
	require.NoError(t, err)

	filtered := Filter(table, cols, players)

	require.Equal(t, 3, filtered.RowCount())
	assert.Equal(t, table.Header, filtered.Header, "column set and order preserved")
	assert.Equal(t, "09:00", filtered.Rows[0][0])
	assert.Equal(t, "09:30", filtered.Rows[1][0])
	assert.Equal(t, "10:30", filtered.Rows[2][0], "relative row order preserved")
	assert.Equal(t, 4, table.RowCount(), "input table untouched")
}

func TestFilterIdempotent(t *testing.T) {
	players := testRoster(t, "Noa Deprez")
	table := scheduleTable()
	cols, err := ResolveColumns(table, nil, nil)
	require.NoError(t, err)

	once := Filter(table, cols, players)
	twice := Filter(once, cols, players)
	assert.Equal(t, once, twice)
}

func TestFilterDropInvariant(t *testing.T) {
	players := testRoster(t, "Noa Deprez")
	table := scheduleTable()
	cols, err := ResolveColumns(table, nil, nil)
	require.NoError(t, err)

	filtered := Filter(table, cols, players)
	for _, row := range filtered.Rows {
		assert.True(t, Keep(players, row[cols.Team1], row[cols.Team2]))
	}
}
