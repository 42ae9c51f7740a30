package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kverhoeven/matchfilter/parsers"
)

// Conventional schedule layout: time, court, team 1, score, team 2 spread
// over the first six columns, teams in the 4th and 6th.
const (
	defaultTeam1Index = 3
	defaultTeam2Index = 5
	minDefaultColumns = 6
)

var (
	ErrColumnNotFound        = errors.New("column not found")
	ErrUnexpectedColumnCount = errors.New("unexpected column count")
)

// ColumnRef identifies a table column either by header name or by 0-based
// position.
type ColumnRef struct {
	name   string
	index  int
	byName bool
}

func ByName(name string) ColumnRef { return ColumnRef{name: name, byName: true} }

func ByIndex(index int) ColumnRef { return ColumnRef{index: index} }

// ParseColumnRef interprets a flag value: an integer is a 0-based position,
// anything else a header name.
func ParseColumnRef(s string) ColumnRef {
	if index, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return ByIndex(index)
	}
	return ByName(s)
}

func (c ColumnRef) String() string {
	if c.byName {
		return c.name
	}
	return "#" + strconv.Itoa(c.index)
}

func (c ColumnRef) resolve(t *parsers.Table) (int, error) {
	if c.byName {
		want := strings.TrimSpace(c.name)
		for i, header := range t.Header {
			if strings.TrimSpace(header) == want {
				return i, nil
			}
		}
		return 0, fmt.Errorf("%w: no header named %q (have %v)", ErrColumnNotFound, c.name, t.Header)
	}
	if c.index < 0 || c.index >= t.ColumnCount() {
		return 0, fmt.Errorf("%w: index %d outside table with %d columns", ErrColumnNotFound, c.index, t.ColumnCount())
	}
	return c.index, nil
}

// Columns holds the team column indexes resolved once per run, before any row
// is filtered.
type Columns struct {
	Team1      int
	Team2      int
	Team1Label string
	Team2Label string
}

// ResolveColumns picks the two team columns of t. Explicit refs win; a nil
// ref falls back to the positional default, which requires the table to be at
// least six columns wide.
func ResolveColumns(t *parsers.Table, team1, team2 *ColumnRef) (Columns, error) {
	if team1 == nil || team2 == nil {
		if t.ColumnCount() < minDefaultColumns {
			return Columns{}, fmt.Errorf("%w: table has %d columns, need at least %d for the positional default",
				ErrUnexpectedColumnCount, t.ColumnCount(), minDefaultColumns)
		}
	}

	ref1 := ByIndex(defaultTeam1Index)
	ref2 := ByIndex(defaultTeam2Index)
	if team1 != nil {
		ref1 = *team1
	}
	if team2 != nil {
		ref2 = *team2
	}

	idx1, err := ref1.resolve(t)
	if err != nil {
		return Columns{}, err
	}
	idx2, err := ref2.resolve(t)
	if err != nil {
		return Columns{}, err
	}

	return Columns{
		Team1:      idx1,
		Team2:      idx2,
		Team1Label: columnLabel(t, idx1),
		Team2Label: columnLabel(t, idx2),
	}, nil
}

func columnLabel(t *parsers.Table, index int) string {
	if header := strings.TrimSpace(t.Header[index]); header != "" {
		return header
	}
	return "#" + strconv.Itoa(index)
}
