package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTeamCell(t *testing.T) {
	cases := []struct {
		name string
		cell string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \n  ", nil},
		{"single player", "Noa Deprez", []string{"noa deprez"}},
		{"slash doubles", "Alice Smith / Bob Jones", []string{"alice smith", "bob jones"}},
		{"newline doubles", "Alice Smith\nBob Jones", []string{"alice smith", "bob jones"}},
		{"crlf doubles", "Alice Smith\r\nBob Jones", []string{"alice smith", "bob jones"}},
		{"newline then slash", "Alice / Bob\nCarl / Dave", []string{"alice", "bob", "carl", "dave"}},
		{"trailing slash", "Alice Smith /", []string{"alice smith"}},
		{"case folded", "  NOA Deprez  ", []string{"noa deprez"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitTeamCell(tc.cell))
		})
	}
}
