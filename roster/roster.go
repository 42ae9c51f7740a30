package roster

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Roster is the set of club player names, held in normalized form.
type Roster map[string]struct{}

// Normalize produces the canonical form used for membership checks:
// surrounding whitespace removed, name lowercased. The same form is applied
// when the roster is built and when schedule cells are compared against it.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Load reads a roster file: one player name per line, UTF-8. Blank lines and
// lines starting with '#' are ignored.
func Load(path string) (Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads roster lines from r.
func Parse(r io.Reader) (Roster, error) {
	players := Roster{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		players[Normalize(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r Roster) Contains(name string) bool {
	_, ok := r[Normalize(name)]
	return ok
}

func (r Roster) Len() int { return len(r) }
