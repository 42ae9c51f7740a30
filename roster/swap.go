package roster

import (
	"os"
	"strings"
)

// SwapNames rewrites a roster file in place, converting "Last, First" lines
// to "First Last". Comment lines and lines without a comma pass through
// untouched. Returns the number of lines rewritten.
func SwapNames(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	lines := strings.Split(string(data), "\n")
	swapped := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || !strings.Contains(trimmed, ",") {
			continue
		}
		last, first, _ := strings.Cut(trimmed, ",")
		lines[i] = strings.TrimSpace(first) + " " + strings.TrimSpace(last)
		swapped++
	}

	if swapped == 0 {
		return 0, nil
	}
	return swapped, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644)
}
