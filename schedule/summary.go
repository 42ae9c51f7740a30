package schedule

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Summary describes one filtering run.
type Summary struct {
	RosterSize  int    `yaml:"roster_size"`
	InputRows   int    `yaml:"input_rows"`
	Team1Column string `yaml:"team1_column"`
	Team2Column string `yaml:"team2_column"`
	OutputRows  int    `yaml:"output_rows"`
	RemovedRows int    `yaml:"removed_rows"`
}

// WriteYAML emits the summary as a small YAML document.
func (s Summary) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&s); err != nil {
		return err
	}
	return enc.Close()
}
