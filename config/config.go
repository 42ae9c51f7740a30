package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config carries file-supplied defaults for the filter command. Flags given
// on the command line win over whatever the file sets.
type Config struct {
	Input    string `json:"input"`
	Output   string `json:"output"`
	Players  string `json:"players"`
	Team1Col string `json:"team1_col"`
	Team2Col string `json:"team2_col"`
	Verbose  bool   `json:"verbose"`
}

// Load reads a YAML or JSON config file, chosen by extension.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
