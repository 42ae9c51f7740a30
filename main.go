package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/kverhoeven/matchfilter/config"
	"github.com/kverhoeven/matchfilter/parsers"
	"github.com/kverhoeven/matchfilter/roster"
	"github.com/kverhoeven/matchfilter/schedule"
	"github.com/kverhoeven/matchfilter/writers"
)

const (
	inputFlag   = "input"
	outputFlag  = "output"
	playersFlag = "players"
	team1Flag   = "team1-col"
	team2Flag   = "team2-col"
	verboseFlag = "verbose"
	configFlag  = "config"

	defaultInput   = "tmp.xlsx"
	defaultPlayers = "club_players.txt"
)

// Exit codes per failure class.
const (
	exitFailure   = 1
	exitNotFound  = 2
	exitWrite     = 3
	exitMalformed = 4
	exitColumns   = 5
)

var build string
var semanticVersion = "v0.1.0" + build

type runConfig struct {
	input   string
	output  string
	players string
	team1   string
	team2   string
	verbose bool
}

func cliHandle(cfg runConfig) error {
	level := zerolog.InfoLevel
	if cfg.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(level)

	output := cfg.output
	if output == "" {
		output = derivedOutputPath(cfg.input)
	}

	players, err := roster.Load(cfg.players)
	if err != nil {
		return exitFor(fmt.Errorf("loading roster %q: %w", cfg.players, err))
	}
	if players.Len() == 0 {
		logger.Warn().Str("path", cfg.players).Msg("roster is empty; only matches with a blank team will be kept")
	}
	logger.Debug().Int("players", players.Len()).Str("path", cfg.players).Msg("roster loaded")

	table, err := readSchedule(cfg.input)
	if err != nil {
		return exitFor(fmt.Errorf("reading schedule %q: %w", cfg.input, err))
	}
	logger.Debug().Int("rows", table.RowCount()).Str("path", cfg.input).Msg("schedule loaded")

	var team1, team2 *schedule.ColumnRef
	if cfg.team1 != "" {
		ref := schedule.ParseColumnRef(cfg.team1)
		team1 = &ref
	}
	if cfg.team2 != "" {
		ref := schedule.ParseColumnRef(cfg.team2)
		team2 = &ref
	}
	cols, err := schedule.ResolveColumns(table, team1, team2)
	if err != nil {
		return exitFor(err)
	}
	logger.Debug().Str("team1", cols.Team1Label).Str("team2", cols.Team2Label).Msg("team columns resolved")

	filtered := schedule.Filter(table, cols, players)

	if err := writeSchedule(output, filtered); err != nil {
		return cli.Exit(fmt.Sprintf("writing %q: %v", output, err), exitWrite)
	}

	logger.Info().
		Int("kept", filtered.RowCount()).
		Int("removed", table.RowCount()-filtered.RowCount()).
		Str("output", output).
		Msg("schedule filtered")

	if cfg.verbose {
		summary := schedule.Summary{
			RosterSize:  players.Len(),
			InputRows:   table.RowCount(),
			Team1Column: cols.Team1Label,
			Team2Column: cols.Team2Label,
			OutputRows:  filtered.RowCount(),
			RemovedRows: table.RowCount() - filtered.RowCount(),
		}
		if err := summary.WriteYAML(os.Stdout); err != nil {
			return exitFor(err)
		}
	}
	return nil
}

func readSchedule(path string) (*parsers.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parsers.ParseCSV(f)
	case ".html", ".htm":
		return parsers.ParseHTML(f)
	default:
		return parsers.ParseXLSX(f)
	}
}

func writeSchedule(path string, t *parsers.Table) error {
	w := writers.NewAtomicFileWriter(path, 0644)
	if err := writers.WriteTable(w, t, writers.FormatForPath(path)); err != nil {
		w.Abort()
		return err
	}
	return w.Close()
}

// derivedOutputPath places the output next to the input as
// "<stem> - Filtered<ext>". HTML is an input-only format, so its filtered
// schedule lands in a workbook instead.
func derivedOutputPath(input string) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(input, ext)
	switch strings.ToLower(ext) {
	case ".html", ".htm", "":
		ext = ".xlsx"
	}
	return stem + " - Filtered" + ext
}

func exitFor(err error) error {
	code := exitFailure
	switch {
	case errors.Is(err, fs.ErrNotExist):
		code = exitNotFound
	case errors.Is(err, parsers.ErrMalformedSchedule):
		code = exitMalformed
	case errors.Is(err, schedule.ErrColumnNotFound), errors.Is(err, schedule.ErrUnexpectedColumnCount):
		code = exitColumns
	}
	return cli.Exit(err.Error(), code)
}

// applyConfig fills in settings from a config file for every flag the user
// did not set explicitly.
func applyConfig(cCtx *cli.Context, cfg *runConfig, fileCfg *config.Config) {
	if !cCtx.IsSet(inputFlag) && fileCfg.Input != "" {
		cfg.input = fileCfg.Input
	}
	if !cCtx.IsSet(outputFlag) && fileCfg.Output != "" {
		cfg.output = fileCfg.Output
	}
	if !cCtx.IsSet(playersFlag) && fileCfg.Players != "" {
		cfg.players = fileCfg.Players
	}
	if !cCtx.IsSet(team1Flag) && fileCfg.Team1Col != "" {
		cfg.team1 = fileCfg.Team1Col
	}
	if !cCtx.IsSet(team2Flag) && fileCfg.Team2Col != "" {
		cfg.team2 = fileCfg.Team2Col
	}
	if !cCtx.IsSet(verboseFlag) && fileCfg.Verbose {
		cfg.verbose = true
	}
}

func swapNamesCommand() *cli.Command {
	var playersPath string
	return &cli.Command{
		Name:  "swap-names",
		Usage: "Rewrite a roster file from \"Last, First\" to \"First Last\"",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        playersFlag,
				Aliases:     []string{"p"},
				Value:       defaultPlayers,
				Usage:       "Roster file to rewrite in place",
				Destination: &playersPath,
			},
		},
		Action: func(cCtx *cli.Context) error {
			swapped, err := roster.SwapNames(playersPath)
			if err != nil {
				return exitFor(err)
			}
			fmt.Printf("Swapped %d names in %s\n", swapped, playersPath)
			return nil
		},
	}
}

func main() {
	var cfg runConfig
	app := &cli.App{
		Name:    "matchfilter",
		Usage:   "Filter a badminton match schedule down to the matches involving your club's players",
		Version: semanticVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        inputFlag,
				Aliases:     []string{"i"},
				Value:       defaultInput,
				Usage:       "Schedule to filter (.xlsx, .csv or .html)",
				Destination: &cfg.input,
			},
			&cli.StringFlag{
				Name:        outputFlag,
				Aliases:     []string{"o"},
				Usage:       "Where to write the filtered schedule (default: \"<input> - Filtered\")",
				Destination: &cfg.output,
			},
			&cli.StringFlag{
				Name:        playersFlag,
				Aliases:     []string{"p"},
				Value:       defaultPlayers,
				Usage:       "Text file with club player names, one per line",
				Destination: &cfg.players,
			},
			&cli.StringFlag{
				Name:        team1Flag,
				Usage:       "Header name or 0-based index of the Team 1 column (default: 4th column)",
				Destination: &cfg.team1,
			},
			&cli.StringFlag{
				Name:        team2Flag,
				Usage:       "Header name or 0-based index of the Team 2 column (default: 6th column)",
				Destination: &cfg.team2,
			},
			&cli.BoolFlag{
				Name:        verboseFlag,
				Aliases:     []string{"v"},
				Usage:       "Report roster size, row counts and resolved columns",
				Destination: &cfg.verbose,
			},
			&cli.StringFlag{
				Name:    configFlag,
				Aliases: []string{"c"},
				Usage:   "YAML or JSON file supplying defaults for the flags above",
			},
		},
		Action: func(cCtx *cli.Context) error {
			if path := cCtx.String(configFlag); path != "" {
				fileCfg, err := config.Load(path)
				if err != nil {
					return cli.Exit(fmt.Sprintf("loading config %q: %v", path, err), exitFailure)
				}
				applyConfig(cCtx, &cfg, fileCfg)
			}
			return cliHandle(cfg)
		},
		Commands: []*cli.Command{swapNamesCommand()},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
