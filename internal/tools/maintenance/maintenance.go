// Package maintenance implements offline upkeep for the game database:
// exporting finished games to a recap archive, verifying an archive, and
// checking recorded paths for gaps.
package maintenance

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	entrypoint "github.com/louisbranch/lastwalk/internal/platform/cmd"
	"github.com/louisbranch/lastwalk/internal/services/game/archive"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/game"
	"github.com/louisbranch/lastwalk/internal/services/game/storage/sqlite"
)

// Config holds maintenance command configuration.
type Config struct {
	DBPath       string
	Timeout      time.Duration
	ExportRecaps string
	VerifyRecaps string
	PathReport   bool
	WarningsCap  int
	JSONOutput   bool
}

type envConfig struct {
	DBPath  string        `env:"LASTWALK_GAME_DB_PATH"`
	Timeout time.Duration `env:"LASTWALK_MAINTENANCE_TIMEOUT" envDefault:"10m"`
}

// ParseConfig parses env and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := entrypoint.ParseConfig(&envCfg); err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:      envCfg.DBPath,
		Timeout:     envCfg.Timeout,
		WarningsCap: 25,
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "game.db")
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the game sqlite database (default: LASTWALK_GAME_DB_PATH or data/game.db)")
	fs.StringVar(&cfg.ExportRecaps, "export-recaps", "", "write every finished game to this .jsonl.zst archive")
	fs.StringVar(&cfg.VerifyRecaps, "verify-recaps", "", "read a recap archive and report its contents")
	fs.BoolVar(&cfg.PathReport, "path-report", false, "check finished games for path gaps")
	fs.IntVar(&cfg.WarningsCap, "warnings-cap", cfg.WarningsCap, "max warnings to print (0 = no limit)")
	fs.BoolVar(&cfg.JSONOutput, "json", false, "output JSON reports")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the maintenance command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	modes := 0
	for _, on := range []bool{cfg.ExportRecaps != "", cfg.VerifyRecaps != "", cfg.PathReport} {
		if on {
			modes++
		}
	}
	if modes == 0 {
		return errors.New("one of -export-recaps, -verify-recaps or -path-report is required")
	}
	if modes > 1 {
		return errors.New("-export-recaps, -verify-recaps and -path-report are mutually exclusive")
	}
	if cfg.WarningsCap < 0 {
		return errors.New("-warnings-cap must be >= 0")
	}

	if cfg.VerifyRecaps != "" {
		return runVerify(cfg.VerifyRecaps, cfg, out)
	}

	store, err := openStore(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	return runWithStore(ctx, cfg, store, out, errOut)
}

// closableRecapStore lists finished games and releases its resources.
type closableRecapStore interface {
	archive.RecapLister
	Close() error
}

// runWithStore contains the store-backed modes. It owns the store lifecycle.
func runWithStore(ctx context.Context, cfg Config, store closableRecapStore, out io.Writer, errOut io.Writer) error {
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Fprintf(errOut, "Error: close game store: %v\n", err)
		}
	}()

	if cfg.ExportRecaps != "" {
		return runExport(ctx, cfg.ExportRecaps, store, cfg, out)
	}

	recaps, err := store.ListTerminatedGames(ctx)
	if err != nil {
		return fmt.Errorf("list recaps: %w", err)
	}
	report := checkPaths(recaps)
	return printPathReport(out, errOut, report, cfg)
}

func openStore(ctx context.Context, path string) (*sqlite.Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open game store %s: %w", path, err)
	}
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open game store: %w", err)
	}
	return store, nil
}

type exportResult struct {
	Path  string `json:"path"`
	Games int    `json:"games"`
}

func runExport(ctx context.Context, path string, lister archive.RecapLister, cfg Config, out io.Writer) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create archive dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close archive: %w", closeErr)
		}
	}()

	n, err := archive.Export(ctx, lister, f)
	if err != nil {
		return err
	}
	result := exportResult{Path: path, Games: n}
	if cfg.JSONOutput {
		return json.NewEncoder(out).Encode(result)
	}
	_, err = fmt.Fprintf(out, "Exported %d finished games to %s\n", n, path)
	return err
}

type verifyResult struct {
	Path    string `json:"path"`
	Games   int    `json:"games"`
	Dead    int    `json:"dead"`
	Won     int    `json:"won"`
	Entries int    `json:"entries"`
}

func runVerify(path string, cfg Config, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()

	result := verifyResult{Path: path}
	err = archive.Read(f, func(recap game.Recap) error {
		result.Games++
		result.Entries += len(recap.Paths)
		switch recap.Status {
		case game.StatusDead:
			result.Dead++
		case game.StatusWon:
			result.Won++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}
	if cfg.JSONOutput {
		return json.NewEncoder(out).Encode(result)
	}
	_, err = fmt.Fprintf(out, "%s: %d games (%d dead, %d won), %d path entries\n",
		path, result.Games, result.Dead, result.Won, result.Entries)
	return err
}

// pathReport summarizes the path check over finished games.
type pathReport struct {
	Games    int      `json:"games"`
	Entries  int      `json:"entries"`
	Warnings []string `json:"warnings,omitempty"`
	Total    int      `json:"warnings_total"`
}

// checkPaths flags paths that do not start with the creation entry, skip or
// repeat days, or end a dead game on anything but the killing entry.
func checkPaths(recaps []game.Recap) pathReport {
	report := pathReport{Games: len(recaps)}
	for _, recap := range recaps {
		report.Entries += len(recap.Paths)
		if len(recap.Paths) == 0 {
			report.Warnings = append(report.Warnings, fmt.Sprintf("game %s: no path entries", recap.GameID))
			continue
		}
		first := recap.Paths[0]
		if first.Day != game.FirstDay || first.Action != game.ActionStarted {
			report.Warnings = append(report.Warnings, fmt.Sprintf("game %s: path starts with day %d %q", recap.GameID, first.Day, first.Action))
		}
		for i := 1; i < len(recap.Paths); i++ {
			prev, cur := recap.Paths[i-1], recap.Paths[i]
			if cur.Day != prev.Day+1 {
				report.Warnings = append(report.Warnings, fmt.Sprintf("game %s: day %d follows day %d", recap.GameID, cur.Day, prev.Day))
			}
		}
		last := recap.Paths[len(recap.Paths)-1]
		if recap.Status == game.StatusDead && last.Action != game.ActionKilled {
			report.Warnings = append(report.Warnings, fmt.Sprintf("game %s: dead game ends with %q", recap.GameID, last.Action))
		}
	}
	report.Total = len(report.Warnings)
	return report
}

func printPathReport(out io.Writer, errOut io.Writer, report pathReport, cfg Config) error {
	report.Warnings, report.Total = capWarnings(report.Warnings, cfg.WarningsCap)
	if cfg.JSONOutput {
		return json.NewEncoder(out).Encode(report)
	}
	fmt.Fprintf(out, "Checked %d finished games, %d path entries\n", report.Games, report.Entries)
	for _, warning := range report.Warnings {
		fmt.Fprintf(errOut, "Warning: %s\n", warning)
	}
	if hidden := report.Total - len(report.Warnings); hidden > 0 {
		fmt.Fprintf(errOut, "Warning: %d more warnings not shown\n", hidden)
	}
	return nil
}

func capWarnings(warnings []string, limit int) ([]string, int) {
	total := len(warnings)
	if limit <= 0 || total <= limit {
		return warnings, total
	}
	return warnings[:limit], total
}

