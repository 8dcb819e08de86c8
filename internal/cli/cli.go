package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/hoops-pbp/internal/config"
	"github.com/pfrederiksen/hoops-pbp/internal/feed"
	"github.com/pfrederiksen/hoops-pbp/internal/game"
	"github.com/pfrederiksen/hoops-pbp/internal/logger"
	"github.com/pfrederiksen/hoops-pbp/internal/notifier"
	"github.com/pfrederiksen/hoops-pbp/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDate    string
	flagFrom    string
	flagTo      string
	flagLeague  string
	flagFormat  string
	flagConfig  string
	flagNotify  bool
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hoops-pbp",
		Short: "Extract normalized basketball play-by-play from ESPN",
		Long: `A CLI tool that discovers basketball games for a date (or date range),
fetches each game's play-by-play page, and normalizes the raw rows into
time-aligned play records with elapsed game time and carried scores.`,
		RunE: runFetch,
	}

	cmd.Flags().StringVar(&flagDate, "date", "", "Date to fetch (YYYY-MM-DD or YYYYMMDD, default: yesterday)")
	cmd.Flags().StringVar(&flagFrom, "from", "", "Start of a date range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flagTo, "to", "", "End of a date range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flagLeague, "league", "", "League: nba or ncb (default from config)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to config file (optional)")
	cmd.Flags().BoolVar(&flagNotify, "notify", false, "Post game summaries after fetching")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")

	return cmd
}

// runFetch is the main command logic
func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level := logger.Level(strings.ToUpper(cfg.Logging.Level))
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	leagueText := cfg.Feed.League
	if flagLeague != "" {
		leagueText = flagLeague
	}
	league := game.ParseLeague(leagueText)

	from, to, err := resolveDates()
	if err != nil {
		return err
	}

	sc := scraper.New(scraper.Config{
		BaseURL:       cfg.Scraper.BaseURL,
		UserAgent:     cfg.Scraper.UserAgent,
		Timeout:       cfg.Scraper.Timeout,
		MaxRetries:    cfg.Scraper.MaxRetries,
		RetryInterval: cfg.Scraper.RetryInterval,
	})
	f := feed.New(sc, league, cfg.Feed.Concurrency, logger.New(level, os.Stderr))

	start := time.Now()
	result, err := f.GamesForRange(cmd.Context(), from, to)
	if err != nil {
		return fmt.Errorf("fetching games: %w", err)
	}

	playCount := 0
	for _, g := range result.Games {
		playCount += len(g.Plays)
	}

	output := &OutputResult{
		CheckedAt: time.Now().UTC(),
		League:    league,
		From:      from.Format("2006-01-02"),
		To:        to.Format("2006-01-02"),
		Games:     result.Games,
		Skipped:   result.Skipped,
		GameCount: len(result.Games),
		PlayCount: playCount,
	}
	if err := WriteOutput(os.Stdout, output, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logger.Debug("Run complete", logger.Fields{
		"duration": time.Since(start).String(),
		"metrics":  logger.GetMetricsSnapshot(),
	})

	if flagNotify && len(result.Games) > 0 {
		n := newNotifier(cfg)
		if err := n.Notify(result.Games); err != nil {
			return fmt.Errorf("posting summaries: %w", err)
		}
	}

	return nil
}

// newNotifier picks the configured notifier, falling back to dry-run when
// Twitter credentials are absent or notification is disabled in config.
func newNotifier(cfg *config.Config) notifier.Notifier {
	if cfg.Notifier.Enabled {
		tw, err := notifier.NewTwitterNotifier()
		if err == nil {
			return tw
		}
		logger.Warn("Twitter notifier unavailable, using dry-run", logger.Fields{
			"reason": err.Error(),
		})
	}
	return notifier.NewDryRunNotifier(os.Stderr)
}

// resolveDates turns the date flags into an inclusive [from, to] range.
// With no flags set, both ends default to yesterday.
func resolveDates() (from, to time.Time, err error) {
	if flagDate != "" && (flagFrom != "" || flagTo != "") {
		return from, to, fmt.Errorf("--date cannot be combined with --from/--to")
	}

	if flagFrom != "" || flagTo != "" {
		if flagFrom == "" || flagTo == "" {
			return from, to, fmt.Errorf("--from and --to must both be set")
		}
		from, err = parseDay(flagFrom)
		if err != nil {
			return from, to, err
		}
		to, err = parseDay(flagTo)
		if err != nil {
			return from, to, err
		}
		if to.Before(from) {
			return from, to, fmt.Errorf("--to must not precede --from")
		}
		return from, to, nil
	}

	if flagDate != "" {
		from, err = parseDay(flagDate)
		if err != nil {
			return from, to, err
		}
		return from, from, nil
	}

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	yesterday = time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC)
	return yesterday, yesterday, nil
}

// parseDay accepts YYYY-MM-DD and YYYYMMDD date strings.
func parseDay(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "20060102"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or YYYYMMDD)", s)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
