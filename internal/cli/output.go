package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/hoops-pbp/internal/feed"
	"github.com/pfrederiksen/hoops-pbp/internal/game"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt time.Time          `json:"checked_at"`
	League    game.League        `json:"league"`
	From      string             `json:"from"`
	To        string             `json:"to"`
	Games     []game.Game        `json:"games"`
	Skipped   []feed.SkippedGame `json:"skipped,omitempty"`
	GameCount int                `json:"game_count"`
	PlayCount int                `json:"play_count"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.GameCount == 0 {
		fmt.Fprintln(w, "No games with play-by-play found.")
	}

	for _, g := range result.Games {
		away, home := g.FinalScore()
		fmt.Fprintf(w, "%s, %d-%d, %d plays\n", g.Matchup(), away, home, len(g.Plays))
		if verbose {
			for _, p := range g.Plays {
				fmt.Fprintf(w, "  P%d %5s (%s) %3d-%-3d %s\n",
					p.Period, p.PeriodClock, p.ElapsedClock(),
					p.AwayScore, p.HomeScore, playText(p))
			}
		}
	}

	for _, s := range result.Skipped {
		fmt.Fprintf(w, "SKIPPED %s: %s\n", s.GameID, s.Reason)
	}

	if result.GameCount > 0 {
		fmt.Fprintf(w, "\nTotal: %d games, %d plays\n", result.GameCount, result.PlayCount)
	}

	return nil
}

// playText picks the single text line of a play for display.
func playText(p game.NormalizedPlay) string {
	switch {
	case p.AwayPlay != "":
		return p.AwayPlay
	case p.HomePlay != "":
		return p.HomePlay
	default:
		return "(official)"
	}
}
