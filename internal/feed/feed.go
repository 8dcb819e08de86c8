// Package feed orchestrates the pipeline for one or more dates: discover
// the games on a scoreboard, fetch and extract each game's play-by-play,
// and normalize the rows into time-aligned play records.
//
// Games are mutually independent, so the feed fans out across them with a
// bounded number of workers. Normalization of a single game stays strictly
// sequential; its state is a running accumulation over the row order.
package feed

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/pfrederiksen/hoops-pbp/internal/game"
	"github.com/pfrederiksen/hoops-pbp/internal/logger"
	"github.com/pfrederiksen/hoops-pbp/internal/normalize"
	"github.com/pfrederiksen/hoops-pbp/internal/scraper"
)

const defaultConcurrency = 4

// SkippedGame records a game that produced no normalized output, either
// because its play-by-play page is unavailable or because extraction or
// normalization failed. Failures are per-game and never halt the rest of
// the date.
type SkippedGame struct {
	GameID string `json:"game_id"`
	Reason string `json:"reason"`
}

// Result is the outcome of processing one date (or date range).
type Result struct {
	Games   []game.Game   `json:"games"`
	Skipped []SkippedGame `json:"skipped,omitempty"`
}

// Feed wires discovery, extraction, and normalization together.
type Feed struct {
	scraper     *scraper.Scraper
	league      game.League
	concurrency int
	log         *logger.Logger
}

// New creates a Feed for a league. Concurrency bounds the number of games
// fetched in parallel; values below one fall back to the default.
func New(sc *scraper.Scraper, league game.League, concurrency int, log *logger.Logger) *Feed {
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &Feed{
		scraper:     sc,
		league:      league,
		concurrency: concurrency,
		log:         log,
	}
}

// GamesForDate processes every game discovered on a date's scoreboard.
// The returned games are sorted by game ID for stable output; per-game
// ordering of plays is the document order of the source page.
func (f *Feed) GamesForDate(ctx context.Context, day time.Time) (*Result, error) {
	ids, err := f.scraper.DiscoverGames(ctx, day, f.league)
	if err != nil {
		return nil, fmt.Errorf("discovering games for %s: %w", day.Format("2006-01-02"), err)
	}

	f.log.Info("Discovered games", logger.Fields{
		"date":   day.Format("2006-01-02"),
		"league": string(f.league),
		"games":  len(ids),
	})

	result := &Result{Games: make([]game.Game, 0, len(ids))}
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, f.concurrency)

	for _, id := range ids {
		wg.Add(1)
		go func(gameID string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			g, err := f.processGame(ctx, gameID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Skipped = append(result.Skipped, SkippedGame{GameID: gameID, Reason: err.Error()})
				return
			}
			result.Games = append(result.Games, *g)
		}(id)
	}
	wg.Wait()

	sort.Slice(result.Games, func(i, j int) bool {
		return result.Games[i].ID < result.Games[j].ID
	})
	sort.Slice(result.Skipped, func(i, j int) bool {
		return result.Skipped[i].GameID < result.Skipped[j].GameID
	})

	return result, nil
}

// GamesForRange processes each date in [from, to] in order and merges the
// outcomes. A failed scoreboard fetch skips that date's games only.
func (f *Feed) GamesForRange(ctx context.Context, from, to time.Time) (*Result, error) {
	merged := &Result{}
	for _, day := range DateRange(from, to) {
		result, err := f.GamesForDate(ctx, day)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			f.log.Warn("Skipping date", logger.Fields{
				"date":   day.Format("2006-01-02"),
				"reason": err.Error(),
			})
			continue
		}
		merged.Games = append(merged.Games, result.Games...)
		merged.Skipped = append(merged.Skipped, result.Skipped...)
	}
	return merged, nil
}

// processGame runs fetch, extraction, and normalization for one game.
func (f *Feed) processGame(ctx context.Context, gameID string) (*game.Game, error) {
	start := time.Now()
	pbp, err := f.scraper.FetchPlayByPlay(ctx, gameID, f.league)
	logger.RecordTiming("scrape.playbyplay", time.Since(start))
	if err != nil {
		if errors.Is(err, scraper.ErrNoPlayByPlay) {
			f.log.Debug("No play-by-play for game", logger.Fields{"game_id": gameID})
		} else {
			f.log.Error("Fetching play-by-play failed", logger.Fields{"game_id": gameID}, err)
		}
		return nil, err
	}

	plays, err := normalize.Game(pbp.Context(f.league), pbp.Rows)
	if err != nil {
		f.log.Error("Normalization failed", logger.Fields{"game_id": gameID}, err)
		return nil, fmt.Errorf("normalizing game %s: %w", gameID, err)
	}

	logger.IncrCounter("games.normalized", 1)
	logger.IncrCounter("plays.normalized", int64(len(plays)))

	return &game.Game{
		ID:       gameID,
		League:   f.league,
		AwayTeam: pbp.AwayTeamID,
		HomeTeam: pbp.HomeTeamID,
		Plays:    plays,
	}, nil
}

// DateRange returns each day from from through to, inclusive. An inverted
// range is empty.
func DateRange(from, to time.Time) []time.Time {
	var days []time.Time
	from = from.Truncate(24 * time.Hour)
	to = to.Truncate(24 * time.Hour)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
