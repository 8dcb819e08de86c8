// Package normalize converts raw play-by-play rows into time-aligned
// play records: monotonic elapsed game time, carried-forward scores, and
// per-side attribution of play text.
//
// The engine is a sequential state machine. It either normalizes a whole
// game or fails with no output; downstream consumers rely on the time and
// score invariants holding across the full sequence, so partially
// normalized games are never emitted.
package normalize

import (
	"fmt"

	"github.com/pfrederiksen/hoops-pbp/internal/clock"
	"github.com/pfrederiksen/hoops-pbp/internal/game"
)

// clockState tracks period transitions across the row sequence. The
// period never decreases; it advances by one once the clock has reached
// zero minutes and a later row shows minutes above one. A transitional
// row at exactly one minute neither arms nor fires the transition — it is
// treated as still inside the closing period, matching the observed
// scoreboard formatting.
type clockState struct {
	period             int
	endOfPeriodPending bool
}

// observe applies the period-transition rules for one row's clock
// minutes and returns the period in effect for that row.
func (s *clockState) observe(minutes int) int {
	if minutes == 0 && !s.endOfPeriodPending {
		s.endOfPeriodPending = true
	} else if s.endOfPeriodPending && minutes > 1 {
		s.period++
		s.endOfPeriodPending = false
	}
	return s.period
}

// Normalizer consumes one game's raw rows in document order and
// accumulates normalized plays. A Normalizer is single-use and not safe
// for concurrent use; games are independent, so callers wanting
// parallelism run one Normalizer per game.
type Normalizer struct {
	ctx       game.Context
	state     clockState
	awayScore int
	homeScore int
	plays     []game.NormalizedPlay
}

// New creates a Normalizer for one game. The context must carry both
// team identifiers.
func New(ctx game.Context) (*Normalizer, error) {
	if !ctx.Complete() {
		return nil, ErrIncompleteContext
	}
	return &Normalizer{ctx: ctx, state: clockState{period: 1}}, nil
}

// Push processes a single raw row. Rows with an absent clock carry no
// play information and are skipped without touching any state. Any error
// invalidates the whole game; Plays returns nil afterwards.
func (n *Normalizer) Push(row game.RawPlayRow) error {
	if row.ClockText == "" {
		return nil
	}

	minutes, seconds, err := clock.ParseClock(row.ClockText)
	if err != nil {
		n.plays = nil
		return err
	}

	period := n.state.observe(minutes)

	elapsed, err := clock.Elapsed(minutes, seconds, period, n.ctx.League)
	if err != nil {
		n.plays = nil
		return err
	}

	play := game.NormalizedPlay{
		Period:      period,
		PeriodClock: row.ClockText,
		Elapsed:     elapsed,
	}

	switch row.TeamLogoID {
	case "":
		// Official row: period start, timeout, and the like.
	case n.ctx.AwayTeamID:
		play.AwayPlay = row.Detail
	case n.ctx.HomeTeamID:
		play.HomePlay = row.Detail
	default:
		n.plays = nil
		return &UnattributableTeamError{
			LogoID:     row.TeamLogoID,
			AwayTeamID: n.ctx.AwayTeamID,
			HomeTeamID: n.ctx.HomeTeamID,
		}
	}

	if row.Score.Changed {
		n.awayScore = row.Score.Away
		n.homeScore = row.Score.Home
	}
	// A NoChange row before any other row means the game has not scored
	// yet; the zero scores stand.
	play.AwayScore = n.awayScore
	play.HomeScore = n.homeScore
	play.Official = !row.Score.Changed && row.TeamLogoID == ""

	n.plays = append(n.plays, play)
	return nil
}

// Plays returns the normalized sequence accumulated so far. The returned
// slice is owned by the caller once the game is complete.
func (n *Normalizer) Plays() []game.NormalizedPlay {
	return n.plays
}

// Game normalizes a full row sequence for one game. On any row error the
// game fails as a whole and no plays are returned.
func Game(ctx game.Context, rows []game.RawPlayRow) ([]game.NormalizedPlay, error) {
	n, err := New(ctx)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := n.Push(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return n.Plays(), nil
}
