// Package clock models league game clocks: period rules per league and
// the conversion of a period clock reading into elapsed overall game
// time. Everything here is pure; the normalization engine owns the
// per-game state.
package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pfrederiksen/hoops-pbp/internal/game"
)

// OvertimeMinutes is the length of any period beyond regulation,
// identical across leagues.
const OvertimeMinutes = 5

// MalformedClockError reports a clock string that could not be parsed or
// that falls outside the bounds of the current period.
type MalformedClockError struct {
	Clock  string
	Reason string
}

func (e *MalformedClockError) Error() string {
	return fmt.Sprintf("malformed clock %q: %s", e.Clock, e.Reason)
}

// Rules returns the period conventions for a league: number of regulation
// periods, total regulation minutes, and regular period length in
// minutes. Leagues other than the NBA play two twenty-minute halves.
func Rules(league game.League) (numPeriods, regulationMinutes, periodMinutes int) {
	if league == game.LeagueNBA {
		return 4, 48, 12
	}
	return 2, 40, 20
}

// ParseClock parses a period clock reading in "M:SS" form into minutes
// and seconds. Seconds must be below sixty; both components must be
// non-negative integers.
func ParseClock(text string) (minutes, seconds int, err error) {
	parts := strings.SplitN(text, ":", 2)
	if len(parts) != 2 {
		return 0, 0, &MalformedClockError{Clock: text, Reason: "expected M:SS"}
	}
	minutes, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || minutes < 0 {
		return 0, 0, &MalformedClockError{Clock: text, Reason: "invalid minutes"}
	}
	seconds, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || seconds < 0 || seconds > 59 {
		return 0, 0, &MalformedClockError{Clock: text, Reason: "invalid seconds"}
	}
	return minutes, seconds, nil
}

// Elapsed converts a period clock reading into cumulative game time since
// tip-off. The arithmetic branch applies the overtime offsets once
// period >= numPeriods; that comparison (rather than >) is the observed
// scoreboard behavior, and for the final regulation period the two
// branches agree (48:00 minus remaining either way for NBA Q4). The
// validity bound is the regular period length through regulation and the
// overtime length only afterward; remaining time greater than that is
// malformed rather than silently wrapped.
func Elapsed(minutes, seconds, period int, league game.League) (time.Duration, error) {
	if period < 1 {
		return 0, &MalformedClockError{
			Clock:  fmt.Sprintf("%d:%02d", minutes, seconds),
			Reason: fmt.Sprintf("period %d out of range", period),
		}
	}
	numPeriods, regulationMinutes, periodMinutes := Rules(league)

	var previous time.Duration
	periodLength := periodMinutes
	if period >= numPeriods {
		overtimes := period - numPeriods
		previous = time.Duration(regulationMinutes+OvertimeMinutes*(overtimes-1)) * time.Minute
		periodLength = OvertimeMinutes
	} else {
		previous = time.Duration(periodMinutes*(period-1)) * time.Minute
	}

	boundMinutes := periodMinutes
	if period > numPeriods {
		boundMinutes = OvertimeMinutes
	}
	remaining := time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second
	if remaining > time.Duration(boundMinutes)*time.Minute {
		return 0, &MalformedClockError{
			Clock:  fmt.Sprintf("%d:%02d", minutes, seconds),
			Reason: fmt.Sprintf("exceeds %d-minute period", boundMinutes),
		}
	}
	return previous + (time.Duration(periodLength)*time.Minute - remaining), nil
}
