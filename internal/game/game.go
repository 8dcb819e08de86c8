package game

import (
	"fmt"
	"strings"
	"time"
)

// League identifies the competition a game belongs to. It determines the
// number of regulation periods and their length.
type League string

const (
	LeagueNBA League = "nba"
	LeagueNCB League = "ncb"
)

// ParseLeague canonicalizes a league identifier. Identifiers are
// case-insensitive; anything that is not "nba" is treated as a two-half
// league and passed through lowercased.
func ParseLeague(s string) League {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LeagueNBA
	}
	return League(s)
}

// ScoreState is the score field of a raw row: either a literal away-home
// score pair or a marker that the score did not change from the previous
// row. The decision is made once at the extraction boundary so the
// normalization engine never re-parses markup sentinels.
type ScoreState struct {
	Changed bool `json:"changed"`
	Away    int  `json:"away"`
	Home    int  `json:"home"`
}

// NoChange returns the score state for a row whose score is identical to
// the previous row.
func NoChange() ScoreState {
	return ScoreState{}
}

// Literal returns the score state for a row carrying an explicit
// away-home score pair.
func Literal(away, home int) ScoreState {
	return ScoreState{Changed: true, Away: away, Home: home}
}

// RawPlayRow is one row as extracted from a game's play-by-play page.
// TeamLogoID is empty for official (non-team) rows such as period starts
// and timeouts.
type RawPlayRow struct {
	ClockText  string     `json:"clock_text"`
	Score      ScoreState `json:"score"`
	TeamLogoID string     `json:"team_logo_id"`
	Detail     string     `json:"detail"`
}

// Context carries per-game identity and rules, established once per game
// before any row is normalized.
type Context struct {
	League     League `json:"league"`
	AwayTeamID string `json:"away_team_id"`
	HomeTeamID string `json:"home_team_id"`
}

// Complete reports whether both team identifiers are known and distinct.
// Attribution cannot proceed until this holds.
func (c Context) Complete() bool {
	return c.AwayTeamID != "" && c.HomeTeamID != "" && c.AwayTeamID != c.HomeTeamID
}

// NormalizedPlay is one output record of the normalization engine. At most
// one of AwayPlay/HomePlay is non-empty; both empty denotes an official
// event. Once emitted a play is never mutated.
type NormalizedPlay struct {
	Period      int           `json:"period"`
	PeriodClock string        `json:"period_clock"`
	Elapsed     time.Duration `json:"elapsed_game_time"`
	AwayScore   int           `json:"away_score"`
	HomeScore   int           `json:"home_score"`
	AwayPlay    string        `json:"away_play"`
	HomePlay    string        `json:"home_play"`
	Official    bool          `json:"official_play"`
}

// ElapsedClock formats the elapsed game time as H:MM:SS for display.
func (p NormalizedPlay) ElapsedClock() string {
	d := p.Elapsed.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// Game is one fully-normalized game: identity plus the ordered play
// sequence. Games are independent of each other and safe to re-traverse.
type Game struct {
	ID       string           `json:"id"`
	League   League           `json:"league"`
	AwayTeam string           `json:"away_team"`
	HomeTeam string           `json:"home_team"`
	Plays    []NormalizedPlay `json:"plays"`
}

// FinalScore returns the last carried score of the game, or 0-0 for a
// game with no plays.
func (g Game) FinalScore() (away, home int) {
	if len(g.Plays) == 0 {
		return 0, 0
	}
	last := g.Plays[len(g.Plays)-1]
	return last.AwayScore, last.HomeScore
}

// Matchup returns the away-at-home label used in output and summaries.
func (g Game) Matchup() string {
	return fmt.Sprintf("%s @ %s", g.AwayTeam, g.HomeTeam)
}
