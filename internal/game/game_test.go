package game

import (
	"testing"
	"time"
)

func TestParseLeague(t *testing.T) {
	tests := []struct {
		input    string
		expected League
	}{
		{"nba", LeagueNBA},
		{"NBA", LeagueNBA},
		{" Nba ", LeagueNBA},
		{"ncb", LeagueNCB},
		{"NCB", LeagueNCB},
		{"", LeagueNBA},
		{"wnba", League("wnba")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLeague(tt.input); got != tt.expected {
				t.Errorf("ParseLeague(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestScoreState(t *testing.T) {
	if NoChange().Changed {
		t.Error("NoChange() must not report a change")
	}

	s := Literal(30, 28)
	if !s.Changed {
		t.Error("Literal() must report a change")
	}
	if s.Away != 30 || s.Home != 28 {
		t.Errorf("Literal(30, 28) = %d-%d", s.Away, s.Home)
	}
}

func TestContextComplete(t *testing.T) {
	tests := []struct {
		name     string
		ctx      Context
		complete bool
	}{
		{"both set", Context{League: LeagueNBA, AwayTeamID: "GSW", HomeTeamID: "LAL"}, true},
		{"missing away", Context{League: LeagueNBA, HomeTeamID: "LAL"}, false},
		{"missing home", Context{League: LeagueNBA, AwayTeamID: "GSW"}, false},
		{"identical", Context{League: LeagueNBA, AwayTeamID: "GSW", HomeTeamID: "GSW"}, false},
		{"empty", Context{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ctx.Complete(); got != tt.complete {
				t.Errorf("Complete() = %v, expected %v", got, tt.complete)
			}
		})
	}
}

func TestElapsedClock(t *testing.T) {
	tests := []struct {
		elapsed  time.Duration
		expected string
	}{
		{0, "0:00:00"},
		{2 * time.Second, "0:00:02"},
		{12*time.Minute + 2*time.Second, "0:12:02"},
		{48 * time.Minute, "0:48:00"},
		{time.Hour + 3*time.Minute + 9*time.Second, "1:03:09"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			p := NormalizedPlay{Elapsed: tt.elapsed}
			if got := p.ElapsedClock(); got != tt.expected {
				t.Errorf("ElapsedClock(%v) = %q, expected %q", tt.elapsed, got, tt.expected)
			}
		})
	}
}

func TestGameFinalScore(t *testing.T) {
	g := Game{
		AwayTeam: "GSW",
		HomeTeam: "LAL",
		Plays: []NormalizedPlay{
			{AwayScore: 2, HomeScore: 0},
			{AwayScore: 110, HomeScore: 108},
		},
	}

	away, home := g.FinalScore()
	if away != 110 || home != 108 {
		t.Errorf("FinalScore() = %d-%d, expected 110-108", away, home)
	}
	if g.Matchup() != "GSW @ LAL" {
		t.Errorf("Matchup() = %q", g.Matchup())
	}

	empty := Game{}
	away, home = empty.FinalScore()
	if away != 0 || home != 0 {
		t.Errorf("empty FinalScore() = %d-%d, expected 0-0", away, home)
	}
}
