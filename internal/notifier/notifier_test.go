package notifier

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pfrederiksen/hoops-pbp/internal/game"
)

func sampleGame() game.Game {
	return game.Game{
		ID:       "401585601",
		League:   game.LeagueNBA,
		AwayTeam: "GSW",
		HomeTeam: "LAL",
		Plays: []game.NormalizedPlay{
			{Period: 1, PeriodClock: "12:00", Official: true},
			{Period: 4, PeriodClock: "0:00", AwayScore: 110, HomeScore: 108},
		},
	}
}

func TestDryRunNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewDryRunNotifier(&buf)

	if err := n.Notify([]game.Game{sampleGame()}); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "[dry-run]") {
		t.Errorf("expected dry-run marker in %q", out)
	}
	if !strings.Contains(out, "GSW @ LAL 110-108, 2 plays") {
		t.Errorf("unexpected summary: %q", out)
	}
}

func TestNewTwitterNotifierRequiresCredentials(t *testing.T) {
	for _, key := range []string{"TWITTER_API_KEY", "TWITTER_API_SECRET", "TWITTER_ACCESS_TOKEN", "TWITTER_ACCESS_SECRET"} {
		t.Setenv(key, "")
	}

	if _, err := NewTwitterNotifier(); err == nil {
		t.Fatal("expected error without credentials")
	}
}

func TestFormatTweet(t *testing.T) {
	tweet := formatTweet(sampleGame())

	for _, want := range []string{"GSW @ LAL", "Final: 110-108", "2 plays tracked", "#nba"} {
		if !strings.Contains(tweet, want) {
			t.Errorf("tweet missing %q:\n%s", want, tweet)
		}
	}
	if len(tweet) > 280 {
		t.Errorf("tweet exceeds 280 characters: %d", len(tweet))
	}
}
