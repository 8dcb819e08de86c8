package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/pfrederiksen/hoops-pbp/internal/game"
)

func TestScoreboardURL(t *testing.T) {
	s := New(Config{BaseURL: "http://example.com"})
	day := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		league   game.League
		expected string
	}{
		{game.LeagueNBA, "http://example.com/nba/scoreboard/_/date/20260110"},
		{game.LeagueNCB, "http://example.com/ncb/scoreboard/_/date/20260110&confId=50"},
	}

	for _, tt := range tests {
		t.Run(string(tt.league), func(t *testing.T) {
			if got := s.ScoreboardURL(day, tt.league); got != tt.expected {
				t.Errorf("ScoreboardURL() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestExtractGameIDs(t *testing.T) {
	body := loadFixture(t, "scoreboard_sample.html")

	ids := extractGameIDs(body)
	expected := []string{"401585601", "401585999"}
	if !reflect.DeepEqual(ids, expected) {
		t.Errorf("extractGameIDs() = %v, expected %v", ids, expected)
	}
}

func TestExtractGameIDsEmpty(t *testing.T) {
	ids := extractGameIDs([]byte("<html><body>no games today</body></html>"))
	if len(ids) != 0 {
		t.Errorf("expected no IDs, got %v", ids)
	}
}

func TestDiscoverGames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/nba/scoreboard/_/date/20260110" {
			http.NotFound(w, r)
			return
		}
		w.Write(loadFixture(t, "scoreboard_sample.html"))
	}))
	defer server.Close()

	s := New(Config{BaseURL: server.URL, RetryInterval: time.Millisecond})
	day := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	ids, err := s.DiscoverGames(context.Background(), day, game.LeagueNBA)
	if err != nil {
		t.Fatalf("DiscoverGames failed: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("expected 2 game IDs, got %v", ids)
	}
}
