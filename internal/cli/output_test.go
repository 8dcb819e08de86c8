package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/hoops-pbp/internal/feed"
	"github.com/pfrederiksen/hoops-pbp/internal/game"
)

func sampleResult() *OutputResult {
	return &OutputResult{
		CheckedAt: time.Date(2026, time.January, 11, 8, 0, 0, 0, time.UTC),
		League:    game.LeagueNBA,
		From:      "2026-01-10",
		To:        "2026-01-10",
		Games: []game.Game{
			{
				ID:       "401585601",
				League:   game.LeagueNBA,
				AwayTeam: "GSW",
				HomeTeam: "LAL",
				Plays: []game.NormalizedPlay{
					{Period: 1, PeriodClock: "12:00", Official: true},
					{Period: 1, PeriodClock: "11:38", Elapsed: 22 * time.Second, AwayScore: 0, HomeScore: 2, HomePlay: "Davis makes driving layup"},
				},
			},
		},
		Skipped:   []feed.SkippedGame{{GameID: "401585999", Reason: "play-by-play not available for game"}},
		GameCount: 1,
		PlayCount: 2,
	}
}

func TestWriteTextOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatText, false); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"GSW @ LAL, 0-2, 2 plays",
		"SKIPPED 401585999",
		"Total: 1 games, 2 plays",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "12:00") {
		t.Error("non-verbose output must not list individual plays")
	}
}

func TestWriteTextOutputVerbose(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatText, true); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"12:00",
		"(official)",
		"Davis makes driving layup",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTextOutputEmpty(t *testing.T) {
	var buf bytes.Buffer
	empty := &OutputResult{League: game.LeagueNBA}
	if err := WriteOutput(&buf, empty, FormatText, false); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No games with play-by-play found.") {
		t.Errorf("unexpected empty output: %q", buf.String())
	}
}

func TestWriteJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatJSON, false); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	var decoded OutputResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.GameCount != 1 || decoded.PlayCount != 2 {
		t.Errorf("unexpected counts: %d games, %d plays", decoded.GameCount, decoded.PlayCount)
	}
	if len(decoded.Games) != 1 || decoded.Games[0].ID != "401585601" {
		t.Errorf("unexpected games in JSON output: %+v", decoded.Games)
	}
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), OutputFormat("xml"), false); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
