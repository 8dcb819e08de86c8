package scraper

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/pfrederiksen/hoops-pbp/internal/game"
)

// gameIDPattern matches the game identifiers embedded in a scoreboard
// page's recap links.
var gameIDPattern = regexp.MustCompile(`recap\?gameId=(\d+)`)

// ScoreboardURL formats the scoreboard link for a date and league. NCB
// scoreboards are restricted to the Division I conference group.
func (s *Scraper) ScoreboardURL(day time.Time, league game.League) string {
	url := fmt.Sprintf("%s/%s/scoreboard/_/date/%s", s.baseURL, league, day.Format("20060102"))
	if league == game.LeagueNCB {
		url += "&confId=50"
	}
	return url
}

// DiscoverGames scrapes a date's scoreboard for the identifiers of games
// that link a recap, in document order and deduplicated. A date with no
// games yields an empty slice, not an error.
func (s *Scraper) DiscoverGames(ctx context.Context, day time.Time, league game.League) ([]string, error) {
	body, err := s.fetch(ctx, s.ScoreboardURL(day, league))
	if err != nil {
		return nil, fmt.Errorf("fetching scoreboard: %w", err)
	}
	return extractGameIDs(body), nil
}

func extractGameIDs(body []byte) []string {
	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, match := range gameIDPattern.FindAllSubmatch(body, -1) {
		id := string(match[1])
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}
