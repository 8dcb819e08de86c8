package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/hoops-pbp/internal/game"
)

// ErrNoPlayByPlay reports a game page that was retrieved but carries no
// play-by-play table. Not every game has one; callers distinguish this
// from a game with zero plays.
var ErrNoPlayByPlay = errors.New("play-by-play not available for game")

// logoIDPattern extracts the team abbreviation from a logo image URL,
// e.g. ".../i/teamlogos/nba/500/gsw.png&h=100&w=100".
var logoIDPattern = regexp.MustCompile(`/500/([A-Za-z0-9]+)\.png`)

// PlayByPlay is the raw extraction of one game page: the two team
// identities in away, home order plus the ordered row sequence.
type PlayByPlay struct {
	AwayTeamID string
	HomeTeamID string
	Rows       []game.RawPlayRow
}

// Context resolves the extraction into the per-game context consumed by
// the normalization engine.
func (p *PlayByPlay) Context(league game.League) game.Context {
	return game.Context{
		League:     league,
		AwayTeamID: p.AwayTeamID,
		HomeTeamID: p.HomeTeamID,
	}
}

// PlayByPlayURL formats the play-by-play link for a game.
func (s *Scraper) PlayByPlayURL(gameID string, league game.League) string {
	return fmt.Sprintf("%s/%s/playbyplay?gameId=%s", s.baseURL, league, gameID)
}

// FetchPlayByPlay retrieves and parses one game's play-by-play page.
// Returns ErrNoPlayByPlay when the page has no play-by-play table.
func (s *Scraper) FetchPlayByPlay(ctx context.Context, gameID string, league game.League) (*PlayByPlay, error) {
	body, err := s.fetch(ctx, s.PlayByPlayURL(gameID, league))
	if err != nil {
		return nil, fmt.Errorf("fetching play-by-play: %w", err)
	}
	return parsePlayByPlay(bytes.NewReader(body))
}

// parsePlayByPlay extracts team identities and raw rows from a game
// page. Rows without a time-stamp cell (headers, separators) carry no
// play information and are dropped here.
func parsePlayByPlay(r io.Reader) (*PlayByPlay, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	pbp := &PlayByPlay{}

	teams := doc.Find("td.team-name")
	if teams.Length() >= 2 {
		pbp.AwayTeamID = strings.TrimSpace(teams.Eq(0).Text())
		pbp.HomeTeamID = strings.TrimSpace(teams.Eq(1).Text())
	}

	wrap := doc.Find("#gamepackage-qtrs-wrap")
	if wrap.Length() == 0 {
		return nil, ErrNoPlayByPlay
	}

	var rowErr error
	wrap.Find("tr").EachWithBreak(func(i int, tr *goquery.Selection) bool {
		timeCell := tr.Find("td.time-stamp")
		if timeCell.Length() == 0 {
			return true
		}

		row := game.RawPlayRow{
			ClockText: strings.TrimSpace(timeCell.Text()),
			Detail:    strings.TrimSpace(tr.Find("td.game-details").Text()),
		}

		if src, ok := tr.Find("td.logo img").Attr("src"); ok {
			if m := logoIDPattern.FindStringSubmatch(src); m != nil {
				row.TeamLogoID = strings.ToUpper(m[1])
			}
		}

		if tr.Find("td.combined-score.no-change").Length() > 0 {
			row.Score = game.NoChange()
		} else {
			score, err := parseScore(tr.Find("td.combined-score").Text())
			if err != nil {
				rowErr = fmt.Errorf("row %d: %w", i, err)
				return false
			}
			row.Score = score
		}

		pbp.Rows = append(pbp.Rows, row)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return pbp, nil
}

// parseScore parses a literal "away-home" score cell.
func parseScore(text string) (game.ScoreState, error) {
	parts := strings.SplitN(text, "-", 2)
	if len(parts) != 2 {
		return game.ScoreState{}, fmt.Errorf("malformed score cell %q", text)
	}
	away, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return game.ScoreState{}, fmt.Errorf("malformed away score %q", text)
	}
	home, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return game.ScoreState{}, fmt.Errorf("malformed home score %q", text)
	}
	return game.Literal(away, home), nil
}
