package notifier

import (
	"fmt"
	"os"
	"time"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"
	"github.com/pfrederiksen/hoops-pbp/internal/game"
)

// TwitterNotifier posts game summaries to Twitter
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a new Twitter notifier using environment variables
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier() (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	client := twitter.NewClient(httpClient)

	return &TwitterNotifier{client: client}, nil
}

// Notify posts one tweet per game
func (n *TwitterNotifier) Notify(games []game.Game) error {
	for i, g := range games {
		tweet := formatTweet(g)

		_, _, err := n.client.Statuses.Update(tweet, nil)
		if err != nil {
			return fmt.Errorf("failed to post tweet for game %s: %w", g.ID, err)
		}

		// Rate limiting: wait between tweets
		if i < len(games)-1 {
			time.Sleep(2 * time.Second)
		}
	}

	return nil
}

// formatSummary formats the one-line game summary shared by notifiers.
func formatSummary(g game.Game) string {
	away, home := g.FinalScore()
	return fmt.Sprintf("%s %d-%d, %d plays", g.Matchup(), away, home, len(g.Plays))
}

// formatTweet formats a game summary as a tweet
func formatTweet(g game.Game) string {
	away, home := g.FinalScore()
	tweet := "\U0001F3C0 " + g.Matchup() + "\n\n"
	tweet += fmt.Sprintf("Final: %d-%d\n", away, home)
	tweet += fmt.Sprintf("%d plays tracked\n", len(g.Plays))
	tweet += "\n#" + string(g.League)

	// Twitter limit is 280 characters
	if len(tweet) > 280 {
		tweet = tweet[:277] + "..."
	}

	return tweet
}
