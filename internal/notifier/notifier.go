package notifier

import (
	"github.com/pfrederiksen/hoops-pbp/internal/game"
)

// Notifier defines the interface for posting game summaries
type Notifier interface {
	// Notify posts summaries for the given games
	Notify(games []game.Game) error
}
