package notifier

import (
	"fmt"
	"io"

	"github.com/pfrederiksen/hoops-pbp/internal/game"
)

// DryRunNotifier writes the summaries it would post to a writer instead
// of an external channel.
type DryRunNotifier struct {
	out io.Writer
}

// NewDryRunNotifier creates a dry-run notifier writing to out.
func NewDryRunNotifier(out io.Writer) *DryRunNotifier {
	return &DryRunNotifier{out: out}
}

// Notify writes one summary line per game.
func (n *DryRunNotifier) Notify(games []game.Game) error {
	for _, g := range games {
		fmt.Fprintf(n.out, "[dry-run] %s\n", formatSummary(g))
	}
	return nil
}
