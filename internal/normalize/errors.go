package normalize

import (
	"errors"
	"fmt"
)

// ErrIncompleteContext is returned when normalization is invoked before
// both team identifiers are resolved.
var ErrIncompleteContext = errors.New("game context incomplete: distinct away and home team identifiers are required")

// UnattributableTeamError reports a row whose team identifier matches
// neither configured team.
type UnattributableTeamError struct {
	LogoID     string
	AwayTeamID string
	HomeTeamID string
}

func (e *UnattributableTeamError) Error() string {
	return fmt.Sprintf("team %q matches neither %q nor %q", e.LogoID, e.AwayTeamID, e.HomeTeamID)
}

// AsUnattributableTeam attempts to unwrap an error into an
// UnattributableTeamError.
func AsUnattributableTeam(err error) (*UnattributableTeamError, bool) {
	var utErr *UnattributableTeamError
	if errors.As(err, &utErr) {
		return utErr, true
	}
	return nil, false
}
