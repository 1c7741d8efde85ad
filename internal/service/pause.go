package service

import (
	"time"

	"github.com/sm48337/wargame/internal/game"
)

// TogglePause flips a game's pause state. Only the owner may do so; the
// toggle is a no-op while the pre-game starting delay is active.
func TogglePause(repo GameRepo, code, requestor string, now time.Time) (*game.Game, error) {
	mu := lockGame(code)
	defer mu.Unlock()

	g, err := repo.FindGameByJoinCode(code)
	if err != nil || g == nil {
		return nil, ErrGameNotFound
	}
	if g.Owner != requestor {
		return nil, ErrNotOwner
	}
	g.TogglePause(now)
	if err := repo.UpdateGame(g); err != nil {
		return nil, err
	}
	return g, nil
}
