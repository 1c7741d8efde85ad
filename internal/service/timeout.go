package service

import (
	"time"

	"github.com/sm48337/wargame/internal/dedupe"
	"github.com/sm48337/wargame/internal/engine"
	"github.com/sm48337/wargame/internal/logging"
)

// timeoutGrace is how many seconds past the deadline the round may run
// before a forced resolution kicks in.
const timeoutGrace = 5

// CheckTimeout forces turn resolution for a game whose round clock has
// expired, using whatever inputs were submitted (absent players' entities
// take no action). It is polled from board reads and is idempotent: a game
// that is finished, paused or within its window is left alone, and
// concurrent triggers for the same game collapse into one resolution.
func CheckTimeout(repo GameRepo, code string, rng engine.RNG, now time.Time) (bool, error) {
	resolved, err, _ := dedupe.TimeoutGroup.Do(code, func() (interface{}, error) {
		mu := lockGame(code)
		defer mu.Unlock()

		g, err := repo.FindGameByJoinCode(code)
		if err != nil || g == nil {
			return false, ErrGameNotFound
		}
		if g.Victor != "" || g.IsPaused {
			return false, nil
		}
		if g.TimeLeft(now) >= -timeoutGrace {
			return false, nil
		}

		logging.Info("round timed out; forcing resolution", logging.Fields{"game_code": code, "turn": g.BoardState.Turn})
		engine.ResolveTurn(g, rng, now)
		if err := repo.UpdateGame(g); err != nil {
			return true, err
		}
		return true, nil
	})
	if err != nil {
		return false, err
	}
	return resolved.(bool), nil
}
