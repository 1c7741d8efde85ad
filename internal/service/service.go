package service

import (
	"errors"
	"sync"

	"github.com/sm48337/wargame/internal/game"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrNotOwner     = errors.New("only the game owner can pause or resume")
)

// GameRepo is the slice of the storage contract the orchestrator needs.
type GameRepo interface {
	FindGameByJoinCode(code string) (*game.Game, error)
	UpdateGame(g *game.Game) error
}

// locks holds one mutex per game so submit, timeout and pause paths for the
// same game never interleave. Games are independent; different keys proceed
// in parallel.
var locks sync.Map

func lockGame(code string) *sync.Mutex {
	mu, _ := locks.LoadOrStore(code, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m
}
