package storage

import "github.com/sm48337/wargame/internal/game"

// Repository is the persistence contract the engine boundary requires: the
// board-state document, history and log are stored as opaque structured
// data; writes for one game must be serialized by the caller.
type Repository interface {
	CreateGame(g *game.Game) error
	GetGames() ([]game.Game, error)
	FindGameByJoinCode(code string) (*game.Game, error)
	UpdateGame(g *game.Game) error
	// FindRunningGames returns unfinished, unpaused games. The timeout
	// scanner inspects their clocks and forces resolution when expired.
	FindRunningGames() ([]game.Game, error)
}
