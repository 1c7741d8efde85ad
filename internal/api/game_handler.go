package api

import (
	"github.com/sm48337/wargame/internal/config"
	"github.com/sm48337/wargame/internal/engine"
	"github.com/sm48337/wargame/internal/storage"
)

// GameHandler groups all game-related HTTP handlers.
type GameHandler struct {
	repo storage.Repository
	cfg  *config.LoadedConfig
	rng  engine.RNG
}

// NewGameHandler creates a GameHandler with the given repository, roster
// configuration and randomness source.
func NewGameHandler(repo storage.Repository, cfg *config.LoadedConfig, rng engine.RNG) *GameHandler {
	return &GameHandler{repo: repo, cfg: cfg, rng: rng}
}
