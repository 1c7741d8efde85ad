package service

import (
	"errors"
	"time"

	"github.com/sm48337/wargame/internal/engine"
	"github.com/sm48337/wargame/internal/game"

	"github.com/google/uuid"
)

var (
	ErrRosterIncomplete  = errors.New("both teams need all five role players")
	ErrDuplicateSeat     = errors.New("a player cannot hold two seats on the same team")
	ErrPlayerOnBothTeams = errors.New("a player cannot hold seats on both teams")
)

// CreateRepo is the storage slice game creation needs.
type CreateRepo interface {
	CreateGame(g *game.Game) error
}

// CreateGame validates the two rosters, builds the aggregate around the
// given initial board and runs the turn-zero setup (market pool, first
// market draw, opening resources, first event). Games start paused.
func CreateGame(repo CreateRepo, owner, description string, red, blue game.Team, board *game.BoardState, rng engine.RNG, now time.Time) (*game.Game, error) {
	if err := validateTeams(red, blue); err != nil {
		return nil, err
	}

	g := &game.Game{
		JoinCode:    uuid.NewString(),
		Owner:       owner,
		Description: description,
		RedTeam:     red,
		BlueTeam:    blue,
		BoardState:  board,
	}
	engine.InitializeGame(g, rng, now)

	if err := repo.CreateGame(g); err != nil {
		return nil, err
	}
	return g, nil
}

func validateTeams(red, blue game.Team) error {
	seen := map[string]game.TeamColor{}
	for color, team := range map[game.TeamColor]game.Team{game.Red: red, game.Blue: blue} {
		teamSeen := map[string]bool{}
		for _, p := range team.Players() {
			if p == "" {
				return ErrRosterIncomplete
			}
			if teamSeen[p] {
				return ErrDuplicateSeat
			}
			teamSeen[p] = true
			if other, ok := seen[p]; ok && other != color {
				return ErrPlayerOnBothTeams
			}
			seen[p] = color
		}
	}
	return nil
}
