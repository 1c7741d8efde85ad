package service

import (
	"strconv"
	"time"

	"github.com/sm48337/wargame/internal/engine"
	"github.com/sm48337/wargame/internal/game"
)

// performChecks validates one player's submission against the current turn
// state. All failures are collected so the player sees every problem at
// once; any failure means no state is mutated.
func performChecks(g *game.Game, player string, declaredTurn int) []game.Message {
	var validationErrors []game.Message

	if declaredTurn != g.BoardState.Turn {
		validationErrors = append(validationErrors, game.Message{Text: "The turn had already ended!", Category: "error"})
	}
	if g.Victor != "" {
		validationErrors = append(validationErrors, game.Message{Text: "The game is finished!", Category: "error"})
	}
	if g.IsReady(player) {
		validationErrors = append(validationErrors, game.Message{Text: "You already finished your turn - waiting for other players.", Category: "error"})
	}
	if !g.ActiveTeam().Has(player) {
		validationErrors = append(validationErrors, game.Message{Text: "It is not your turn now, wait for your opponents to finish.", Category: "error"})
	}

	return validationErrors
}

// SubmitTurn merges one player's raw form inputs into the in-progress turn
// and marks the player ready. Once every active-team role player is ready
// the turn resolves. Returns the updated game, whether the turn resolved,
// and any validation errors (which leave the game untouched).
func SubmitTurn(repo GameRepo, code, player string, inputs map[string]string, rng engine.RNG, now time.Time) (*game.Game, bool, []game.Message, error) {
	mu := lockGame(code)
	defer mu.Unlock()

	g, err := repo.FindGameByJoinCode(code)
	if err != nil || g == nil {
		return nil, false, nil, ErrGameNotFound
	}

	declaredTurn := -1
	if s, ok := inputs["turn"]; ok {
		if n, convErr := strconv.Atoi(s); convErr == nil {
			declaredTurn = n
		}
	}
	if validationErrors := performChecks(g, player, declaredTurn); len(validationErrors) > 0 {
		return g, false, validationErrors, nil
	}

	g.MergeInputs(inputs)
	g.ReadyPlayer(player)

	resolved := false
	if g.AllPlayersReady() {
		engine.ResolveTurn(g, rng, now)
		resolved = true
	}

	if err := repo.UpdateGame(g); err != nil {
		return nil, resolved, nil, err
	}
	return g, resolved, nil, nil
}
