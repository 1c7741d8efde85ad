package engine

import (
	"sort"
	"strings"

	"github.com/sm48337/wargame/internal/game"
)

// turnContext carries the game, the injected randomness and a few lookups
// that stay fixed for the duration of one turn resolution.
type turnContext struct {
	g      *game.Game
	board  *game.BoardState
	rng    RNG
	active game.TeamColor
	other  game.TeamColor
}

func newTurnContext(g *game.Game, rng RNG) *turnContext {
	return &turnContext{
		g:      g,
		board:  g.BoardState,
		rng:    rng,
		active: g.BoardState.ActiveTeam(),
		other:  g.BoardState.OpposingTeam(),
	}
}

func (tc *turnContext) log(text, category string) { tc.g.Log(text, category) }

func (tc *turnContext) input(field string) string {
	return tc.g.PlayerInputs[field]
}

// pairedFields finds input fields of the form "<prefix>-<target>__<verb>" and
// returns (target id, field name) pairs sorted by field name, so resolution
// order does not depend on map iteration order.
func (tc *turnContext) pairedFields(prefix, verb string) [][2]string {
	head := prefix + "-"
	tail := "__" + verb
	var out [][2]string
	for field := range tc.g.PlayerInputs {
		if !strings.HasPrefix(field, head) || !strings.HasSuffix(field, tail) {
			continue
		}
		target := field[len(head) : len(field)-len(tail)]
		if target == "" || strings.Contains(target, "-") {
			continue
		}
		out = append(out, [2]string{target, field})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][1] < out[j][1] })
	return out
}
