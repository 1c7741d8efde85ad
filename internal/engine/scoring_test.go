package engine

import (
	"testing"

	"github.com/sm48337/wargame/internal/game"
)

func TestResolveTurn_FatalityAwardsTenVPsAndEndsGame(t *testing.T) {
	g := newTestGame()
	g.BoardState.Entity(game.PLC).Vitality = 2
	g.PlayerInputs = map[string]string{
		"scs__action":     "attack",
		"scs-plc__attack": "2",
	}
	rng := &scriptedRNG{rolls: []int{6}}

	ResolveTurn(g, rng, testNow)

	if g.Victor != game.Red {
		t.Fatalf("victor = %q, want red", g.Victor)
	}
	if got := g.BoardState.Entity(game.RusGov).VictoryPoints; got != 10 {
		t.Fatalf("rus_gov VP = %d, want 10", got)
	}
}

func TestScoreGrowth_StreakEscalatesAndResets(t *testing.T) {
	g := newTestGame()
	tc := newTurnContext(g, &scriptedRNG{})
	plc := g.BoardState.Entity(game.PLC)

	plc.Vitality = 6
	tc.scoreGrowth(plc, "label")
	if plc.VictoryPoints != 1 || plc.Traits.Growth.Count != 1 {
		t.Fatalf("first checkpoint: VP=%d count=%d, want 1/1", plc.VictoryPoints, plc.Traits.Growth.Count)
	}

	plc.Vitality = 5
	tc.scoreGrowth(plc, "label")
	if plc.VictoryPoints != 4 || plc.Traits.Growth.Count != 2 {
		t.Fatalf("second checkpoint: VP=%d count=%d, want 4/2", plc.VictoryPoints, plc.Traits.Growth.Count)
	}

	plc.Vitality = 7
	tc.scoreGrowth(plc, "label")
	if plc.VictoryPoints != 4 || plc.Traits.Growth.Count != 0 {
		t.Fatalf("streak must reset: VP=%d count=%d, want 4/0", plc.VictoryPoints, plc.Traits.Growth.Count)
	}
	if plc.Traits.Growth.Vitality != 7 {
		t.Fatalf("checkpoint must re-record vitality, got %d", plc.Traits.Growth.Vitality)
	}
}

func TestCalculateVictoryPoints_MonthlyRules(t *testing.T) {
	g := newTestGame()
	g.BoardState.Turn = 1
	g.BoardState.Entity(game.Elect).Resource = 4
	tc := newTurnContext(g, &scriptedRNG{})

	tc.calculateVictoryPoints()

	if got := g.BoardState.Entity(game.UKGov).VictoryPoints; got != 1 {
		t.Fatalf("uk_gov VP = %d, want 1 (election rule)", got)
	}
	if got := g.BoardState.Entity(game.RusGov).VictoryPoints; got != 1 {
		t.Fatalf("rus_gov VP = %d, want 1 (resource rule)", got)
	}
}

func TestCalculateVictoryPoints_ArmsRace(t *testing.T) {
	g := newTestGame()
	g.BoardState.Turn = 1
	g.BoardState.Entity(game.RusGov).Resource = 0
	g.BoardState.Teams[game.Red].Assets = []string{AssetStuxnet, AssetRansomware}
	g.BoardState.Teams[game.Blue].Assets = []string{AssetEducation}
	tc := newTurnContext(g, &scriptedRNG{})

	tc.calculateVictoryPoints()

	if got := g.BoardState.Entity(game.SCS).VictoryPoints; got != 2 {
		t.Fatalf("scs VP = %d, want 2 (1 defensive vs 2 attack assets)", got)
	}
}

func TestCalculateVictoryPoints_FinalTurnAggressiveOutlook(t *testing.T) {
	g := newTestGame()
	g.BoardState.Turn = game.FinalTurn
	g.BoardState.Entity(game.RusGov).Vitality = 3
	g.BoardState.Entity(game.RusGov).Resource = 0
	g.BoardState.Entity(game.Elect).Resource = 0
	tc := newTurnContext(g, &scriptedRNG{})

	tc.calculateVictoryPoints()

	if got := g.BoardState.Entity(game.UKGov).VictoryPoints; got != 5 {
		t.Fatalf("uk_gov VP = %d, want 5 (weakened opposing government)", got)
	}
}

func TestDetermineWinner_TieGoesToBlue(t *testing.T) {
	g := newTestGame()
	tc := newTurnContext(g, &scriptedRNG{})

	tc.determineWinner()

	if g.Victor != game.Blue {
		t.Fatalf("victor = %q, want blue on equal VPs", g.Victor)
	}
}
