package engine

import (
	"strconv"
	"strings"
	"time"

	"github.com/sm48337/wargame/internal/game"
)

// processInputs applies everything the active team declared this turn:
// activated assets first, then black-market bids, then one action per
// entity, then the trait decay pass.
func (tc *turnContext) processInputs() {
	if activated := tc.input("activated-assets"); activated != "" {
		var indices []int
		for _, part := range strings.Split(activated, ",") {
			if index, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
				indices = append(indices, index)
			}
		}
		tc.resolveActivatedAssets(indices)
	}

	tc.resolveMarket()

	for _, entity := range tc.board.Teams[tc.active].Entities {
		action := tc.input(entity.ID + "__action")
		if action == "" || action == "none" {
			continue
		}
		if entity.Traits.Paralyzed > 0 || entity.Traits.CannotAct > 0 {
			tc.log(entity.Name+" is paralyzed and takes no action.", "action")
			continue
		}
		switch action {
		case "revitalize":
			tc.doRevitalize(entity)
		case "attack":
			tc.doAttack(entity)
		case "transfer":
			tc.doTransfer(entity)
		}
	}

	tc.decayTraits()
}

// decayTraits runs once per resolved turn after all actions: timed traits
// tick down, one-shot flags clear, recovery management heals.
func (tc *turnContext) decayTraits() {
	red := tc.board.Teams[game.Red]
	blue := tc.board.Teams[game.Blue]

	for _, e := range []*game.Entity{
		blue.Entity(game.Elect),
		blue.Entity(game.PLC),
		blue.Entity(game.Energy),
		red.Entity(game.RusGov),
		red.Entity(game.Ros),
	} {
		if e.Traits.Education > 0 {
			e.Traits.Education--
		}
		if e.Traits.BargainingChip > 0 {
			e.Traits.BargainingChip--
		}
		if e.Traits.SoftwareUpdate > 0 {
			e.Traits.SoftwareUpdate--
		}
	}

	plc := blue.Entity(game.PLC)
	if plc.Traits.RecoveryActive {
		if plc.Vitality < plc.Traits.RecoveryTarget {
			plc.Vitality++
		}
		plc.Traits.RecoveryTarget = plc.Vitality
	}

	// one-shot asset effects
	blue.Entity(game.Energy).Traits.Stuxnet = false
	red.Entity(game.Ros).Traits.Stuxnet = false
	for _, id := range []string{game.PLC, game.Elect} {
		e := blue.Entity(id)
		e.Traits.Ransomware = false
		if e.Traits.Paralyzed > 0 {
			e.Traits.Paralyzed--
		}
	}

	// one-shot event effects
	blue.Entity(game.UKGov).Traits.BankingError = false
	red.Entity(game.SCS).Traits.Embargoed = false

	// attribution counters
	for _, color := range game.Teams {
		for _, e := range tc.board.Teams[color].Entities {
			if e.Traits.CannotAttack > 0 {
				e.Traits.CannotAttack--
			}
			if e.Traits.CannotBid > 0 {
				e.Traits.CannotBid--
			}
			if e.Traits.CannotAct > 0 {
				e.Traits.CannotAct--
			}
		}
	}
}

// giveResources grants the new active team's government its turn income,
// unless a people's revolt eats it.
func giveResources(g *game.Game) {
	board := g.BoardState
	active := board.ActiveTeam()
	gov := board.Government(active)
	if active == game.Red && gov.Traits.PeopleRevolt {
		gov.Traits.PeopleRevolt = false
		g.Log("Turn starts - "+gov.Name+" gains no resources because of the People's revolt effect.", "event")
		return
	}
	gov.Resource += 3
	g.Log("Turn starts - "+gov.Name+" gains 3 resources.", "turn")
}

// enableAttacks unlocks the first attack edges at the end of month one.
func (tc *turnContext) enableAttacks() {
	tc.log("Attacks enabled.", "turn")
	red := tc.board.Teams[game.Red]
	red.Entity(game.Bear).Attacks = []string{game.PLC}
	red.Entity(game.Trolls).Attacks = []string{game.Elect}
}

// progressTime advances the turn counter and restarts the round clock.
func (tc *turnContext) progressTime(gameOver bool, now time.Time) {
	turn := tc.board.Turn
	if !gameOver {
		tc.log("End of turn "+strconv.Itoa(turn/2+1)+" for the "+titleColor(tc.active)+" team.", "turn")
	}
	tc.board.Turn++
	tc.g.ResetRoundTimer(now)
}

// ResolveTurn runs the full turn pipeline on a game whose readiness barrier
// has been satisfied (or forced): apply inputs, sweep fatalities, advance
// time, run the new turn's economy/scoring/event hooks, clear per-turn state
// and snapshot the board into history. The caller owns persistence and
// mutual exclusion.
func ResolveTurn(g *game.Game, rng RNG, now time.Time) {
	tc := newTurnContext(g, rng)

	tc.processInputs()
	gameOver := tc.checkHealth()
	tc.progressTime(gameOver, now)

	if g.Victor == "" {
		giveResources(g)

		turn := tc.board.Turn
		if turn == game.EndOfMonth(1) {
			tc.enableAttacks()
		}
		if turn%2 == 1 {
			tc.calculateVictoryPoints()
		} else {
			ProcessEvent(g, rng)
			DrawMarketAsset(tc.board, rng)
		}
		if turn == game.FinalTurn {
			tc.determineWinner()
		}
	}

	g.ReadyPlayers = nil
	g.PlayerInputs = make(map[string]string)
	g.History = append(g.History, g.BoardState.Clone())
}

// InitializeGame prepares a freshly built board for turn zero: seed the
// black-market pool, reveal the first market asset, grant the opening
// resources, draw the first event and record the initial history snapshot.
func InitializeGame(g *game.Game, rng RNG, now time.Time) {
	SeedMarketPool(g.BoardState)
	DrawMarketAsset(g.BoardState, rng)
	giveResources(g)
	ProcessEvent(g, rng)

	g.PlayerInputs = make(map[string]string)
	g.History = []*game.BoardState{g.BoardState.Clone()}
	g.IsPaused = true
	g.ResetRoundTimer(now)
}
