package engine

import (
	"strconv"

	"github.com/sm48337/wargame/internal/game"
)

// checkHealth sweeps both teams for destroyed entities. Each fatality awards
// 10 VP to the opposing government; any fatality ends the game through
// winner determination.
func (tc *turnContext) checkHealth() bool {
	fatalities := false
	for i, color := range game.Teams {
		otherGov := tc.board.Government(game.Teams[1-i])
		for _, entity := range tc.board.Teams[color].Entities {
			if entity.Vitality > 0 {
				continue
			}
			fatalities = true
			otherGov.VictoryPoints += 10
			tc.log(entity.Name+" was dealt fatal damage. Opponent was awarded 10 VPs.", "important")
		}
	}
	if fatalities {
		tc.determineWinner()
	}
	return fatalities
}

// determineWinner compares summed victory points and sets the victor. The
// comparison is strict: an exact tie goes to blue. Ambiguous in the source
// material; kept as observed.
func (tc *turnContext) determineWinner() {
	redVPs := game.TotalVPs(tc.board.Teams[game.Red])
	blueVPs := game.TotalVPs(tc.board.Teams[game.Blue])
	if redVPs > blueVPs {
		tc.g.Victor = game.Red
		tc.log("Team "+tc.g.RedTeam.Name+" won the game having "+strconv.Itoa(redVPs)+" VPs. The opposing team had "+strconv.Itoa(blueVPs)+" VPs.", "important")
	} else {
		tc.g.Victor = game.Blue
		tc.log("Team "+tc.g.BlueTeam.Name+" won the game having "+strconv.Itoa(blueVPs)+" VPs. The opposing team had "+strconv.Itoa(redVPs)+" VPs.", "important")
	}
}

func turnIndex(turn int, checkpoints []int) int {
	for i, t := range checkpoints {
		if t == turn {
			return i
		}
	}
	return -1
}

// calculateBlueVictoryPoints applies the blue side's monthly and checkpoint
// scoring rules.
func (tc *turnContext) calculateBlueVictoryPoints(turn int) {
	blue := tc.board.Teams[game.Blue]
	red := tc.board.Teams[game.Red]
	ukGov := blue.Entity(game.UKGov)
	plc := blue.Entity(game.PLC)

	if blue.Entity(game.Elect).Resource >= 4 {
		ukGov.VictoryPoints++
		tc.log("Election time - UK Government gains 1 VP because a month ended with Electorate having 4 or more resources.", "victory-point")
	}
	if turn == game.FinalTurn && red.Entity(game.RusGov).Vitality < 4 {
		ukGov.VictoryPoints += 5
		tc.log("Aggressive outlook - UK Government gains 5 VPs because the Russian Government "+
			"ended the game with less vitality than it started with.", "victory-point")
	}

	if index := turnIndex(turn, game.EndsOfMonths(4, 8, 12)); index >= 0 {
		limit := (index + 1) * 3
		amountWon := index + 2
		if plc.Resource >= limit {
			plc.VictoryPoints += amountWon
			tc.log("Weather the Brexit storm - UK PLC gains "+strconv.Itoa(amountWon)+" VP because it had "+
				"more than "+strconv.Itoa(limit)+" resources at the end of the quarter.", "victory-point")
		}
	}

	if turnIndex(turn, game.EndsOfMonths(3, 6, 9, 12)) >= 0 {
		tc.scoreGrowth(plc, "Recruitment drive - UK PLC")
	}

	if index := turnIndex(turn, game.EndsOfMonths(6, 12)); index >= 0 {
		energy := blue.Entity(game.Energy)
		limit := 6 + index*3
		if energy.Vitality >= limit {
			amountWon := index + 2
			energy.VictoryPoints += amountWon
			tc.log("Grow capacity - UK Energy gains "+strconv.Itoa(amountWon)+" VP because has more than "+strconv.Itoa(limit)+" vitality.", "victory-point")
		}
	}
}

// scoreGrowth applies the streak-based checkpoint bonus shared by UK PLC and
// Rosenergoatom: award against the recorded vitality, extend or reset the
// streak, then re-record.
func (tc *turnContext) scoreGrowth(entity *game.Entity, label string) {
	track := entity.Traits.Growth
	if track == nil {
		track = &game.GrowthTrack{Vitality: entity.Vitality}
		entity.Traits.Growth = track
	}
	if track.Vitality > entity.Vitality {
		amountWon := 1 + 2*track.Count
		entity.VictoryPoints += amountWon
		track.Count++
		tc.log(label+" gains "+strconv.Itoa(amountWon)+" VP because it achieved vitality growth last "+strconv.Itoa(track.Count)+" quarter(s).", "victory-point")
	} else {
		track.Count = 0
	}
	track.Vitality = entity.Vitality
}

// calculateRedVictoryPoints applies the red side's monthly and checkpoint
// scoring rules.
func (tc *turnContext) calculateRedVictoryPoints(turn int) {
	red := tc.board.Teams[game.Red]
	blue := tc.board.Teams[game.Blue]
	rusGov := red.Entity(game.RusGov)

	if rusGov.Resource >= 3 {
		rusGov.VictoryPoints++
		tc.log("Some animals are more equal than others - Russian Government gains 1 VP "+
			"because it ended the month with more than 3 resources.", "victory-point")
	}

	if index := turnIndex(turn, game.EndsOfMonths(4, 8, 12)); index >= 0 {
		bear := red.Entity(game.Bear)
		if bear.Traits.LastGrowthVitality > bear.Vitality {
			amountWon := 1 + index*2
			bear.Traits.LastGrowthVitality = bear.Vitality
			bear.VictoryPoints += amountWon
			tc.log("Those who can't steal - Energetic Bear gains "+strconv.Itoa(amountWon)+" VP because it achieved vitality growth since last check.", "victory-point")
		}
	}

	if CountAssets(blue.Assets, AssetDefensive) < CountAssets(red.Assets, AssetAttack) {
		red.Entity(game.SCS).VictoryPoints += 2
		tc.log("Win the arms race - SCS gains 2 VPs because Russia has a better cyber arsenal than the UK.", "victory-point")
	}

	if turnIndex(turn, game.EndsOfMonths(3, 6, 9, 12)) >= 0 {
		tc.scoreGrowth(red.Entity(game.Ros), "Grow capacity - Rosenergoatom")
	}
}

// calculateVictoryPoints runs both sides' scoring at a month boundary.
func (tc *turnContext) calculateVictoryPoints() {
	turn := tc.board.Turn
	tc.calculateBlueVictoryPoints(turn)
	tc.calculateRedVictoryPoints(turn)
}
