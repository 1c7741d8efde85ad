package engine

import (
	"strconv"

	"github.com/sm48337/wargame/internal/game"
)

// doDamage applies a raw damage amount to a target and splashes half of it
// across the target's connection graph. Direct damage is modified by the
// target's traits; splash damage always derives from the raw amount.
func (tc *turnContext) doDamage(targetID string, amount int, targetTeam game.TeamColor) {
	ts := tc.board.Teams[targetTeam]
	target := ts.Entity(targetID)
	if target == nil {
		return
	}

	direct := amount
	if target.Traits.SoftwareUpdate > 0 {
		direct = 0
	}
	if target.Traits.Stuxnet {
		direct *= 2
	}
	if target.Traits.Education > 0 || target.Traits.BargainingChip > 0 {
		direct /= 2
	}
	if target.Traits.Ransomware {
		target.Traits.Paralyzed = 3
	}

	target.Vitality -= direct

	for _, conn := range ts.Connected(targetID) {
		switch {
		case conn.Traits.Education > 0:
			conn.Vitality -= amount / 4
		case conn.Traits.NetworkPolicy:
			// splash-immune
		default:
			conn.Vitality -= amount / 2
		}
	}
	tc.log(target.Name+" was dealt "+strconv.Itoa(amount)+" damage. Connected entities got "+strconv.Itoa(amount/2)+" damage.", "action")
}

// doAttribution applies the retaliatory penalty a failed attack pins on its
// attacker. Effects are specific to the attacking entity; severity is the
// backfire margin (1 or 2).
func (tc *turnContext) doAttribution(attackerID string, severity int) {
	red := tc.board.Teams[game.Red]
	blue := tc.board.Teams[game.Blue]

	switch attackerID {
	case game.Bear:
		blue.Assets = append(blue.Assets, AssetSoftwareUpdate)
		if severity == 2 {
			blue.Assets = append(blue.Assets, AssetRecovery)
		}
	case game.Trolls:
		blue.Assets = append(blue.Assets, AssetEducation)
		if severity == 2 {
			red.Entity(game.Trolls).Traits.CannotAttack = 2
		}
	case game.SCS:
		blue.Assets = append(blue.Assets, AssetSoftwareUpdate)
		red.Entity(game.SCS).Traits.CannotBid = 2
		if severity == 2 {
			blue.Assets = append(blue.Assets, AssetAttackVector)
		}
	case game.GCHQ:
		blue.Entity(game.GCHQ).Traits.CannotAttack = 2
		if severity == 2 {
			blue.Entity(game.GCHQ).Traits.CannotAct = 2
			blue.Entity(game.UKGov).Vitality--
		}
	case game.UKGov:
		red.Assets = append(red.Assets, AssetBargainingChip)
		if severity == 2 {
			blue.Entity(game.UKGov).Resource -= 2
			blue.Entity(game.UKGov).Vitality -= 2
		}
	}
}

// doAttack resolves every attack the player declared for this entity: one
// die roll per target, margin looked up in the attack result table, damage
// or backfire applied, investment deducted win or lose.
func (tc *turnContext) doAttack(entity *game.Entity) {
	if entity.Traits.CannotAttack > 0 {
		tc.log(entity.Name+" is unable to attack this turn.", "action")
		return
	}
	for _, pair := range tc.pairedFields(entity.ID, "attack") {
		targetID, field := pair[0], pair[1]
		if !permittedTarget(entity, targetID) {
			continue
		}
		investment := atoi(tc.input(field))
		if investment < 0 {
			investment = 0
		}
		if investment > game.MaxInvestment {
			investment = game.MaxInvestment
		}
		roll := tc.rng.Roll()
		margin := game.AttackResultTable[investment][roll]
		tc.log(entity.Name+" spent "+strconv.Itoa(investment)+" resources and rolled "+strconv.Itoa(roll)+".", "action")

		if margin > 0 {
			tc.doDamage(targetID, margin, tc.other)
		} else if margin < 0 {
			tc.doDamage(entity.ID, -margin, tc.active)
			tc.doAttribution(entity.ID, -margin)
		}

		entity.Resource -= investment
		if entity.ID == game.Trolls && investment >= 3 {
			vpCost := 1
			if investment >= 5 {
				vpCost = 2
			}
			tc.board.Teams[game.Red].Entity(game.RusGov).VictoryPoints -= vpCost
			tc.log("Control the Trolls - Russian Government lost "+strconv.Itoa(vpCost)+" VP because Online Trolls launched a large attack.", "victory-point")
			if teamHoldsAsset(tc.board.Teams[game.Red], AssetRansomware) {
				entity.VictoryPoints += 4
				tc.log("Success breeds confidence - Online Trolls gained 4 VPs because they launched a large attack "+
					"while having the Ransomware asset.", "victory-point")
			}
		}
	}
}

func permittedTarget(attacker *game.Entity, targetID string) bool {
	for _, id := range attacker.Attacks {
		if id == targetID {
			return true
		}
	}
	return false
}

func teamHoldsAsset(ts *game.TeamState, assetID string) bool {
	for _, id := range ts.Assets {
		if id == assetID {
			return true
		}
	}
	return false
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
