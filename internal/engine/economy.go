package engine

import (
	"strconv"

	"github.com/sm48337/wargame/internal/game"
)

// networkPolicyTransferCap is the per-turn transfer limit for entities under
// a network policy grant.
const networkPolicyTransferCap = 2

// doRevitalize converts resource into vitality using the recovery cost
// table. The declared amount is clamped to the table bounds and to what the
// entity can afford; cyber investment shaves 1 off the cost.
func (tc *turnContext) doRevitalize(entity *game.Entity) {
	amount := atoi(tc.input(entity.ID + "__revitalize"))
	if amount < 0 {
		amount = 0
	}
	if amount >= len(game.VitalityRecoveryCost) {
		amount = len(game.VitalityRecoveryCost) - 1
	}
	if max := game.CalculateMaxRevitalization(entity.Resource); amount > max {
		amount = max
	}
	cost := game.VitalityRecoveryCost[amount]
	if entity.Traits.CyberInvestment && cost > 0 {
		cost--
	}
	entity.Vitality += amount
	entity.Resource -= cost
	tc.log(entity.Name+" spent "+strconv.Itoa(cost)+" resources to gain "+strconv.Itoa(amount)+" vitality.", "action")
}

// doTransfer moves resource from the acting entity to each declared target.
// Elect pays 1 VP for any nonzero transfer; a banking error blocks all blue
// transfers for the turn.
func (tc *turnContext) doTransfer(entity *game.Entity) {
	if tc.active == game.Blue && tc.board.Teams[game.Blue].Entity(game.UKGov).Traits.BankingError {
		tc.log(entity.Name+" could not transfer resources because of the banking error.", "action")
		return
	}
	for _, pair := range tc.pairedFields(entity.ID, "transfer") {
		targetID, field := pair[0], pair[1]
		amount := atoi(tc.input(field))
		if amount < 0 {
			amount = 0
		}
		target := tc.board.Entity(targetID)
		if target == nil {
			continue
		}
		if entity.Traits.NetworkPolicy || target.Traits.NetworkPolicy {
			if amount > networkPolicyTransferCap {
				amount = networkPolicyTransferCap
			}
		}
		target.Resource += amount
		entity.Resource -= amount
		if amount > 0 {
			tc.log(entity.Name+" sent "+strconv.Itoa(amount)+" resources to "+target.Name+".", "action")
			if entity.ID == game.Elect {
				entity.VictoryPoints--
				tc.log("Resist the drain - "+entity.Name+" lost 1 VP due to the transfer of resources.", "victory-point")
			}
		}
	}
}
