package engine

import (
	"sort"
	"strconv"

	"github.com/sm48337/wargame/internal/game"
)

// AssetCategory splits the catalog into offensive and defensive abilities.
type AssetCategory string

const (
	AssetAttack    AssetCategory = "attack"
	AssetDefensive AssetCategory = "defensive"
)

// Asset ids. The catalog is closed: nine assets, dispatched by an explicit
// switch in activateAsset.
const (
	AssetAttackVector    = "attack_vector"
	AssetEducation       = "education"
	AssetRecovery        = "recovery"
	AssetSoftwareUpdate  = "software_update"
	AssetBargainingChip  = "bargaining_chip"
	AssetNetworkPolicy   = "network_policy"
	AssetStuxnet         = "stuxnet"
	AssetRansomware      = "ransomware"
	AssetCyberInvestment = "cyber_investment"
)

// AssetSpec is one catalog entry. Targets lists the entity ids a numeric or
// id-valued option may select; an empty list means no target is needed.
// Rarity is the number of copies seeded into the black-market pool.
type AssetSpec struct {
	ID          string
	Name        string
	Category    AssetCategory
	Description string
	Targets     []string
	Rarity      int
}

// AssetCatalog is the fixed nine-asset catalog, in display order.
var AssetCatalog = []AssetSpec{
	{AssetAttackVector, "Attack Vector", AssetAttack,
		"Opens up one of the following attack vectors: GCHQ - Rosenergoatom, SCS - UK Energy, UK Government - Russia Government.",
		[]string{game.GCHQ, game.SCS, game.UKGov}, 3},
	{AssetEducation, "Education", AssetDefensive,
		"Electorate suffers only half of any damage it receives for the next 3 turns.",
		nil, 2},
	{AssetRecovery, "Recovery Management", AssetDefensive,
		"At the end of a turn, if UK PLC has suffered any damage, they receive +1 vitality.",
		nil, 2},
	{AssetSoftwareUpdate, "Software Update", AssetDefensive,
		"Renders UK PLC or UK Energy or Rosenergoatom immune to direct attack for 2 turns.",
		[]string{game.PLC, game.Energy, game.Ros}, 3},
	{AssetBargainingChip, "Bargaining Chip", AssetDefensive,
		"Russia Government suffers only half of any damage it receives for the next 3 turns.",
		nil, 2},
	{AssetNetworkPolicy, "Network Policy", AssetDefensive,
		"Renders entity immune from splash damage, but only 2 resource can be transferred to or from it each turn.",
		[]string{game.RusGov, game.Bear, game.Trolls, game.SCS, game.Ros, game.UKGov, game.PLC, game.Elect, game.GCHQ, game.Energy}, 2},
	{AssetStuxnet, "Stuxnet 2.0", AssetAttack,
		"Direct attack from GCHQ/SCS deals double damage to UK Energy or Rosenergoatom.",
		[]string{game.GCHQ, game.SCS}, 1},
	{AssetRansomware, "Ransomware", AssetAttack,
		"When part of successful direct attack, paralyses UK PLC or Electorate for 2 turns unless 2 resource is paid to attacker.",
		[]string{game.PLC, game.Elect}, 1},
	{AssetCyberInvestment, "Cyber Investment Programme", AssetDefensive,
		"Entity may regenerate vitality at 1 less resource cost than normal.",
		[]string{game.RusGov, game.Bear, game.Trolls, game.SCS, game.Ros, game.UKGov, game.PLC, game.Elect, game.GCHQ, game.Energy}, 2},
}

// AssetByID looks up a catalog entry; ok is false for unknown ids.
func AssetByID(id string) (AssetSpec, bool) {
	for _, a := range AssetCatalog {
		if a.ID == id {
			return a, true
		}
	}
	return AssetSpec{}, false
}

// CountAssets returns how many of a team's held assets fall in the category.
func CountAssets(assetIDs []string, category AssetCategory) int {
	n := 0
	for _, id := range assetIDs {
		if spec, ok := AssetByID(id); ok && spec.Category == category {
			n++
		}
	}
	return n
}

// targetAllowed reports whether the option names one of the asset's catalog
// targets. Id-valued options outside the Targets tuple are ignored.
func targetAllowed(assetID, option string) bool {
	spec, ok := AssetByID(assetID)
	if !ok {
		return false
	}
	for _, t := range spec.Targets {
		if t == option {
			return true
		}
	}
	return false
}

// activateAsset applies one asset's effect. The option selector is either a
// numeric sub-choice or a target entity id, depending on the asset.
func (tc *turnContext) activateAsset(assetID, option string) {
	red := tc.board.Teams[game.Red]
	blue := tc.board.Teams[game.Blue]

	switch assetID {
	case AssetAttackVector:
		switch option {
		case "0":
			blue.Entity(game.GCHQ).Attacks = []string{game.Ros}
		case "1":
			red.Entity(game.SCS).Attacks = []string{game.Energy}
		case "2":
			blue.Entity(game.UKGov).Attacks = []string{game.RusGov}
		}
	case AssetEducation:
		blue.Entity(game.Elect).Traits.Education = 3
	case AssetRecovery:
		plc := blue.Entity(game.PLC)
		plc.Traits.RecoveryActive = true
		plc.Traits.RecoveryTarget = plc.Vitality
	case AssetSoftwareUpdate:
		switch option {
		case "0":
			blue.Entity(game.PLC).Traits.SoftwareUpdate = 2
		case "1":
			blue.Entity(game.Energy).Traits.SoftwareUpdate = 2
		case "2":
			red.Entity(game.Ros).Traits.SoftwareUpdate = 2
		}
	case AssetBargainingChip:
		red.Entity(game.RusGov).Traits.BargainingChip = 3
	case AssetNetworkPolicy:
		if e := tc.board.Entity(option); e != nil && targetAllowed(assetID, option) {
			e.Traits.NetworkPolicy = true
		}
	case AssetStuxnet:
		switch option {
		case "0":
			red.Entity(game.Ros).Traits.Stuxnet = true
		case "1":
			blue.Entity(game.Energy).Traits.Stuxnet = true
		}
	case AssetRansomware:
		if e := blue.Entity(option); e != nil && targetAllowed(assetID, option) {
			e.Traits.Ransomware = true
		}
	case AssetCyberInvestment:
		if e := tc.board.Entity(option); e != nil && targetAllowed(assetID, option) {
			e.Traits.CyberInvestment = true
		}
	}
}

// resolveActivatedAssets consumes the assets the active team chose to
// activate this turn. Indices are removed in descending order so earlier
// removals cannot shift later ones.
func (tc *turnContext) resolveActivatedAssets(indices []int) {
	team := tc.board.Teams[tc.active]
	used := make([]int, 0, len(indices))
	for _, index := range indices {
		if index < 0 || index >= len(team.Assets) {
			continue
		}
		assetID := team.Assets[index]
		tc.activateAsset(assetID, tc.input("option-"+strconv.Itoa(index)))
		if spec, ok := AssetByID(assetID); ok {
			tc.log("Team "+titleColor(tc.active)+" activated asset "+spec.Name+" - "+spec.Description, "action")
		}
		used = append(used, index)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(used)))
	for _, index := range used {
		team.Assets = append(team.Assets[:index], team.Assets[index+1:]...)
	}
}

func titleColor(c game.TeamColor) string {
	switch c {
	case game.Red:
		return "Red"
	case game.Blue:
		return "Blue"
	}
	return string(c)
}
