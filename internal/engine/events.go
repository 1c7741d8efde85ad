package engine

import "github.com/sm48337/wargame/internal/game"

// Event ids. The catalog is closed: nine events dispatched by an explicit
// switch in applyEvent.
const (
	EventUneventfulMonth     = "uneventful_month"
	EventNuclearMeltdown     = "nuclear_meltdown"
	EventClumsyCivilServant  = "clumsy_civil_servant"
	EventSoftwareUpdate      = "software_update"
	EventBankingError        = "banking_error"
	EventEmbargoed           = "embargoed"
	EventLaxOpsec            = "lax_opsec"
	EventPeopleRevolt        = "people_revolt"
	EventQuantumBreakthrough = "quantum_breakthrough"
)

// eventDescriptions is the narrative line appended to the message log for
// each drawn event.
var eventDescriptions = map[string]string{
	EventUneventfulMonth: "Uneventful Month - Nothing out of the ordinary happens this month, continue playing.",
	EventNuclearMeltdown: "Nuclear Meltdown - Hinkley Point nuclear generator suffers a small but significant technical fault. " +
		"UK Energy loses 1 vitality.",
	EventClumsyCivilServant: "Clumsy Civil Servant - A Civil Servant leaves a laptop with sensitive data on a train. " +
		"Electorate loses 1 vitality. UK Government loses 2 resource.",
	EventSoftwareUpdate: "Software Update - Government mandates that all companies must have the latest operating system. " +
		"UK PLC loses 2 resource.",
	EventBankingError: "Banking Error - A rounding error in the Bank of England computer system cripples transfer protocols. " +
		"UK cannot transfer any resources this month.",
	EventEmbargoed: "Embargoed - Russian foreign policy adventurism results in an international arms embargo. " +
		"SCS cannot bid on or receive Black Market items this month.",
	EventLaxOpsec: "Lax OpSec - An Interior Ministry worker plugs in an unsanitised USB stick. " +
		"Russia Government loses 1 vitality and 1 resource.",
	EventPeopleRevolt: "People's Revolt - People take to the streets to protest against Internet censorship. " +
		"Russia does not gain any resource this month.",
	EventQuantumBreakthrough: "Quantum Breakthrough - Google rolls out quantum computing across its services and devices. " +
		"ALL entities gain 1 resource and 1 vitality.",
}

// eventPool is the weighted draw list: the uneventful outcome carries eight
// times the weight of each named event.
var eventPool = []string{
	EventUneventfulMonth, EventUneventfulMonth, EventUneventfulMonth, EventUneventfulMonth,
	EventUneventfulMonth, EventUneventfulMonth, EventUneventfulMonth, EventUneventfulMonth,
	EventNuclearMeltdown, EventClumsyCivilServant, EventSoftwareUpdate, EventBankingError,
	EventEmbargoed, EventLaxOpsec, EventPeopleRevolt, EventQuantumBreakthrough,
}

// applyEvent mutates the board according to one named event.
func applyEvent(board *game.BoardState, event string) {
	red := board.Teams[game.Red]
	blue := board.Teams[game.Blue]

	switch event {
	case EventUneventfulMonth:
		// nothing happens
	case EventNuclearMeltdown:
		blue.Entity(game.Energy).Vitality--
	case EventClumsyCivilServant:
		blue.Entity(game.Elect).Vitality--
		blue.Entity(game.UKGov).Resource -= 2
	case EventSoftwareUpdate:
		blue.Entity(game.PLC).Resource -= 2
	case EventBankingError:
		blue.Entity(game.UKGov).Traits.BankingError = true
	case EventEmbargoed:
		red.Entity(game.SCS).Traits.Embargoed = true
	case EventLaxOpsec:
		red.Entity(game.RusGov).Vitality--
		red.Entity(game.RusGov).Resource--
	case EventPeopleRevolt:
		red.Entity(game.RusGov).Traits.PeopleRevolt = true
	case EventQuantumBreakthrough:
		for _, ts := range []*game.TeamState{red, blue} {
			for _, e := range ts.Entities {
				e.Resource++
				e.Vitality++
			}
		}
	}
}

// ProcessEvent draws one weighted random event, applies it and logs its
// description.
func ProcessEvent(g *game.Game, rng RNG) {
	event := eventPool[rng.Pick(len(eventPool))]
	applyEvent(g.BoardState, event)
	g.Log(eventDescriptions[event], "event")
}
