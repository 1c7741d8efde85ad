package engine

import (
	"time"

	"github.com/sm48337/wargame/internal/game"
)

// scriptedRNG feeds predetermined rolls and picks; exhausted scripts fall
// back to the lowest value so tests stay deterministic.
type scriptedRNG struct {
	rolls []int
	picks []int
}

func (s *scriptedRNG) Roll() int {
	if len(s.rolls) == 0 {
		return 1
	}
	r := s.rolls[0]
	s.rolls = s.rolls[1:]
	return r
}

func (s *scriptedRNG) Pick(n int) int {
	if len(s.picks) == 0 {
		return 0
	}
	p := s.picks[0]
	s.picks = s.picks[1:]
	if p >= n {
		p = n - 1
	}
	return p
}

func ent(id, name string, conns, attacks []string, resource, vitality int) *game.Entity {
	return &game.Entity{
		ID:          id,
		Name:        name,
		Connections: conns,
		Attacks:     attacks,
		Resource:    resource,
		Vitality:    vitality,
	}
}

// testBoard mirrors the default roster with symmetric connection lists.
func testBoard() *game.BoardState {
	red := &game.TeamState{Entities: []*game.Entity{
		ent(game.RusGov, "Russian Government", []string{game.Bear, game.SCS, game.Ros}, nil, 4, 8),
		ent(game.Bear, "Energetic Bear", []string{game.Trolls, game.RusGov}, nil, 3, 8),
		ent(game.Trolls, "Online Trolls", []string{game.SCS, game.Bear}, nil, 3, 8),
		ent(game.SCS, "SCS", []string{game.RusGov, game.Trolls}, []string{game.PLC, game.Elect}, 3, 8),
		ent(game.Ros, "Rosenergoatom", []string{game.RusGov}, nil, 3, 8),
	}}
	blue := &game.TeamState{Entities: []*game.Entity{
		ent(game.UKGov, "UK Government", []string{game.GCHQ, game.Elect, game.Energy}, nil, 4, 8),
		ent(game.PLC, "UK PLC", []string{game.Elect, game.Energy}, nil, 3, 8),
		ent(game.Elect, "Electorate", []string{game.UKGov, game.PLC}, nil, 3, 8),
		ent(game.GCHQ, "GCHQ", []string{game.UKGov}, []string{game.Bear, game.Trolls}, 3, 8),
		ent(game.Energy, "UK Energy", []string{game.UKGov, game.PLC}, nil, 3, 8),
	}}

	red.Entity(game.Ros).Traits.Growth = &game.GrowthTrack{Vitality: 8}
	red.Entity(game.Bear).Traits.LastGrowthVitality = 8
	blue.Entity(game.PLC).Traits.Growth = &game.GrowthTrack{Vitality: 8}

	return &game.BoardState{
		Turn:  0,
		Teams: map[game.TeamColor]*game.TeamState{game.Red: red, game.Blue: blue},
	}
}

func newTestGame() *game.Game {
	return &game.Game{
		JoinCode:     "test-game",
		Owner:        "r1",
		RedTeam:      game.Team{Name: "Reds", Government: "r1", Industry: "r2", People: "r3", Security: "r4", Energy: "r5"},
		BlueTeam:     game.Team{Name: "Blues", Government: "b1", Industry: "b2", People: "b3", Security: "b4", Energy: "b5"},
		BoardState:   testBoard(),
		PlayerInputs: map[string]string{},
	}
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
