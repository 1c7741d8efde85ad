package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sm48337/wargame/internal/game"
)

type entityEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Connections []string `json:"connections"`
	Attacks     []string `json:"attacks"`
	Resource    int      `json:"resource"`
	Vitality    int      `json:"vitality"`
}

type rawConfig struct {
	Teams  map[string][]entityEntry `json:"teams"`
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
}

// LoadedConfig holds the validated roster definition and server settings.
// The engine consumes the roster's shape only; the numbers live here.
type LoadedConfig struct {
	Rosters       map[game.TeamColor][]entityEntry
	ServerAddress string
}

// LoadConfig reads the configuration file at path and validates the two
// five-entity rosters. Any dangling entity reference is fatal here; it must
// never reach turn resolution.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	rosters := map[game.TeamColor][]entityEntry{
		game.Red:  rc.Teams[string(game.Red)],
		game.Blue: rc.Teams[string(game.Blue)],
	}
	if err := validateRosters(path, rosters); err != nil {
		return nil, err
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	return &LoadedConfig{Rosters: rosters, ServerAddress: addr}, nil
}

func validateRosters(path string, rosters map[game.TeamColor][]entityEntry) error {
	ids := map[game.TeamColor]map[string]bool{
		game.Red:  {},
		game.Blue: {},
	}
	for _, color := range game.Teams {
		entries := rosters[color]
		if len(entries) != 5 {
			return fmt.Errorf("config file %s: team %s must have exactly 5 entities, got %d", path, color, len(entries))
		}
		seenRoles := map[string]bool{}
		for _, e := range entries {
			if e.ID == "" {
				return fmt.Errorf("config file %s: team %s has an entity missing 'id'", path, color)
			}
			if ids[game.Red][e.ID] || ids[game.Blue][e.ID] {
				return fmt.Errorf("config file %s: duplicate entity id '%s'", path, e.ID)
			}
			ids[color][e.ID] = true
			valid := false
			for _, r := range game.Roles {
				if e.Role == string(r) {
					valid = true
				}
			}
			if !valid {
				return fmt.Errorf("config file %s: entity '%s' has unknown role '%s'", path, e.ID, e.Role)
			}
			if seenRoles[e.Role] {
				return fmt.Errorf("config file %s: team %s has duplicate role '%s'", path, color, e.Role)
			}
			seenRoles[e.Role] = true
		}
	}
	for i, color := range game.Teams {
		opposing := game.Teams[1-i]
		for _, e := range rosters[color] {
			for _, cid := range e.Connections {
				if !ids[color][cid] {
					return fmt.Errorf("config file %s: entity '%s' connection '%s' does not exist in team %s", path, e.ID, cid, color)
				}
			}
			for _, aid := range e.Attacks {
				if !ids[opposing][aid] {
					return fmt.Errorf("config file %s: entity '%s' attack target '%s' does not exist in team %s", path, e.ID, aid, opposing)
				}
			}
		}
	}
	return nil
}

// NewBoard builds a fresh board from the roster definition. Connection
// lists are normalized to be symmetric; scoring trackers start at the
// initial vitality values.
func (c *LoadedConfig) NewBoard() *game.BoardState {
	board := &game.BoardState{
		Teams: make(map[game.TeamColor]*game.TeamState, 2),
	}
	for _, color := range game.Teams {
		ts := &game.TeamState{}
		for _, entry := range c.Rosters[color] {
			ts.Entities = append(ts.Entities, &game.Entity{
				ID:          entry.ID,
				Name:        entry.Name,
				Connections: append([]string(nil), entry.Connections...),
				Attacks:     append([]string(nil), entry.Attacks...),
				Resource:    entry.Resource,
				Vitality:    entry.Vitality,
			})
		}
		symmetrize(ts)
		board.Teams[color] = ts
	}

	if plc := board.Teams[game.Blue].Entity(game.PLC); plc != nil {
		plc.Traits.Growth = &game.GrowthTrack{Vitality: plc.Vitality}
	}
	if ros := board.Teams[game.Red].Entity(game.Ros); ros != nil {
		ros.Traits.Growth = &game.GrowthTrack{Vitality: ros.Vitality}
	}
	if bear := board.Teams[game.Red].Entity(game.Bear); bear != nil {
		bear.Traits.LastGrowthVitality = bear.Vitality
	}
	return board
}

func symmetrize(ts *game.TeamState) {
	for _, e := range ts.Entities {
		for _, cid := range e.Connections {
			other := ts.Entity(cid)
			if other == nil {
				continue
			}
			found := false
			for _, back := range other.Connections {
				if back == e.ID {
					found = true
					break
				}
			}
			if !found {
				other.Connections = append(other.Connections, e.ID)
			}
		}
	}
}
