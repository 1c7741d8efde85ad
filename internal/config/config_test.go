package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sm48337/wargame/internal/game"
)

const validConfig = `{
  "teams": {
    "red": [
      {"id": "rus_gov", "name": "Russian Government", "role": "government", "connections": ["bear", "scs", "ros"], "resource": 4, "vitality": 8},
      {"id": "bear", "name": "Energetic Bear", "role": "industry", "connections": ["trolls"], "resource": 3, "vitality": 8},
      {"id": "trolls", "name": "Online Trolls", "role": "people", "connections": ["scs"], "resource": 3, "vitality": 8},
      {"id": "scs", "name": "SCS", "role": "security", "attacks": ["plc", "elect"], "resource": 3, "vitality": 8},
      {"id": "ros", "name": "Rosenergoatom", "role": "energy", "resource": 3, "vitality": 8}
    ],
    "blue": [
      {"id": "uk_gov", "name": "UK Government", "role": "government", "connections": ["gchq", "elect", "energy"], "resource": 4, "vitality": 8},
      {"id": "plc", "name": "UK PLC", "role": "industry", "connections": ["elect", "energy"], "resource": 3, "vitality": 8},
      {"id": "elect", "name": "Electorate", "role": "people", "resource": 3, "vitality": 8},
      {"id": "gchq", "name": "GCHQ", "role": "security", "attacks": ["bear", "trolls"], "resource": 3, "vitality": 8},
      {"id": "energy", "name": "UK Energy", "role": "energy", "resource": 3, "vitality": 8}
    ]
  },
  "server": {"address": ":9090"}
}`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wargame_config.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":9090" {
		t.Fatalf("server address = %q, want :9090", cfg.ServerAddress)
	}
	if len(cfg.Rosters[game.Red]) != 5 || len(cfg.Rosters[game.Blue]) != 5 {
		t.Fatalf("rosters must have five entities per team")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadConfig_DanglingConnection(t *testing.T) {
	bad := `{
  "teams": {
    "red": [
      {"id": "rus_gov", "role": "government", "connections": ["ghost"]},
      {"id": "bear", "role": "industry"},
      {"id": "trolls", "role": "people"},
      {"id": "scs", "role": "security"},
      {"id": "ros", "role": "energy"}
    ],
    "blue": [
      {"id": "uk_gov", "role": "government"},
      {"id": "plc", "role": "industry"},
      {"id": "elect", "role": "people"},
      {"id": "gchq", "role": "security"},
      {"id": "energy", "role": "energy"}
    ]
  }
}`
	if _, err := LoadConfig(writeConfig(t, bad)); err == nil {
		t.Fatalf("dangling connection id must be rejected")
	}
}

func TestLoadConfig_DuplicateRole(t *testing.T) {
	bad := `{
  "teams": {
    "red": [
      {"id": "rus_gov", "role": "government"},
      {"id": "bear", "role": "government"},
      {"id": "trolls", "role": "people"},
      {"id": "scs", "role": "security"},
      {"id": "ros", "role": "energy"}
    ],
    "blue": [
      {"id": "uk_gov", "role": "government"},
      {"id": "plc", "role": "industry"},
      {"id": "elect", "role": "people"},
      {"id": "gchq", "role": "security"},
      {"id": "energy", "role": "energy"}
    ]
  }
}`
	if _, err := LoadConfig(writeConfig(t, bad)); err == nil {
		t.Fatalf("duplicate role must be rejected")
	}
}

func TestNewBoard_SymmetrizesConnections(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	board := cfg.NewBoard()

	bear := board.Teams[game.Red].Entity(game.Bear)
	found := false
	for _, id := range bear.Connections {
		if id == game.RusGov {
			found = true
		}
	}
	if !found {
		t.Fatalf("bear must gain the back-edge to rus_gov, got %v", bear.Connections)
	}
	if board.Entity(game.PLC).Traits.Growth == nil {
		t.Fatalf("plc growth tracker must start recorded")
	}
	if got := board.Entity(game.Bear).Traits.LastGrowthVitality; got != 8 {
		t.Fatalf("bear growth baseline = %d, want 8", got)
	}
}
