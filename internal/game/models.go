package game

import (
	"time"

	"gorm.io/gorm"
)

// Round timing. The active team has RoundLength to submit; a pause toggle
// grants UnpauseDelay of grace before the clock restarts.
const (
	RoundLength  = 3 * time.Minute
	UnpauseDelay = 5 * time.Second
)

// Team names the five role players of one side. Stored as embedded columns;
// the usernames are opaque identity strings supplied by the caller.
type Team struct {
	Name       string `json:"name"`
	Government string `json:"government"`
	Industry   string `json:"industry"`
	People     string `json:"people"`
	Security   string `json:"security"`
	Energy     string `json:"energy"`
}

// Players returns the usernames in roster order.
func (t Team) Players() []string {
	return []string{t.Government, t.Industry, t.People, t.Security, t.Energy}
}

// Player returns the username seated in the given role.
func (t Team) Player(role Role) string {
	switch role {
	case RoleGovernment:
		return t.Government
	case RoleIndustry:
		return t.Industry
	case RolePeople:
		return t.People
	case RoleSecurity:
		return t.Security
	case RoleEnergy:
		return t.Energy
	}
	return ""
}

// Has reports whether the username holds any seat on this team.
func (t Team) Has(username string) bool {
	for _, p := range t.Players() {
		if p == username {
			return true
		}
	}
	return false
}

// Message is one narrative log entry shown to players.
type Message struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Game is the aggregate root: two teams, the live board document, the
// append-only history and log, the in-progress turn inputs and the round
// timer. The board document and its companions persist as JSON columns.
type Game struct {
	gorm.Model
	JoinCode    string `json:"join_code" gorm:"uniqueIndex"`
	Owner       string `json:"owner"`
	Description string `json:"description" gorm:"size:256"`

	RedTeam  Team `json:"red_team" gorm:"embedded;embeddedPrefix:red_"`
	BlueTeam Team `json:"blue_team" gorm:"embedded;embeddedPrefix:blue_"`

	// Victor is empty until the game finishes; once set no further turn
	// resolution is accepted.
	Victor TeamColor `json:"victor"`

	BoardState   *BoardState       `json:"board_state" gorm:"serializer:json"`
	History      []*BoardState     `json:"history" gorm:"serializer:json"`
	PlayerInputs map[string]string `json:"player_inputs" gorm:"serializer:json"`
	ReadyPlayers []string          `json:"ready_players" gorm:"serializer:json"`
	MessageLog   []Message         `json:"message_log" gorm:"serializer:json"`

	UnpauseTime time.Time `json:"unpause_time"`
	SecondsLeft int       `json:"seconds_left"`
	IsPaused    bool      `json:"is_paused"`
}

// Log appends one narrative entry. Best-effort output for players; never
// consulted by the rules themselves.
func (g *Game) Log(text, category string) {
	g.MessageLog = append(g.MessageLog, Message{Text: text, Category: category})
}

// Team returns the Team seated on the given side.
func (g *Game) Team(color TeamColor) Team {
	if color == Red {
		return g.RedTeam
	}
	return g.BlueTeam
}

// ActiveTeam returns the Team whose turn it is.
func (g *Game) ActiveTeam() Team {
	return g.Team(g.BoardState.ActiveTeam())
}

// ReadyPlayer marks a player as having submitted for the current turn.
// Appending twice is prevented by the caller's validation.
func (g *Game) ReadyPlayer(username string) {
	for _, p := range g.ReadyPlayers {
		if p == username {
			return
		}
	}
	g.ReadyPlayers = append(g.ReadyPlayers, username)
}

// IsReady reports whether the player already submitted this turn.
func (g *Game) IsReady(username string) bool {
	for _, p := range g.ReadyPlayers {
		if p == username {
			return true
		}
	}
	return false
}

// AllPlayersReady reports whether every role player of the active team has
// submitted. Identity is by username; duplicate seats count once.
func (g *Game) AllPlayersReady() bool {
	for _, p := range g.ActiveTeam().Players() {
		if !g.IsReady(p) {
			return false
		}
	}
	return true
}

// MergeInputs folds one player's raw form fields into the accumulating
// per-turn input map. Later keys overwrite earlier ones.
func (g *Game) MergeInputs(inputs map[string]string) {
	if g.PlayerInputs == nil {
		g.PlayerInputs = make(map[string]string, len(inputs))
	}
	for k, v := range inputs {
		g.PlayerInputs[k] = v
	}
}

// TimeLeft reports the seconds remaining in the round at the given wall
// clock reading. While paused it returns the frozen value; running games may
// go negative once the deadline passes.
func (g *Game) TimeLeft(now time.Time) int {
	if g.IsPaused {
		return g.SecondsLeft
	}
	deadline := g.UnpauseTime.Add(time.Duration(g.SecondsLeft) * time.Second)
	return int(deadline.Sub(now) / time.Second)
}

// StartingDelay is the number of seconds until the pre-game delay elapses.
func (g *Game) StartingDelay(now time.Time) float64 {
	return g.UnpauseTime.Sub(now).Seconds()
}

// IsStarting reports whether the pre-game starting delay is still active.
func (g *Game) IsStarting(now time.Time) bool {
	return g.StartingDelay(now) > 0
}

// TogglePause flips the pause state. Pausing freezes SecondsLeft by
// subtracting the time elapsed since the last unpause; unpausing sets a new
// deadline with a short grace delay. No-op during the starting delay.
func (g *Game) TogglePause(now time.Time) {
	if g.IsStarting(now) {
		return
	}
	if g.IsPaused {
		g.UnpauseTime = now.Add(UnpauseDelay)
	} else {
		g.SecondsLeft -= int(now.Sub(g.UnpauseTime) / time.Second)
	}
	g.IsPaused = !g.IsPaused
}

// ResetRoundTimer starts a fresh round clock at the given instant.
func (g *Game) ResetRoundTimer(now time.Time) {
	g.UnpauseTime = now
	g.SecondsLeft = int(RoundLength / time.Second)
}
