package constants

// Centralized constants for env keys, routes and handler messages.
const (
	// Environment variable keys
	EnvConfigPath = "WARGAME_CONFIG"
	EnvDBPath     = "WARGAME_DB"

	// Defaults
	DefaultConfigPath = "./wargame_config.json"
	DefaultDBPath     = "./data/wargame.db"
)

// Routes used by the backend router
const (
	RouteAPIPrefix  = "/api"
	RouteVersion    = "/version"
	RouteGames      = "/games"
	RouteGameByCode = "/games/:gameCode"
	RouteGameTurn   = "/games/:gameCode/turn"
	RouteGamePause  = "/games/:gameCode/pause"
	RouteGameLog    = "/games/:gameCode/log"
)

// Common JSON response keys
const (
	JSONKeyError    = "error"
	JSONKeyMessage  = "message"
	JSONKeyMessages = "messages"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest    = "Invalid request"
	ErrInvalidGameCode   = "Invalid game code"
	ErrGameNotFound      = "Game not found"
	ErrFailedCreateGame  = "Failed to create game"
	ErrFailedFetchGames  = "Failed to fetch games"
	ErrFailedUpdateGame  = "Failed to update game"
	ErrFailedStoreTurn   = "Failed to store turn input"
	ErrPlayerRequired    = "player is required"
	ErrOnlyOwnerCanPause = "Only the game owner can pause or resume"
	ErrRosterIncomplete  = "Both teams need all five role players"
	ErrPlayersMustDiffer = "A player cannot hold seats on both teams"
)

// Logging field names
const (
	LogFieldGameID   = "game_id"
	LogFieldGameCode = "game_code"
	LogFieldPlayer   = "player"
	LogFieldTurn     = "turn"
	LogFieldAddr     = "addr"
)
