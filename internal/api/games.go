package api

import (
	"net/http"
	"time"

	"github.com/sm48337/wargame/internal/constants"
	"github.com/sm48337/wargame/internal/game"
	"github.com/sm48337/wargame/internal/logging"
	"github.com/sm48337/wargame/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateGameRequest names the owner and the two five-seat rosters.
type CreateGameRequest struct {
	Owner       string    `json:"owner"`
	Description string    `json:"description"`
	RedTeam     game.Team `json:"red_team"`
	BlueTeam    game.Team `json:"blue_team"`
}

// CreateGame builds a fresh game from the configured rosters.
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.Owner == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerRequired})
		return
	}

	board := h.cfg.NewBoard()
	g, err := service.CreateGame(h.repo, req.Owner, req.Description, req.RedTeam, req.BlueTeam, board, h.rng, time.Now())
	if err != nil {
		switch err {
		case service.ErrRosterIncomplete, service.ErrDuplicateSeat:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrRosterIncomplete})
		case service.ErrPlayerOnBothTeams:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayersMustDiffer})
		default:
			logging.Error("failed to create game", err, nil)
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateGame})
		}
		return
	}

	logging.Info("game created", logging.Fields{constants.LogFieldGameCode: g.JoinCode, constants.LogFieldPlayer: g.Owner})
	c.JSON(http.StatusCreated, g)
}

// ListGames returns all games, newest first.
func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := h.repo.GetGames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchGames})
		return
	}
	c.JSON(http.StatusOK, games)
}

// GetGame returns the full board view for rendering. Reading the board also
// polls the round clock: an expired round is force-resolved before the
// response is built.
func (h *GameHandler) GetGame(c *gin.Context) {
	code := c.Param("gameCode")
	now := time.Now()

	if _, err := service.CheckTimeout(h.repo, code, h.rng, now); err != nil && err != service.ErrGameNotFound {
		logging.Error("timeout check failed", err, logging.Fields{constants.LogFieldGameCode: code})
	}

	g, err := h.repo.FindGameByJoinCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrGameNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"game":           g,
		"month":          game.TurnToMonth(g.BoardState.Turn),
		"time_left":      g.TimeLeft(now),
		"is_paused":      g.IsPaused,
		"is_starting":    g.IsStarting(now),
		"starting_delay": g.StartingDelay(now),
	})
}

// GetLog returns the append-only message log.
func (h *GameHandler) GetLog(c *gin.Context) {
	g, err := h.repo.FindGameByJoinCode(c.Param("gameCode"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrGameNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessages: g.MessageLog})
}
