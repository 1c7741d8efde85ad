package api

import (
	"net/http"
	"time"

	"github.com/sm48337/wargame/internal/constants"
	"github.com/sm48337/wargame/internal/service"

	"github.com/gin-gonic/gin"
)

// PauseRequest names the player asking to pause or resume.
type PauseRequest struct {
	Player string `json:"player"`
}

// TogglePause pauses a running game or resumes a paused one. Resuming
// restores the exact time the round had left.
func (h *GameHandler) TogglePause(c *gin.Context) {
	code := c.Param("gameCode")

	var req PauseRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Player == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerRequired})
		return
	}

	g, err := service.TogglePause(h.repo, code, req.Player, time.Now())
	switch err {
	case nil:
	case service.ErrGameNotFound:
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrGameNotFound})
		return
	case service.ErrNotOwner:
		c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrOnlyOwnerCanPause})
		return
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateGame})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_paused":    g.IsPaused,
		"seconds_left": g.SecondsLeft,
	})
}
