package api

import (
	"net/http"
	"time"

	"github.com/sm48337/wargame/internal/constants"
	"github.com/sm48337/wargame/internal/logging"
	"github.com/sm48337/wargame/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitTurnRequest carries one player's raw form fields for the current
// turn. Field names follow the "<prefix>-<target>__<verb>" convention the
// engine parses.
type SubmitTurnRequest struct {
	Player string            `json:"player"`
	Inputs map[string]string `json:"inputs"`
}

// SubmitTurn stores one player's inputs and resolves the turn once every
// active-team player has submitted.
func (h *GameHandler) SubmitTurn(c *gin.Context) {
	code := c.Param("gameCode")

	var req SubmitTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.Player == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerRequired})
		return
	}

	g, resolved, validationErrors, err := service.SubmitTurn(h.repo, code, req.Player, req.Inputs, h.rng, time.Now())
	if err != nil {
		if err == service.ErrGameNotFound {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrGameNotFound})
			return
		}
		logging.Error("failed to store turn input", err, logging.Fields{constants.LogFieldGameCode: code})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStoreTurn})
		return
	}
	if len(validationErrors) > 0 {
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyMessages: validationErrors})
		return
	}

	if resolved {
		logging.Info("turn resolved", logging.Fields{constants.LogFieldGameCode: code, constants.LogFieldTurn: g.BoardState.Turn})
	}
	c.JSON(http.StatusOK, gin.H{
		"game":     g,
		"resolved": resolved,
	})
}
