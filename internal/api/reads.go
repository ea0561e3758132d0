package api

import (
	"net/http"

	"github.com/cyal-dev3/cyalbot-sub000/internal/constants"

	"github.com/gin-gonic/gin"
)

const leaderboardLimit = 10

// GetDuel returns the live duel state for an arena.
func (h *DuelHandler) GetDuel(c *gin.Context) {
	duel, err := h.svc.ActiveDuel(c.Param("arenaID"))
	if err != nil {
		respondDuelError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyDuel: duel})
}

// GetPlayer returns a player record.
func (h *DuelHandler) GetPlayer(c *gin.Context) {
	p, err := h.repo.Get(c.Param("playerID"))
	if err != nil {
		respondDuelError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListLeaderboard returns the top players by wins.
func (h *DuelHandler) ListLeaderboard(c *gin.Context) {
	players, err := h.repo.GetTopPlayers(leaderboardLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaders})
		return
	}
	c.JSON(http.StatusOK, players)
}
