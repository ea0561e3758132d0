package api

import (
	"errors"
	"net/http"

	"github.com/cyal-dev3/cyalbot-sub000/internal/constants"
	"github.com/cyal-dev3/cyalbot-sub000/internal/service"
	"github.com/cyal-dev3/cyalbot-sub000/internal/storage"

	"github.com/gin-gonic/gin"
)

type ChallengeRequest struct {
	ChallengerID string `json:"challenger_id" binding:"required"`
	TargetID     string `json:"target_id" binding:"required"`
	Wager        int    `json:"wager"`
}

type AnswerRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
}

type ActionRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	Kind     string `json:"kind" binding:"required"`
	Skill    string `json:"skill"`
}

// Challenge issues a duel challenge in the arena.
func (h *DuelHandler) Challenge(c *gin.Context) {
	var req ChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Wager < 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	_, err := h.svc.Dispatch(service.Command{
		Verb:    service.VerbChallenge,
		ArenaID: c.Param("arenaID"),
		Actor:   req.ChallengerID,
		Target:  req.TargetID,
		Wager:   req.Wager,
	})
	if err != nil {
		respondDuelError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgChallengeSent})
}

// Accept answers the pending challenge addressed to the caller and starts
// the duel.
func (h *DuelHandler) Accept(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	res, err := h.svc.Dispatch(service.Command{
		Verb:    service.VerbAccept,
		ArenaID: c.Param("arenaID"),
		Actor:   req.PlayerID,
	})
	if err != nil {
		respondDuelError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyDuel: res.Duel})
}

// Reject drops the pending challenge addressed to the caller.
func (h *DuelHandler) Reject(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	_, err := h.svc.Dispatch(service.Command{
		Verb:    service.VerbReject,
		ArenaID: c.Param("arenaID"),
		Actor:   req.PlayerID,
	})
	if err != nil {
		respondDuelError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgChallengeGone})
}

// Action performs an in-duel action (attack, skill, surrender).
func (h *DuelHandler) Action(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	kind := service.ActKind(req.Kind)
	switch kind {
	case service.ActAttack, service.ActSkill, service.ActSurrender:
	default:
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownVerb})
		return
	}
	res, err := h.svc.Dispatch(service.Command{
		Verb:    service.VerbAct,
		ArenaID: c.Param("arenaID"),
		Actor:   req.PlayerID,
		Kind:    kind,
		Arg:     req.Skill,
	})
	if err != nil {
		// menu still accompanies the skill errors for discoverability
		if res != nil && (errors.Is(err, service.ErrUnknownSkill) || errors.Is(err, service.ErrInsufficientResources)) {
			status := http.StatusBadRequest
			msg := constants.ErrUnknownSkillMessage
			if errors.Is(err, service.ErrInsufficientResources) {
				status = http.StatusConflict
				msg = constants.ErrInsufficientFunds
			}
			c.JSON(status, gin.H{constants.JSONKeyError: msg, constants.JSONKeyMenu: res.Menu})
			return
		}
		respondDuelError(c, err)
		return
	}
	if res.Menu != nil && !res.Resolved && res.LogLine == "" {
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyMenu: res.Menu})
		return
	}
	if res.Resolved {
		msg := constants.MsgDuelResolved
		if kind == service.ActSurrender {
			msg = constants.MsgSurrendered
		}
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: msg, "outcome": res.Outcome})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: constants.MsgActionAccepted, constants.JSONKeyDuel: res.Duel})
}

// respondDuelError maps service-level typed errors to HTTP statuses and
// user-facing messages.
func respondDuelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSelfChallenge):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrSelfChallenge})
	case errors.Is(err, service.ErrAlreadyChallenging):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrAlreadyChallenging})
	case errors.Is(err, service.ErrTargetUnfit):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrTargetUnfit})
	case errors.Is(err, service.ErrNoPendingChallenge):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrNoPendingChallenge})
	case errors.Is(err, service.ErrDuelAlreadyActive):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrDuelAlreadyActive})
	case errors.Is(err, service.ErrNoActiveDuel):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrNoDuelInArena})
	case errors.Is(err, service.ErrNotParticipant):
		c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrNotParticipant})
	case errors.Is(err, service.ErrNotYourTurn):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNotYourTurn})
	case errors.Is(err, service.ErrInsufficientResources):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrInsufficientFunds})
	case errors.Is(err, service.ErrUnknownSkill):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownSkillMessage})
	case errors.Is(err, storage.ErrPlayerNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPlayerNotFound})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
	}
}
