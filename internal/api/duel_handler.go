package api

import (
	"github.com/cyal-dev3/cyalbot-sub000/internal/service"
	"github.com/cyal-dev3/cyalbot-sub000/internal/storage"
)

// DuelHandler groups the HTTP handlers that route commands into the duel
// service.
type DuelHandler struct {
	svc  *service.DuelService
	repo storage.Repository
}

// NewDuelHandler creates a DuelHandler backed by the given service and
// repository.
func NewDuelHandler(svc *service.DuelService, repo storage.Repository) *DuelHandler {
	return &DuelHandler{svc: svc, repo: repo}
}
