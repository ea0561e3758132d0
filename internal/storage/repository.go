package storage

import (
	"errors"

	"github.com/cyal-dev3/cyalbot-sub000/internal/game"
)

// ErrPlayerNotFound is returned by Get for ids with no record.
var ErrPlayerNotFound = errors.New("player not found")

// Repository is the persistence boundary of the dueling engine. The engine
// reads a player exactly once per duel (into a snapshot) and writes exactly
// once per duel (both combatants' deltas at resolution).
type Repository interface {
	// Get returns a copy of the player record for id.
	Get(id string) (*game.PlayerStats, error)
	// Update applies a sparse patch to the player record. Fields absent
	// from the patch are untouched. Safe to call concurrently for
	// different ids; same-id calls are serialized by the caller.
	Update(id string, patch game.PlayerPatch) error
	// GetTopPlayers returns up to limit players ordered by wins.
	GetTopPlayers(limit int) ([]game.PlayerStats, error)
}
