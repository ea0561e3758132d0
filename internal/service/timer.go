package service

import (
	"fmt"
	"time"

	"github.com/cyal-dev3/cyalbot-sub000/internal/game"
)

// armTurnTimer schedules the deferred forfeit callback for a turn. There is
// no cancel handle: the callback captures the deadline by value and
// re-validates it against the live duel when it fires, so a timer armed for
// a turn that already advanced (or for a duel that already ended) is a
// no-op.
func (s *DuelService) armTurnTimer(arenaID string, deadline time.Time) {
	time.AfterFunc(time.Until(deadline), func() {
		s.fireTurnTimer(arenaID, deadline)
	})
}

func (s *DuelService) fireTurnTimer(arenaID string, deadline time.Time) {
	a := s.arena(arenaID)
	a.mu.Lock()
	defer a.mu.Unlock()

	d := a.duel
	if d == nil || !d.TurnDeadline.Equal(deadline) {
		// stale: the duel ended or a newer turn armed a fresh deadline
		return
	}

	loserSide := d.CurrentTurn
	d.ActionLog = append(d.ActionLog, fmt.Sprintf("%s failed to act in time.", d.Combatant(loserSide).Name))
	s.resolveLocked(a, d, loserSide.Other(), game.ReasonTimeout)
}
