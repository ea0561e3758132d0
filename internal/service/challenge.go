package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/cyal-dev3/cyalbot-sub000/internal/game"
)

// Registry tracks outstanding, unaccepted challenges keyed by challenger.
// Expiry is passive: entries never fire, they are observed as stale and
// dropped during lookups.
type Registry struct {
	mu      sync.Mutex
	window  time.Duration
	pending map[string]*game.PendingChallenge
}

func NewRegistry(window time.Duration) *Registry {
	return &Registry{window: window, pending: make(map[string]*game.PendingChallenge)}
}

// Create stores a new pending challenge. A live, unexpired entry for the
// same challenger blocks the new one; an expired entry is overwritten.
func (r *Registry) Create(challengerID, targetID string, wager int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if pc, ok := r.pending[challengerID]; ok && !pc.ExpiredAt(now, r.window) {
		return ErrAlreadyChallenging
	}
	r.pending[challengerID] = &game.PendingChallenge{
		ChallengerID: challengerID,
		TargetID:     targetID,
		Wager:        wager,
		CreatedAt:    now,
	}
	return nil
}

// PeekForTarget returns the live challenge addressed to targetID without
// consuming it. Stale entries found during the scan are dropped.
func (r *Registry) PeekForTarget(targetID string) (*game.PendingChallenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findForTargetLocked(targetID)
}

// TakeForTarget removes and returns the live challenge addressed to
// targetID. Accepting is consuming.
func (r *Registry) TakeForTarget(targetID string) (*game.PendingChallenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pc, err := r.findForTargetLocked(targetID)
	if err != nil {
		return nil, err
	}
	delete(r.pending, pc.ChallengerID)
	return pc, nil
}

func (r *Registry) findForTargetLocked(targetID string) (*game.PendingChallenge, error) {
	now := time.Now()
	for challenger, pc := range r.pending {
		if pc.ExpiredAt(now, r.window) {
			delete(r.pending, challenger)
			continue
		}
		if pc.TargetID == targetID {
			return pc, nil
		}
	}
	return nil, ErrNoPendingChallenge
}

// Challenge issues a duel challenge inside an arena. It fails fast while a
// duel is live in that arena, on self-challenges, and on targets that are
// unregistered or below the combat-eligibility floor.
func (s *DuelService) Challenge(arenaID, challengerID, targetID string, wager int) error {
	if challengerID == targetID {
		return ErrSelfChallenge
	}

	// The busy check and the registry write happen under the arena lock as
	// one unit, so a concurrent Accept cannot slot a duel in between and
	// leave a challenge pending inside a live arena.
	a := s.arena(arenaID)
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.duel != nil {
		return ErrDuelAlreadyActive
	}

	challenger, err := s.repo.Get(challengerID)
	if err != nil {
		return err
	}
	target, err := s.repo.Get(targetID)
	if err != nil {
		return ErrTargetUnfit
	}
	if target.Health < s.tun.EligibilityFloor {
		return ErrTargetUnfit
	}

	if err := s.registry.Create(challengerID, targetID, wager); err != nil {
		return err
	}

	s.announce(arenaID, fmt.Sprintf("%s challenges %s to a duel for %d coins! Accept within %s.",
		challenger.Name, target.Name, wager, s.tun.ChallengeWindow))
	return nil
}

// Accept consumes the pending challenge addressed to targetID and starts
// the duel. The busy check and duel creation happen under the arena lock as
// one atomic unit.
func (s *DuelService) Accept(arenaID, targetID string) (*game.ActiveDuel, error) {
	a := s.arena(arenaID)
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.duel != nil {
		return nil, ErrDuelAlreadyActive
	}

	pc, err := s.registry.PeekForTarget(targetID)
	if err != nil {
		return nil, err
	}

	challenger, err := s.repo.Get(pc.ChallengerID)
	if err != nil {
		return nil, err
	}
	target, err := s.repo.Get(pc.TargetID)
	if err != nil {
		return nil, err
	}

	if _, err := s.registry.TakeForTarget(targetID); err != nil {
		return nil, err
	}

	now := time.Now()
	duel := &game.ActiveDuel{
		ArenaID:      arenaID,
		Challenger:   game.NewCombatant(challenger),
		Target:       game.NewCombatant(target),
		CurrentTurn:  game.SideChallenger,
		TurnDeadline: now.Add(s.tun.TurnTimeout),
		Wager:        pc.Wager,
		StartedAt:    now,
	}
	a.duel = duel
	s.armTurnTimer(arenaID, duel.TurnDeadline)

	msgID := s.announce(arenaID, fmt.Sprintf("%s accepted the duel! %s opens; each turn lasts %s.\n%s",
		target.Name, challenger.Name, s.tun.TurnTimeout, renderStatus(duel)))
	s.react(msgID, "⚔️")

	return snapshotDuel(duel), nil
}

// Reject drops the pending challenge addressed to targetID without starting
// a duel.
func (s *DuelService) Reject(arenaID, targetID string) error {
	pc, err := s.registry.TakeForTarget(targetID)
	if err != nil {
		return err
	}
	s.announce(arenaID, fmt.Sprintf("The duel challenge from %s was rejected.", pc.ChallengerID))
	return nil
}
