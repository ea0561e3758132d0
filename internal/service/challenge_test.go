package service

import (
	"errors"
	"testing"
	"time"
)

func TestChallenge_SelfChallenge(t *testing.T) {
	svc, _, _ := newTestService(t, time.Hour)
	if err := svc.Challenge("arena-1", "alice", "alice", 50); !errors.Is(err, ErrSelfChallenge) {
		t.Fatalf("expected ErrSelfChallenge, got %v", err)
	}
}

func TestChallenge_DuplicateBlocked(t *testing.T) {
	svc, _, _ := newTestService(t, time.Hour)
	if err := svc.Challenge("arena-1", "alice", "bob", 50); err != nil {
		t.Fatalf("first challenge failed: %v", err)
	}
	if err := svc.Challenge("arena-1", "alice", "carol", 10); !errors.Is(err, ErrAlreadyChallenging) {
		t.Fatalf("expected ErrAlreadyChallenging, got %v", err)
	}
}

func TestChallenge_TargetUnfit(t *testing.T) {
	svc, store, _ := newTestService(t, time.Hour)
	store.players["bob"].Health = 5 // below the eligibility floor of 10
	if err := svc.Challenge("arena-1", "alice", "bob", 50); !errors.Is(err, ErrTargetUnfit) {
		t.Fatalf("expected ErrTargetUnfit for wounded target, got %v", err)
	}
	if err := svc.Challenge("arena-1", "alice", "nobody", 50); !errors.Is(err, ErrTargetUnfit) {
		t.Fatalf("expected ErrTargetUnfit for unregistered target, got %v", err)
	}
}

func TestAccept_NoPendingChallenge(t *testing.T) {
	svc, _, _ := newTestService(t, time.Hour)
	if _, err := svc.Accept("arena-1", "bob"); !errors.Is(err, ErrNoPendingChallenge) {
		t.Fatalf("expected ErrNoPendingChallenge, got %v", err)
	}
}

func TestReject_RemovesChallenge(t *testing.T) {
	svc, _, _ := newTestService(t, time.Hour)
	if err := svc.Challenge("arena-1", "alice", "bob", 50); err != nil {
		t.Fatalf("challenge failed: %v", err)
	}
	if err := svc.Reject("arena-1", "bob"); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if _, err := svc.Accept("arena-1", "bob"); !errors.Is(err, ErrNoPendingChallenge) {
		t.Fatalf("expected challenge to be gone after reject, got %v", err)
	}
}

func TestRegistry_LazyExpiry(t *testing.T) {
	r := NewRegistry(20 * time.Millisecond)
	if err := r.Create("alice", "bob", 50); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	time.Sleep(40 * time.Millisecond)
	if _, err := r.TakeForTarget("bob"); !errors.Is(err, ErrNoPendingChallenge) {
		t.Fatalf("expected expired challenge to be unobservable, got %v", err)
	}
	// the stale entry no longer blocks a fresh challenge
	if err := r.Create("alice", "carol", 10); err != nil {
		t.Fatalf("expected overwrite of expired entry, got %v", err)
	}
	pc, err := r.PeekForTarget("carol")
	if err != nil {
		t.Fatalf("peek failed: %v", err)
	}
	if pc.Wager != 10 {
		t.Fatalf("expected fresh entry, got wager %d", pc.Wager)
	}
}

func TestChallenge_BusyArenaLeavesNoPendingEntry(t *testing.T) {
	svc, _, _ := newTestService(t, time.Hour)
	startDuel(t, svc, "arena-1", 10)

	if err := svc.Challenge("arena-1", "carol", "dave", 5); !errors.Is(err, ErrDuelAlreadyActive) {
		t.Fatalf("expected ErrDuelAlreadyActive, got %v", err)
	}
	// the rejected challenge must not have slipped into the registry
	if _, err := svc.registry.PeekForTarget("dave"); !errors.Is(err, ErrNoPendingChallenge) {
		t.Fatalf("challenge recorded inside a live arena: %v", err)
	}
}

func TestAccept_IsConsuming(t *testing.T) {
	svc, _, _ := newTestService(t, time.Hour)
	startDuel(t, svc, "arena-1", 50)
	// the accepted challenge is gone even once the duel ends
	if _, err := svc.Surrender("arena-1", "bob"); err != nil {
		t.Fatalf("surrender failed: %v", err)
	}
	if _, err := svc.Accept("arena-1", "bob"); !errors.Is(err, ErrNoPendingChallenge) {
		t.Fatalf("expected consumed challenge, got %v", err)
	}
}
