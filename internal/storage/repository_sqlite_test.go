package storage

import (
	"errors"
	"testing"

	"github.com/cyal-dev3/cyalbot-sub000/internal/game"
)

func openTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := OpenAndMigrate(":memory:", []game.PlayerStats{
		{PlayerID: "alice", Name: "Alice", Level: 5, Health: 80, MaxHealth: 80, Money: 500, Wins: 3, Exp: 900},
		{PlayerID: "bob", Name: "Bob", Level: 4, Health: 80, MaxHealth: 80, Money: 200, Wins: 7, Exp: 400},
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	return NewSQLiteRepository(db)
}

func TestGet_SeededPlayers(t *testing.T) {
	repo := openTestRepo(t)
	p, err := repo.Get("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Alice" || p.Money != 500 {
		t.Fatalf("unexpected record: %+v", p)
	}
	if _, err := repo.Get("nobody"); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestUpdate_AppliesSparseDeltas(t *testing.T) {
	repo := openTestRepo(t)
	err := repo.Update("bob", game.PlayerPatch{
		ExpDelta:    game.IntPtr(350),
		MoneyDelta:  game.IntPtr(-120),
		LossesDelta: game.IntPtr(1),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	p, err := repo.Get("bob")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if p.Exp != 750 || p.Money != 80 || p.Losses != 1 {
		t.Fatalf("deltas not applied: exp=%d money=%d losses=%d", p.Exp, p.Money, p.Losses)
	}
	// untouched fields stay put
	if p.Wins != 7 || p.Level != 4 {
		t.Fatalf("sparse patch touched other fields: %+v", p)
	}
}

func TestUpdate_UnknownPlayer(t *testing.T) {
	repo := openTestRepo(t)
	err := repo.Update("nobody", game.PlayerPatch{WinsDelta: game.IntPtr(1)})
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestUpdate_EmptyPatchIsNoOp(t *testing.T) {
	repo := openTestRepo(t)
	if err := repo.Update("alice", game.PlayerPatch{}); err != nil {
		t.Fatalf("empty patch should be a no-op, got %v", err)
	}
}

func TestGetTopPlayers_OrderedByWins(t *testing.T) {
	repo := openTestRepo(t)
	top, err := repo.GetTopPlayers(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 2 || top[0].PlayerID != "bob" {
		t.Fatalf("unexpected leaderboard order: %+v", top)
	}
}
