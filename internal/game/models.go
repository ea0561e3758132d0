package game

import (
	"time"

	"gorm.io/gorm"
)

// PlayerStats is the persisted player record. It is owned by the player
// store; the duel engine reads a frozen copy at duel start and writes
// sparse deltas at duel end, never in between.
type PlayerStats struct {
	gorm.Model
	PlayerID   string `json:"player_id" gorm:"uniqueIndex"`
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Health     int    `json:"health"`
	MaxHealth  int    `json:"max_health"`
	Mana       int    `json:"mana"`
	MaxMana    int    `json:"max_mana"`
	Stamina    int    `json:"stamina"`
	MaxStamina int    `json:"max_stamina"`
	Attack     int    `json:"attack"`
	Defense    int    `json:"defense"`
	CritChance int    `json:"crit_chance"`
	// ClassID is nil for players that never picked a class; such players
	// have no skills and can only use plain attacks.
	ClassID *string `json:"class_id"`
	Money   int     `json:"money"`
	Exp     int     `json:"exp"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
}

// Persist global player records as "player_profiles".
func (PlayerStats) TableName() string { return "player_profiles" }

// PlayerPatch is a sparse set of field deltas applied to a player record in
// a single logical update. Nil fields are untouched.
type PlayerPatch struct {
	ExpDelta    *int
	MoneyDelta  *int
	WinsDelta   *int
	LossesDelta *int
}

// IntPtr is a small helper for building patches.
func IntPtr(v int) *int { return &v }

// Side identifies one of the two combatants of a duel. Using a dedicated
// type instead of plain string makes turn bookkeeping self-documenting.
type Side string

const (
	SideChallenger Side = "challenger"
	SideTarget     Side = "target"
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideChallenger {
		return SideTarget
	}
	return SideChallenger
}

// EndReason describes why a duel reached its terminal state. Reward math is
// identical for every reason; only the reported narrative differs.
type EndReason string

const (
	ReasonVictory   EndReason = "victory"
	ReasonSurrender EndReason = "surrender"
	ReasonTimeout   EndReason = "timeout"
)

// Skill is a class ability usable during a duel. Skills are defined in the
// server configuration and are read-only to the engine.
type Skill struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Emoji            string  `json:"emoji"`
	ManaCost         int     `json:"mana_cost"`
	StaminaCost      int     `json:"stamina_cost"`
	DamageMultiplier float64 `json:"damage_multiplier"`
}

// ClassSet maps a class id to its skill list. Loaded from configuration,
// never mutated afterwards.
type ClassSet map[string][]Skill

// Skills returns the skill list for a class id, or nil for classless players.
func (cs ClassSet) Skills(classID *string) []Skill {
	if classID == nil {
		return nil
	}
	return cs[*classID]
}

// CombatantSnapshot is a frozen-at-start copy of a player's stats plus the
// mutable in-duel overlay (current health/mana/stamina). It exists only
// inside an active duel and is never persisted mid-duel.
type CombatantSnapshot struct {
	PlayerID   string  `json:"player_id"`
	Name       string  `json:"name"`
	Level      int     `json:"level"`
	MaxHealth  int     `json:"max_health"`
	MaxMana    int     `json:"max_mana"`
	MaxStamina int     `json:"max_stamina"`
	Attack     int     `json:"attack"`
	Defense    int     `json:"defense"`
	CritChance int     `json:"crit_chance"`
	ClassID    *string `json:"class_id"`
	// Money at duel start; the wager clamp never overdraws past it.
	Money int `json:"money"`

	CurrentHealth  int `json:"current_health"`
	CurrentMana    int `json:"current_mana"`
	CurrentStamina int `json:"current_stamina"`
}

// NewCombatant freezes a player record into a duel snapshot. Current pools
// carry over as they stand; the record itself is not touched again until
// resolution.
func NewCombatant(p *PlayerStats) *CombatantSnapshot {
	return &CombatantSnapshot{
		PlayerID:       p.PlayerID,
		Name:           p.Name,
		Level:          p.Level,
		MaxHealth:      p.MaxHealth,
		MaxMana:        p.MaxMana,
		MaxStamina:     p.MaxStamina,
		Attack:         p.Attack,
		Defense:        p.Defense,
		CritChance:     p.CritChance,
		ClassID:        p.ClassID,
		Money:          p.Money,
		CurrentHealth:  p.Health,
		CurrentMana:    p.Mana,
		CurrentStamina: p.Stamina,
	}
}

// CanAfford reports whether the combatant has the mana and stamina a skill
// requires right now.
func (c *CombatantSnapshot) CanAfford(s Skill) bool {
	return c.CurrentMana >= s.ManaCost && c.CurrentStamina >= s.StaminaCost
}

// PendingChallenge is an outstanding, unaccepted duel challenge. Keyed by
// challenger: a challenger cannot hold two pending challenges at once.
type PendingChallenge struct {
	ChallengerID string    `json:"challenger_id"`
	TargetID     string    `json:"target_id"`
	Wager        int       `json:"wager"`
	CreatedAt    time.Time `json:"created_at"`
}

// ExpiredAt reports whether the challenge has passed the acceptance window.
// Expiry is observed lazily at lookup time; nothing ever fires for it.
func (pc *PendingChallenge) ExpiredAt(now time.Time, window time.Duration) bool {
	return now.Sub(pc.CreatedAt) > window
}

// ActiveDuel is the live state of one running duel. At most one exists per
// arena. It is exclusively owned by the duel service and mutated only under
// the arena's serialization point.
type ActiveDuel struct {
	ArenaID      string             `json:"arena_id"`
	Challenger   *CombatantSnapshot `json:"challenger"`
	Target       *CombatantSnapshot `json:"target"`
	CurrentTurn  Side               `json:"current_turn"`
	TurnDeadline time.Time          `json:"turn_deadline"`
	Wager        int                `json:"wager"`
	ActionLog    []string           `json:"action_log"`
	StartedAt    time.Time          `json:"started_at"`
}

// SideOf resolves which side a player id belongs to. The boolean is false
// for non-participants.
func (d *ActiveDuel) SideOf(playerID string) (Side, bool) {
	switch playerID {
	case d.Challenger.PlayerID:
		return SideChallenger, true
	case d.Target.PlayerID:
		return SideTarget, true
	}
	return "", false
}

// Combatant returns the snapshot fighting on the given side.
func (d *ActiveDuel) Combatant(s Side) *CombatantSnapshot {
	if s == SideChallenger {
		return d.Challenger
	}
	return d.Target
}

// FirstActionPending reports whether no action has landed yet. It gates the
// first-strike bonus and the initiative-race correction.
func (d *ActiveDuel) FirstActionPending() bool { return len(d.ActionLog) == 0 }
