package engine

import (
	"math"
	"math/rand"

	"github.com/cyal-dev3/cyalbot-sub000/internal/game"
)

// Damage tuning shared by every duel.
const (
	// FirstStrikeMultiplier boosts the very first landed action of a duel.
	FirstStrikeMultiplier = 1.15
	// CritMultiplier is applied after variance on a successful crit roll.
	CritMultiplier = 1.75
	// DefenseFactor scales how much of the defender's defense is subtracted.
	DefenseFactor = 0.4
	// VariancePercent bounds the symmetric damage variance (+/- percent).
	VariancePercent = 10
)

// ResolveAttack computes a single attack's damage and crit outcome. It is
// stateless: all randomness comes from rng, so a seeded source makes the
// result reproducible.
func ResolveAttack(rng *rand.Rand, attacker, defender *game.CombatantSnapshot, skill *game.Skill, firstStrike bool) (damage int, isCrit bool) {
	base := float64(attacker.Attack)
	if skill != nil {
		base = math.Floor(base * skill.DamageMultiplier)
	}
	if firstStrike {
		base = math.Floor(base * FirstStrikeMultiplier)
	}

	reduced := math.Floor(base - float64(defender.Defense)*DefenseFactor)
	if reduced < 1 {
		reduced = 1
	}

	// variance is a uniform integer percentage in [-10, 10]
	variance := rng.Intn(2*VariancePercent+1) - VariancePercent
	withVariance := math.Floor(reduced * (1.0 + float64(variance)/100.0))

	final := withVariance
	if roll := rng.Intn(100) + 1; roll <= attacker.CritChance {
		isCrit = true
		final = math.Floor(withVariance * CritMultiplier)
	}
	if final < 1 {
		final = 1
	}
	return int(final), isCrit
}
