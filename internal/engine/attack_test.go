package engine

import (
	"math/rand"
	"testing"

	"github.com/cyal-dev3/cyalbot-sub000/internal/game"
)

func combatant(attack, defense, crit int) *game.CombatantSnapshot {
	return &game.CombatantSnapshot{Attack: attack, Defense: defense, CritChance: crit}
}

func TestResolveAttack_DeterministicWithSeed(t *testing.T) {
	a := combatant(20, 0, 10)
	d := combatant(5, 10, 0)
	dmg1, crit1 := ResolveAttack(rand.New(rand.NewSource(42)), a, d, nil, false)
	dmg2, crit2 := ResolveAttack(rand.New(rand.NewSource(42)), a, d, nil, false)
	if dmg1 != dmg2 || crit1 != crit2 {
		t.Fatalf("same seed produced different outcomes: (%d,%v) vs (%d,%v)", dmg1, crit1, dmg2, crit2)
	}
}

func TestResolveAttack_NeverBelowOne(t *testing.T) {
	a := combatant(1, 0, 0)
	d := combatant(1, 1000, 0)
	for seed := int64(0); seed < 50; seed++ {
		dmg, _ := ResolveAttack(rand.New(rand.NewSource(seed)), a, d, nil, false)
		if dmg < 1 {
			t.Fatalf("seed %d: damage %d below 1", seed, dmg)
		}
	}
}

func TestResolveAttack_VarianceBounds(t *testing.T) {
	a := combatant(100, 0, 0)
	d := combatant(1, 0, 0)
	// crit chance 0, defense 0: damage must stay within +/-10% of base
	for seed := int64(0); seed < 200; seed++ {
		dmg, crit := ResolveAttack(rand.New(rand.NewSource(seed)), a, d, nil, false)
		if crit {
			t.Fatalf("seed %d: crit with 0%% crit chance", seed)
		}
		if dmg < 90 || dmg > 110 {
			t.Fatalf("seed %d: damage %d outside variance bounds [90,110]", seed, dmg)
		}
	}
}

func TestResolveAttack_AlwaysCritsAtFullChance(t *testing.T) {
	a := combatant(100, 0, 100)
	d := combatant(1, 0, 0)
	for seed := int64(0); seed < 50; seed++ {
		dmg, crit := ResolveAttack(rand.New(rand.NewSource(seed)), a, d, nil, false)
		if !crit {
			t.Fatalf("seed %d: expected guaranteed crit", seed)
		}
		// crit floor: 90 * 1.75 rounded down
		if dmg < 157 {
			t.Fatalf("seed %d: crit damage %d below expected floor", seed, dmg)
		}
	}
}

func TestResolveAttack_SkillAndFirstStrikeScaleBase(t *testing.T) {
	a := combatant(100, 0, 0)
	d := combatant(1, 0, 0)
	skill := &game.Skill{ID: "fireball", DamageMultiplier: 2.0}
	for seed := int64(0); seed < 100; seed++ {
		plain, _ := ResolveAttack(rand.New(rand.NewSource(seed)), a, d, nil, false)
		boosted, _ := ResolveAttack(rand.New(rand.NewSource(seed)), a, d, skill, false)
		first, _ := ResolveAttack(rand.New(rand.NewSource(seed)), a, d, nil, true)
		if boosted <= plain {
			t.Fatalf("seed %d: skill damage %d not above plain %d", seed, boosted, plain)
		}
		if first <= plain {
			t.Fatalf("seed %d: first-strike damage %d not above plain %d", seed, first, plain)
		}
	}
}

func TestResolveAttack_DefenseReducesDamage(t *testing.T) {
	a := combatant(50, 0, 0)
	soft := combatant(1, 0, 0)
	hard := combatant(1, 100, 0)
	for seed := int64(0); seed < 100; seed++ {
		vsSoft, _ := ResolveAttack(rand.New(rand.NewSource(seed)), a, soft, nil, false)
		vsHard, _ := ResolveAttack(rand.New(rand.NewSource(seed)), a, hard, nil, false)
		if vsHard >= vsSoft {
			t.Fatalf("seed %d: armored target took %d, unarmored %d", seed, vsHard, vsSoft)
		}
	}
}
