package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/cyal-dev3/cyalbot-sub000/internal/constants"
	"github.com/cyal-dev3/cyalbot-sub000/internal/engine"
	"github.com/cyal-dev3/cyalbot-sub000/internal/game"
	"github.com/cyal-dev3/cyalbot-sub000/internal/logging"
)

// baseAttackStaminaCost is spent by plain attacks. Attacks always land even
// when the pool runs dry; the pool just floors at zero.
const baseAttackStaminaCost = 5

// ActionResult is the outcome of one duel verb. When Menu is set the action
// was a discoverability lookup: no turn was consumed and Duel is the
// unchanged state.
type ActionResult struct {
	Duel     *game.ActiveDuel
	Resolved bool
	Outcome  *Outcome
	Menu     []game.Skill
	LogLine  string
	Crit     bool
}

// Attack performs a plain attack for actorID in the arena's duel.
func (s *DuelService) Attack(arenaID, actorID string) (*ActionResult, error) {
	return s.performAction(arenaID, actorID, "", false)
}

// UseSkill performs a class-skill attack. An empty skillName returns the
// actor's currently affordable skills as a menu without consuming a turn.
func (s *DuelService) UseSkill(arenaID, actorID, skillName string) (*ActionResult, error) {
	return s.performAction(arenaID, actorID, skillName, true)
}

// Surrender immediately resolves the duel with the other side as winner,
// regardless of whose turn it is.
func (s *DuelService) Surrender(arenaID, actorID string) (*ActionResult, error) {
	a := s.arena(arenaID)
	a.mu.Lock()
	defer a.mu.Unlock()

	d := a.duel
	if d == nil {
		return nil, ErrNoActiveDuel
	}
	side, ok := d.SideOf(actorID)
	if !ok {
		return nil, ErrNotParticipant
	}
	d.ActionLog = append(d.ActionLog, fmt.Sprintf("%s surrenders.", d.Combatant(side).Name))
	outcome := s.resolveLocked(a, d, side.Other(), game.ReasonSurrender)
	return &ActionResult{Duel: snapshotDuel(d), Resolved: true, Outcome: outcome}, nil
}

// performAction runs steps validation → initiative → damage → terminal
// check → turn flip as one atomic unit under the arena lock. The timer
// callback takes the same lock, so a timeout and a user action can never
// interleave inside one arena.
func (s *DuelService) performAction(arenaID, actorID, skillName string, useSkill bool) (*ActionResult, error) {
	a := s.arena(arenaID)
	a.mu.Lock()
	defer a.mu.Unlock()

	d := a.duel
	if d == nil {
		return nil, ErrNoActiveDuel
	}
	side, ok := d.SideOf(actorID)
	if !ok {
		return nil, ErrNotParticipant
	}

	isFirst := d.FirstActionPending()

	// The nominal first turn belongs to the challenger, but a target that
	// acts first seizes the initiative instead of being rejected. After
	// the first action normal turn enforcement applies.
	seizedInitiative := false
	if side != d.CurrentTurn {
		if isFirst && side == game.SideTarget {
			seizedInitiative = true
		} else {
			return nil, ErrNotYourTurn
		}
	}

	actor := d.Combatant(side)
	defender := d.Combatant(side.Other())

	var skill *game.Skill
	if useSkill {
		resolved, menu, err := s.resolveSkill(actor, skillName)
		if err != nil {
			return &ActionResult{Duel: snapshotDuel(d), Menu: menu}, err
		}
		if resolved == nil {
			// discoverability response; no turn consumed
			return &ActionResult{Duel: snapshotDuel(d), Menu: menu}, nil
		}
		skill = resolved
	}

	// validation is done; everything below mutates duel state
	if seizedInitiative {
		d.CurrentTurn = side
		d.ActionLog = append(d.ActionLog, fmt.Sprintf("%s was faster and seizes the initiative!", actor.Name))
	}

	damage, crit := engine.ResolveAttack(a.rng, actor, defender, skill, isFirst)
	defender.CurrentHealth -= damage
	if defender.CurrentHealth < 0 {
		defender.CurrentHealth = 0
	}
	if skill != nil {
		actor.CurrentMana -= skill.ManaCost
		actor.CurrentStamina -= skill.StaminaCost
	} else {
		actor.CurrentStamina -= baseAttackStaminaCost
	}
	if actor.CurrentStamina < 0 {
		actor.CurrentStamina = 0
	}
	if actor.CurrentMana < 0 {
		actor.CurrentMana = 0
	}

	logLine := actionLogLine(actor, defender, skill, damage, crit, isFirst)
	d.ActionLog = append(d.ActionLog, logLine)

	res := &ActionResult{LogLine: logLine, Crit: crit}

	if defender.CurrentHealth == 0 {
		res.Outcome = s.resolveLocked(a, d, side, game.ReasonVictory)
		res.Resolved = true
		res.Duel = snapshotDuel(d)
		return res, nil
	}

	s.completeTurnLocked(d, logLine, crit)
	res.Duel = snapshotDuel(d)
	return res, nil
}

// completeTurnLocked is the single turn-completion path shared by plain
// attacks, skills and initiative-corrected first actions. Caller holds the
// arena lock.
func (s *DuelService) completeTurnLocked(d *game.ActiveDuel, logLine string, crit bool) {
	d.CurrentTurn = d.CurrentTurn.Other()
	d.TurnDeadline = time.Now().Add(s.tun.TurnTimeout)
	s.armTurnTimer(d.ArenaID, d.TurnDeadline)

	msgID := s.announce(d.ArenaID, logLine+"\n"+renderStatus(d))
	if crit {
		s.react(msgID, "💥")
	}
}

// resolveSkill matches skillName against the actor's class skill list. The
// returned menu lists the skills the actor can afford right now. A nil
// skill with a nil error means "show the menu".
func (s *DuelService) resolveSkill(actor *game.CombatantSnapshot, skillName string) (*game.Skill, []game.Skill, error) {
	all := s.classes.Skills(actor.ClassID)
	affordable := make([]game.Skill, 0, len(all))
	for _, sk := range all {
		if actor.CanAfford(sk) {
			affordable = append(affordable, sk)
		}
	}
	if strings.TrimSpace(skillName) == "" {
		return nil, affordable, nil
	}
	want := strings.ToLower(strings.TrimSpace(skillName))
	for i := range all {
		if strings.ToLower(all[i].Name) == want || all[i].ID == want {
			if !actor.CanAfford(all[i]) {
				return nil, affordable, ErrInsufficientResources
			}
			sk := all[i]
			return &sk, affordable, nil
		}
	}
	return nil, affordable, ErrUnknownSkill
}

func actionLogLine(actor, defender *game.CombatantSnapshot, skill *game.Skill, damage int, crit, first bool) string {
	var b strings.Builder
	if skill != nil {
		fmt.Fprintf(&b, "%s %s uses %s on %s for %d damage", skill.Emoji, actor.Name, skill.Name, defender.Name, damage)
	} else {
		fmt.Fprintf(&b, "%s attacks %s for %d damage", actor.Name, defender.Name, damage)
	}
	if crit {
		b.WriteString(" — CRITICAL HIT!")
	}
	if first {
		b.WriteString(" (first strike)")
	}
	fmt.Fprintf(&b, " [%s: %d HP left]", defender.Name, defender.CurrentHealth)
	return b.String()
}

// renderStatus builds the after-turn status view shown in the arena.
func renderStatus(d *game.ActiveDuel) string {
	var b strings.Builder
	for _, c := range []*game.CombatantSnapshot{d.Challenger, d.Target} {
		fmt.Fprintf(&b, "%s — %d/%d HP, %d MP, %d SP\n", c.Name, c.CurrentHealth, c.MaxHealth, c.CurrentMana, c.CurrentStamina)
	}
	left := time.Until(d.TurnDeadline).Round(time.Second)
	if left < 0 {
		left = 0
	}
	fmt.Fprintf(&b, "Turn: %s (%s to act)", d.Combatant(d.CurrentTurn).Name, left)
	return b.String()
}

// snapshotDuel copies the duel for return values so callers never alias
// live state.
func snapshotDuel(d *game.ActiveDuel) *game.ActiveDuel {
	cp := *d
	cp.ActionLog = append([]string(nil), d.ActionLog...)
	ch := *d.Challenger
	tg := *d.Target
	cp.Challenger = &ch
	cp.Target = &tg
	return &cp
}

// announce sends text to the arena and returns the message id. Sink
// failures are logged and swallowed; they never block a transition.
func (s *DuelService) announce(arenaID, text string) string {
	id, err := s.sink.Send(arenaID, text)
	if err != nil {
		logging.Warn("notification send failed", err, logging.Fields{constants.LogFieldArenaID: arenaID})
		return ""
	}
	return id
}

func (s *DuelService) react(messageID, emoji string) {
	if messageID == "" {
		return
	}
	if err := s.sink.React(messageID, emoji); err != nil {
		logging.Warn("notification react failed", err, logging.Fields{constants.LogFieldMessageID: messageID})
	}
}
