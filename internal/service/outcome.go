package service

import (
	"fmt"
	"math/rand"

	"github.com/cyal-dev3/cyalbot-sub000/internal/constants"
	"github.com/cyal-dev3/cyalbot-sub000/internal/game"
	"github.com/cyal-dev3/cyalbot-sub000/internal/logging"
)

// Exp reward tuning. The formula is identical for every end reason.
const (
	expRewardBase     = 300
	expRewardPerLevel = 15
	expRewardJitter   = 150
)

// Outcome is the settled result of a duel.
type Outcome struct {
	WinnerID     string         `json:"winner_id"`
	LoserID      string         `json:"loser_id"`
	Reason       game.EndReason `json:"reason"`
	ExpReward    int            `json:"exp_reward"`
	WagerPaid    int            `json:"wager_paid"`
	WinnerHealth int            `json:"winner_health"`
	LoserHealth  int            `json:"loser_health"`
}

// computeRewards returns the exp reward and the actual wager transfer for a
// finished duel. The transfer is clamped so the loser is never overdrawn.
func computeRewards(rng *rand.Rand, loserLevel, wager, loserMoney int) (exp, transfer int) {
	exp = expRewardBase + loserLevel*expRewardPerLevel + rng.Intn(expRewardJitter+1)
	transfer = wager
	if transfer > loserMoney {
		transfer = loserMoney
	}
	if transfer < 0 {
		transfer = 0
	}
	return exp, transfer
}

// resolveLocked is the single teardown path shared by health-zero wins,
// surrenders and turn timeouts. Its first action removes the duel from the
// arena entry; a late-arriving caller that finds the entry already gone
// backs off silently, which makes double resolution impossible. Caller
// holds the arena lock.
func (s *DuelService) resolveLocked(a *arenaState, d *game.ActiveDuel, winnerSide game.Side, reason game.EndReason) *Outcome {
	if a.duel != d {
		return nil
	}
	a.duel = nil

	winner := d.Combatant(winnerSide)
	loser := d.Combatant(winnerSide.Other())
	exp, transfer := computeRewards(a.rng, loser.Level, d.Wager, loser.Money)

	outcome := &Outcome{
		WinnerID:     winner.PlayerID,
		LoserID:      loser.PlayerID,
		Reason:       reason,
		ExpReward:    exp,
		WagerPaid:    transfer,
		WinnerHealth: winner.CurrentHealth,
		LoserHealth:  loser.CurrentHealth,
	}

	// one sparse patch per player
	if err := s.repo.Update(winner.PlayerID, game.PlayerPatch{
		ExpDelta:   game.IntPtr(exp),
		MoneyDelta: game.IntPtr(transfer),
		WinsDelta:  game.IntPtr(1),
	}); err != nil {
		logging.Error("failed to apply winner rewards", err, logging.Fields{
			constants.LogFieldArenaID:  d.ArenaID,
			constants.LogFieldWinnerID: winner.PlayerID,
		})
	}
	if err := s.repo.Update(loser.PlayerID, game.PlayerPatch{
		MoneyDelta:  game.IntPtr(-transfer),
		LossesDelta: game.IntPtr(1),
	}); err != nil {
		logging.Error("failed to apply loser penalties", err, logging.Fields{
			constants.LogFieldArenaID: d.ArenaID,
			constants.LogFieldLoserID: loser.PlayerID,
		})
	}

	s.announce(d.ArenaID, resolutionSummary(d, winner, loser, outcome))
	logging.Info("duel resolved", logging.Fields{
		constants.LogFieldArenaID:  d.ArenaID,
		constants.LogFieldWinnerID: winner.PlayerID,
		constants.LogFieldLoserID:  loser.PlayerID,
		constants.LogFieldReason:   string(reason),
	})
	return outcome
}

// resolutionSummary phrases the final report per end reason; the reward
// lines are shared because the math is reason-agnostic.
func resolutionSummary(d *game.ActiveDuel, winner, loser *game.CombatantSnapshot, o *Outcome) string {
	var head string
	switch o.Reason {
	case game.ReasonSurrender:
		head = fmt.Sprintf("%s surrenders — %s wins the duel!", loser.Name, winner.Name)
	case game.ReasonTimeout:
		head = fmt.Sprintf("%s failed to act in time — %s wins by forfeit!", loser.Name, winner.Name)
	default:
		head = fmt.Sprintf("%s defeats %s in combat!", winner.Name, loser.Name)
	}
	return fmt.Sprintf("%s\n%s gains %d exp and %d coins.\nFinal state: %s %d/%d HP, %s %d/%d HP.",
		head, winner.Name, o.ExpReward, o.WagerPaid,
		winner.Name, winner.CurrentHealth, winner.MaxHealth,
		loser.Name, loser.CurrentHealth, loser.MaxHealth)
}
