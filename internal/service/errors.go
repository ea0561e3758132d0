package service

import "errors"

// Typed, expected outcomes of the duel verbs. The API layer maps each to a
// user-facing message; none of these is fatal to the process.
var (
	ErrAlreadyChallenging    = errors.New("challenger already has a pending challenge")
	ErrSelfChallenge         = errors.New("cannot challenge yourself")
	ErrTargetUnfit           = errors.New("target is not fit for a duel")
	ErrNoPendingChallenge    = errors.New("no pending challenge for this player")
	ErrDuelAlreadyActive     = errors.New("a duel is already active in this arena")
	ErrNotParticipant        = errors.New("player is not part of this duel")
	ErrNotYourTurn           = errors.New("not this player's turn")
	ErrInsufficientResources = errors.New("not enough mana or stamina")
	ErrUnknownSkill          = errors.New("unknown skill")
	ErrNoActiveDuel          = errors.New("no active duel in this arena")
)
