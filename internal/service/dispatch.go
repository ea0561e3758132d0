package service

import "errors"

// Verb is the closed set of inbound commands the engine understands. The
// surrounding message router parses text; the engine only ever sees these.
type Verb string

const (
	VerbChallenge Verb = "challenge"
	VerbAccept    Verb = "accept"
	VerbReject    Verb = "reject"
	VerbAct       Verb = "act"
)

// ActKind selects the in-duel action for VerbAct.
type ActKind string

const (
	ActAttack    ActKind = "attack"
	ActSkill     ActKind = "skill"
	ActSurrender ActKind = "surrender"
)

// Command is one routed instruction for Dispatch.
type Command struct {
	Verb    Verb
	ArenaID string
	Actor   string
	Target  string
	Wager   int
	Kind    ActKind
	// Arg carries the skill name for ActSkill.
	Arg string
}

var (
	ErrUnknownVerb    = errors.New("unknown verb")
	ErrUnknownActKind = errors.New("unknown act kind")
)

// Dispatch is the single entry point into the engine for routed commands.
func (s *DuelService) Dispatch(cmd Command) (*ActionResult, error) {
	switch cmd.Verb {
	case VerbChallenge:
		return nil, s.Challenge(cmd.ArenaID, cmd.Actor, cmd.Target, cmd.Wager)
	case VerbAccept:
		duel, err := s.Accept(cmd.ArenaID, cmd.Actor)
		if err != nil {
			return nil, err
		}
		return &ActionResult{Duel: duel}, nil
	case VerbReject:
		return nil, s.Reject(cmd.ArenaID, cmd.Actor)
	case VerbAct:
		switch cmd.Kind {
		case ActAttack:
			return s.Attack(cmd.ArenaID, cmd.Actor)
		case ActSkill:
			return s.UseSkill(cmd.ArenaID, cmd.Actor, cmd.Arg)
		case ActSurrender:
			return s.Surrender(cmd.ArenaID, cmd.Actor)
		default:
			return nil, ErrUnknownActKind
		}
	default:
		return nil, ErrUnknownVerb
	}
}
