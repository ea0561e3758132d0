package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/cyal-dev3/cyalbot-sub000/internal/game"
	"github.com/cyal-dev3/cyalbot-sub000/internal/notify"
)

// PlayerStore is the narrow persistence contract the duel service consumes.
// The engine reads each combatant once at duel start and writes one sparse
// patch per combatant at resolution.
type PlayerStore interface {
	Get(id string) (*game.PlayerStats, error)
	Update(id string, patch game.PlayerPatch) error
}

// Tunables holds the per-deployment knobs of the dueling engine.
type Tunables struct {
	// TurnTimeout is how long each side has to act before forfeiting.
	TurnTimeout time.Duration
	// ChallengeWindow is how long a pending challenge stays acceptable.
	ChallengeWindow time.Duration
	// EligibilityFloor is the minimum out-of-duel health a target needs.
	EligibilityFloor int
}

// arenaState serializes everything that touches one arena's duel: inbound
// verbs and the arena's turn timer both lock mu before reading or writing
// duel. Cross-arena duels share nothing.
type arenaState struct {
	mu   sync.Mutex
	duel *game.ActiveDuel
	rng  *rand.Rand
}

// DuelService owns the challenge registry and the active-duel table and
// exposes the five duel verbs. One instance serves all arenas.
type DuelService struct {
	repo    PlayerStore
	sink    notify.NotificationSink
	classes game.ClassSet
	tun     Tunables

	registry *Registry

	mu     sync.Mutex
	arenas map[string]*arenaState
	// seeds feeds each new arena's rng; drawing seeds from one source
	// keeps arenas created back to back from rolling identical sequences.
	seeds *rand.Rand
}

// NewDuelService wires a duel service from its collaborators.
func NewDuelService(repo PlayerStore, sink notify.NotificationSink, classes game.ClassSet, tun Tunables) *DuelService {
	if tun.TurnTimeout <= 0 {
		tun.TurnTimeout = 30 * time.Second
	}
	if tun.ChallengeWindow <= 0 {
		tun.ChallengeWindow = 2 * time.Minute
	}
	return &DuelService{
		repo:     repo,
		sink:     sink,
		classes:  classes,
		tun:      tun,
		registry: NewRegistry(tun.ChallengeWindow),
		arenas:   make(map[string]*arenaState),
		seeds:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// arena returns the serialization point for arenaID, creating it on first
// use. Arena states are never removed; an arena without a duel is an entry
// with a nil duel pointer.
func (s *DuelService) arena(arenaID string) *arenaState {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.arenas[arenaID]
	if !ok {
		a = &arenaState{rng: rand.New(rand.NewSource(s.seeds.Int63()))}
		s.arenas[arenaID] = a
	}
	return a
}

// ActiveDuel returns a snapshot copy of the arena's live duel, or
// ErrNoActiveDuel when none is running.
func (s *DuelService) ActiveDuel(arenaID string) (*game.ActiveDuel, error) {
	a := s.arena(arenaID)
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.duel == nil {
		return nil, ErrNoActiveDuel
	}
	return snapshotDuel(a.duel), nil
}
