package constants

// Centralized constants for env keys, routes and user-facing messages.
const (
	// Environment variable keys
	EnvConfigPath = "DUEL_CONFIG"
	EnvDBPath     = "DUEL_DB"
)

// Routes used by the backend router
const (
	RouteAPIPrefix   = "/api"
	RouteChallenge   = "/arenas/:arenaID/challenge"
	RouteAccept      = "/arenas/:arenaID/accept"
	RouteReject      = "/arenas/:arenaID/reject"
	RouteAction      = "/arenas/:arenaID/action"
	RouteDuel        = "/arenas/:arenaID/duel"
	RoutePlayerByID  = "/players/:playerID"
	RouteLeaderboard = "/leaderboard"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyMenu    = "menu"
	JSONKeyDuel    = "duel"
)

// User-facing messages composed at the API boundary. The service layer
// returns typed errors only.
const (
	ErrInvalidRequest      = "Invalid request"
	ErrUnknownVerb         = "Unknown action kind"
	ErrPlayerNotFound      = "Player not found"
	ErrNoDuelInArena       = "No duel is running in this arena"
	ErrFailedFetchLeaders  = "Failed to fetch leaderboard"
	ErrAlreadyChallenging  = "You already have an open challenge"
	ErrSelfChallenge       = "You cannot challenge yourself"
	ErrTargetUnfit         = "That player is in no shape to fight"
	ErrNoPendingChallenge  = "You have no challenge to answer"
	ErrDuelAlreadyActive   = "A duel is already running in this arena"
	ErrNotParticipant      = "You are not part of this duel"
	ErrNotYourTurn         = "It is not your turn"
	ErrInsufficientFunds   = "Not enough mana or stamina for that skill"
	ErrUnknownSkillMessage = "No such skill"

	MsgChallengeSent  = "Challenge sent. Waiting for an answer."
	MsgChallengeGone  = "Challenge rejected."
	MsgActionAccepted = "Action applied."
	MsgSurrendered    = "Surrender accepted."
	MsgDuelResolved   = "Duel resolved."
)

// Logging field names
const (
	LogFieldArenaID   = "arena_id"
	LogFieldWinnerID  = "winner_id"
	LogFieldLoserID   = "loser_id"
	LogFieldReason    = "reason"
	LogFieldMessageID = "message_id"
	LogFieldAddr      = "addr"
)
