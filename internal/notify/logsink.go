package notify

import (
	"github.com/cyal-dev3/cyalbot-sub000/internal/constants"
	"github.com/cyal-dev3/cyalbot-sub000/internal/logging"

	"github.com/google/uuid"
)

// LogSink is a NotificationSink that writes messages to the structured log.
// It stands in for the chat transport in local runs and tests the engine's
// fire-and-forget reporting path end to end.
type LogSink struct{}

func NewLogSink() *LogSink { return &LogSink{} }

func (s *LogSink) Send(arenaID string, text string) (string, error) {
	id := uuid.NewString()
	logging.Info("arena message", logging.Fields{
		constants.LogFieldArenaID:   arenaID,
		constants.LogFieldMessageID: id,
		"text":                      text,
	})
	return id, nil
}

func (s *LogSink) React(messageID string, emoji string) error {
	logging.Info("arena reaction", logging.Fields{
		constants.LogFieldMessageID: messageID,
		"emoji":                     emoji,
	})
	return nil
}
