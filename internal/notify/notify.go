// Package notify defines the outbound reporting contract of the dueling
// engine. Sinks report state; they never drive state transitions, and their
// failures are logged and swallowed.
package notify

// NotificationSink delivers duel messages to an arena. Send returns an
// opaque message id that React can later attach an emoji to.
type NotificationSink interface {
	Send(arenaID string, text string) (messageID string, err error)
	React(messageID string, emoji string) error
}
