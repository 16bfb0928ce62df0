package model

import "time"

// EventKind is the inbound webhook event type.
type EventKind string

const (
	EventKindMessage  EventKind = "message"
	EventKindFollow   EventKind = "follow"
	EventKindPostback EventKind = "postback"
	EventKindUnknown  EventKind = "unknown"
)

// Event is one inbound webhook event, normalized from the platform payload.
// Payload holds the message text for message events and the postback data for
// postback events; it is empty for follow events.
type Event struct {
	Kind       EventKind
	UserID     string
	ReplyToken string
	Payload    string
	ReceivedAt time.Time
}
