package reply

import "icook-chatbot/internal/router"

// EventStatus is the terminal state of one event's processing.
type EventStatus string

const (
	StatusReplied EventStatus = "replied"
	StatusIgnored EventStatus = "ignored"
	StatusFailed  EventStatus = "failed"
)

// EventResult is the per-event outcome reported in the webhook response.
// Events are isolated: one failed event never changes a sibling's result.
type EventResult struct {
	Intent router.Intent `json:"intent"`
	Status EventStatus   `json:"status"`
	Error  string        `json:"error,omitempty"`
}
