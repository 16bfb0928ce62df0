package router

import (
	"icook-chatbot/internal/model"
)

// Router is the interface for event classification.
type Router interface {
	Classify(ev model.Event) Intent
}

// KeywordRouter classifies events with exact keyword matches and one phone
// pattern. Classification is pure: no I/O, deterministic for a given event.
type KeywordRouter struct {
	features Features
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter for the given deployment features.
func New(features Features) *KeywordRouter {
	return &KeywordRouter{features: features}
}
