package model

// Scope carries the request-scoped user context derived from one webhook event.
type Scope struct {
	UserID     string // LINE user ID of the event source
	ReplyToken string // single-use reply handle issued per event
}
