package reply

import "errors"

// Domain-specific errors for the reply package.
var (
	ErrUnsupportedIntent = errors.New("no composer registered for intent")
	ErrEmptyRecipeID     = errors.New("postback carried no recipe identifier")
)
