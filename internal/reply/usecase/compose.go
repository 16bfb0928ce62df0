package usecase

import (
	"context"
	"fmt"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

	"icook-chatbot/internal/model"
	"icook-chatbot/internal/reply"
	"icook-chatbot/internal/router"
)

// Compose builds the reply messages for one classified event.
func (uc *implUseCase) Compose(ctx context.Context, sc model.Scope, intent router.Intent, ev model.Event) ([]messaging_api.MessageInterface, error) {
	if intent == router.IntentNone {
		return nil, nil
	}

	fn, ok := uc.registry[intent]
	if !ok {
		return nil, fmt.Errorf("%w: %s", reply.ErrUnsupportedIntent, intent)
	}
	return fn(ctx, sc, ev)
}

// composeGreeting replies with the static follow template.
func (uc *implUseCase) composeGreeting(ctx context.Context, sc model.Scope, ev model.Event) ([]messaging_api.MessageInterface, error) {
	return []messaging_api.MessageInterface{uc.templates.Follow}, nil
}

// composeSearchPrompt replies with the static search prompt.
func (uc *implUseCase) composeSearchPrompt(ctx context.Context, sc model.Scope, ev model.Event) ([]messaging_api.MessageInterface, error) {
	return []messaging_api.MessageInterface{uc.templates.SearchPrompt}, nil
}

// composeFallback replies with the generic template plus the recommendation
// carousel. The carousel is best-effort: a failed feed fetch still leaves the
// user with the generic reply.
func (uc *implUseCase) composeFallback(ctx context.Context, sc model.Scope, ev model.Event) ([]messaging_api.MessageInterface, error) {
	msgs := []messaging_api.MessageInterface{uc.templates.GenericReply}

	carousel, err := uc.recommendationCarousel(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "fallback: recommendation carousel unavailable: %v", err)
		return msgs, nil
	}
	return append(msgs, carousel), nil
}
