package reply

import (
	"context"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

	"icook-chatbot/internal/model"
	"icook-chatbot/internal/router"
	"icook-chatbot/pkg/icook"
	"icook-chatbot/pkg/market"
	"icook-chatbot/pkg/sensor"
)

// UseCase composes the outbound messages for one classified event.
type UseCase interface {
	// Compose builds zero or more reply messages for the given intent.
	// A nil message slice with a nil error means the event needs no reply.
	Compose(ctx context.Context, sc model.Scope, intent router.Intent, ev model.Event) ([]messaging_api.MessageInterface, error)
}

// RecipeSource supplies data from the recipe catalog.
type RecipeSource interface {
	HotKeywords(ctx context.Context) ([]string, error)
	Search(ctx context.Context, keyword string) (*icook.SearchResult, error)
	Seasonal(ctx context.Context) (*icook.SeasonalStory, error)
	Recipe(ctx context.Context, id string) (*icook.RecipeDetail, error)
}

// OrderSource supplies market order lookups.
type OrderSource interface {
	Orders(ctx context.Context, phone, lineUserID string) (*market.OrdersResponse, error)
}

// SensorSource supplies tea-field telemetry snapshots.
type SensorSource interface {
	Snapshots(ctx context.Context) ([]sensor.Snapshot, error)
}

// ProfileSource supplies the display name of a platform user.
type ProfileSource interface {
	DisplayName(ctx context.Context, userID string) (string, error)
}
