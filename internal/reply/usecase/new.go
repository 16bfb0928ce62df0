package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

	"icook-chatbot/internal/model"
	"icook-chatbot/internal/reply"
	"icook-chatbot/internal/reply/templates"
	"icook-chatbot/internal/router"
	pkgLog "icook-chatbot/pkg/log"
)

// composeFunc builds the reply messages for one intent.
type composeFunc func(ctx context.Context, sc model.Scope, ev model.Event) ([]messaging_api.MessageInterface, error)

type implUseCase struct {
	l         pkgLog.Logger
	recipes   reply.RecipeSource
	orders    reply.OrderSource
	sensors   reply.SensorSource
	profiles  reply.ProfileSource
	templates *templates.Store

	// registry maps each enabled intent to its composer; variant intents are
	// only registered for deployments that enable them.
	registry map[router.Intent]composeFunc

	keywordCache *expirable.LRU[string, []messaging_api.QuickReplyItem]
}

// New creates a new reply UseCase instance.
func New(
	l pkgLog.Logger,
	recipes reply.RecipeSource,
	orders reply.OrderSource,
	sensors reply.SensorSource,
	profiles reply.ProfileSource,
	tpl *templates.Store,
	features router.Features,
	keywordTTL time.Duration,
) *implUseCase {
	if keywordTTL <= 0 {
		keywordTTL = 10 * time.Minute
	}

	uc := &implUseCase{
		l:            l,
		recipes:      recipes,
		orders:       orders,
		sensors:      sensors,
		profiles:     profiles,
		templates:    tpl,
		keywordCache: expirable.NewLRU[string, []messaging_api.QuickReplyItem](4, nil, keywordTTL),
	}

	uc.registry = map[router.Intent]composeFunc{
		router.IntentGreeting:               uc.composeGreeting,
		router.IntentShowRecommendations:    uc.composeRecommendations,
		router.IntentQueryOrderInstructions: uc.composeOrderInstructions,
		router.IntentLookupOrderByPhone:     uc.composeOrderLookup,
		router.IntentSearchRecipeByKeyword:  uc.composeSearch,
		router.IntentShowRecipeDetail:       uc.composeRecipeDetail,
		router.IntentShowSearchPrompt:       uc.composeSearchPrompt,
		router.IntentFallback:               uc.composeFallback,
	}
	if features.News {
		uc.registry[router.IntentShowLatestNews] = uc.composeLatestNews
	}
	if features.Sensor {
		uc.registry[router.IntentShowSensorStatus] = uc.composeSensorStatus
	}

	return uc
}
