package usecase

import (
	"context"
	"fmt"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"golang.org/x/sync/errgroup"

	"icook-chatbot/internal/model"
)

// composeRecommendations replies with a personalized greeting and the
// seasonal-ingredient carousel. The profile lookup and the feed fetch are
// independent and run concurrently.
func (uc *implUseCase) composeRecommendations(ctx context.Context, sc model.Scope, ev model.Event) ([]messaging_api.MessageInterface, error) {
	var (
		name     string
		carousel messaging_api.MessageInterface
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		name = uc.displayName(gctx, sc.UserID)
		return nil
	})
	g.Go(func() error {
		m, err := uc.recommendationCarousel(gctx)
		if err != nil {
			return err
		}
		carousel = m
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return []messaging_api.MessageInterface{
		recommendTextMessage(name),
		carousel,
	}, nil
}

// displayName resolves the user's display name; a failed profile lookup
// degrades to a nameless salutation rather than failing the reply.
func (uc *implUseCase) displayName(ctx context.Context, userID string) string {
	name, err := uc.profiles.DisplayName(ctx, userID)
	if err != nil {
		uc.l.Warnf(ctx, "profile lookup failed for %s: %v", userID, err)
		return ""
	}
	return name
}

func recommendTextMessage(name string) messaging_api.TextMessage {
	return messaging_api.TextMessage{
		Text: fmt.Sprintf("嗨～%s😀🔍請輸入想搜尋的食譜，也推薦您下方【熱門食譜】以及【當季食材料理】！", name),
	}
}

// recommendationCarousel renders the seasonal-ingredient feed as an image
// carousel with a trailing "see more" column.
func (uc *implUseCase) recommendationCarousel(ctx context.Context) (messaging_api.MessageInterface, error) {
	story, err := uc.recipes.Seasonal(ctx)
	if err != nil {
		return nil, fmt.Errorf("seasonal feed unavailable: %w", err)
	}

	items := story.Items
	if len(items) > maxCarouselItems {
		items = items[:maxCarouselItems]
	}

	columns := make([]messaging_api.ImageCarouselColumn, 0, len(items)+1)
	for _, item := range items {
		columns = append(columns, messaging_api.ImageCarouselColumn{
			ImageUrl: item.CoverURL,
			Action: messaging_api.MessageAction{
				Label: item.Title,
				Text:  item.Title,
			},
		})
	}
	columns = append(columns, messaging_api.ImageCarouselColumn{
		ImageUrl: seeMoreImageURL,
		Action: messaging_api.UriAction{
			Label: "看更多",
			Uri:   externalURL(story.Link),
		},
	})

	return messaging_api.TemplateMessage{
		AltText:    "🌽🌿將為您呈現「當季食材料理」。",
		QuickReply: uc.keywordQuickReply(ctx),
		Template: messaging_api.ImageCarouselTemplate{
			Columns: columns,
		},
	}, nil
}
