package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

	"icook-chatbot/internal/model"
	"icook-chatbot/pkg/icook"
)

// composeSearch runs a keyword search over the catalog. A failed fetch
// degrades to the generic fallback; a successful search with zero hits gets a
// distinct "nothing found" message so the user learns the keyword itself was
// the problem.
func (uc *implUseCase) composeSearch(ctx context.Context, sc model.Scope, ev model.Event) ([]messaging_api.MessageInterface, error) {
	result, err := uc.recipes.Search(ctx, ev.Payload)
	if err != nil {
		uc.l.Errorf(ctx, "recipe search failed for %q: %v", ev.Payload, err)
		return uc.composeFallback(ctx, sc, ev)
	}

	if len(result.Recipes) == 0 {
		msgs := []messaging_api.MessageInterface{noResultMessage(ev.Payload)}
		carousel, err := uc.recommendationCarousel(ctx)
		if err != nil {
			uc.l.Warnf(ctx, "search: recommendation carousel unavailable: %v", err)
			return msgs, nil
		}
		return append(msgs, carousel), nil
	}

	return []messaging_api.MessageInterface{
		uc.templates.RecipeIntro,
		uc.searchCarousel(ctx, result),
	}, nil
}

func noResultMessage(keyword string) messaging_api.TextMessage {
	return messaging_api.TextMessage{
		Text: fmt.Sprintf("找不到「%s」相關的食譜😢推薦您下方【熱門食譜】以及【當季食材料理】！", keyword),
	}
}

// searchCarousel renders search hits as recipe thumbnails whose postback
// action carries the recipe identifier for the follow-up detail view.
func (uc *implUseCase) searchCarousel(ctx context.Context, result *icook.SearchResult) messaging_api.MessageInterface {
	recipes := result.Recipes
	if len(recipes) > maxSearchItems {
		recipes = recipes[:maxSearchItems]
	}

	columns := make([]messaging_api.ImageCarouselColumn, 0, len(recipes))
	for _, r := range recipes {
		columns = append(columns, messaging_api.ImageCarouselColumn{
			ImageUrl: r.Cover.URL,
			Action: messaging_api.PostbackAction{
				Label: truncateRunes(r.Name, maxTitleRunes),
				Data:  strconv.FormatInt(r.ID, 10),
			},
		})
	}

	return messaging_api.TemplateMessage{
		AltText:    "✨為您呈現搜尋的食譜",
		QuickReply: uc.keywordQuickReply(ctx),
		Template: messaging_api.ImageCarouselTemplate{
			Columns: columns,
		},
	}
}
