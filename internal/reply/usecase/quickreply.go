package usecase

import (
	"context"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

	"icook-chatbot/internal/router"
)

const hotKeywordsCacheKey = "hot_keywords"

// keywordQuickReply returns the shared quick-reply suggestion list: a search
// postback head, up to ten trending keywords, and a "see more" link tail.
// The keyword list changes slowly upstream, so it is cached with a TTL instead
// of being refetched on every message. Returns nil when the list is
// unavailable; quick replies are decoration, not content.
func (uc *implUseCase) keywordQuickReply(ctx context.Context) *messaging_api.QuickReply {
	items, ok := uc.keywordCache.Get(hotKeywordsCacheKey)
	if !ok {
		keywords, err := uc.recipes.HotKeywords(ctx)
		if err != nil {
			uc.l.Warnf(ctx, "keyword quick replies unavailable: %v", err)
			return nil
		}
		items = buildKeywordItems(keywords)
		uc.keywordCache.Add(hotKeywordsCacheKey, items)
	}
	return &messaging_api.QuickReply{Items: items}
}

func buildKeywordItems(keywords []string) []messaging_api.QuickReplyItem {
	if len(keywords) > maxQuickReplyKeywords {
		keywords = keywords[:maxQuickReplyKeywords]
	}

	items := make([]messaging_api.QuickReplyItem, 0, len(keywords)+2)
	items = append(items, messaging_api.QuickReplyItem{
		Action: messaging_api.PostbackAction{
			Data:  router.PostbackSearch,
			Label: "🔍熱搜食譜",
		},
	})
	for _, kw := range keywords {
		items = append(items, messaging_api.QuickReplyItem{
			Action: messaging_api.MessageAction{
				Label: kw,
				Text:  kw,
			},
		})
	}
	items = append(items, messaging_api.QuickReplyItem{
		Action: messaging_api.UriAction{
			Label: "看更多",
			Uri:   popularRecipesURL,
		},
	})
	return items
}
