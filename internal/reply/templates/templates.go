// Package templates holds the static reply messages. The Store is built once
// at process start and shared read-only by every composer.
package templates

import (
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
)

// Store is the immutable set of static messages.
type Store struct {
	// Follow greets a user who just added the bot.
	Follow messaging_api.MessageInterface
	// GenericReply is the catch-all reply used by the fallback path.
	GenericReply messaging_api.MessageInterface
	// NoOrders tells the user the order lookup found nothing.
	NoOrders messaging_api.MessageInterface
	// SearchPrompt asks the user to type a search keyword.
	SearchPrompt messaging_api.MessageInterface
	// RecipeIntro introduces a keyword-search result carousel.
	RecipeIntro messaging_api.MessageInterface
	// News is the latest-news message of the tea-field deployment.
	News messaging_api.MessageInterface
}

// New builds the template store.
func New() *Store {
	return &Store{
		Follow: messaging_api.TextMessage{
			Text: "🎉歡迎加入愛料理小幫手！\n🔍輸入食譜關鍵字就能搜尋食譜\n📋輸入【推薦菜單】看當季食材料理\n🛒輸入【查詢訂單】查愛料理市集訂單進度",
		},
		GenericReply: messaging_api.TextMessage{
			Text: "抱歉，這次沒有找到符合的食譜😢推薦您下方【熱門食譜】以及【當季食材料理】！",
		},
		NoOrders: messaging_api.TextMessage{
			Text: "查無訂單資訊🙏請確認留言的電話號碼與訂購時填寫的相同（範例：0912345678），謝謝您！",
		},
		SearchPrompt: messaging_api.TextMessage{
			Text: "🔍請輸入想搜尋的食譜關鍵字（例如：滷肉飯），將為您呈現搜尋結果！",
		},
		RecipeIntro: messaging_api.TextMessage{
			Text: "✨為您呈現搜尋的食譜，點選圖片即可查看食材與步驟！",
		},
		News: messaging_api.TextMessage{
			Text: "📰最新消息：春茶採收季開跑！歡迎輸入【茶園狀態】查看目前茶園環境數據🍃",
		},
	}
}
