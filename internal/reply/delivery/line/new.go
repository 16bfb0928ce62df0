package line

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

	"icook-chatbot/internal/reply"
	"icook-chatbot/internal/router"
	pkgLog "icook-chatbot/pkg/log"
)

// Handler is the interface for the LINE delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Replier sends composed messages back on a reply token. Use interface for
// better testability.
type Replier interface {
	Reply(ctx context.Context, replyToken string, messages []messaging_api.MessageInterface) error
}

// New creates a new LINE delivery handler.
func New(
	l pkgLog.Logger,
	uc reply.UseCase,
	rt router.Router,
	replier Replier,
	channelSecret string,
) Handler {
	return &handler{
		l:             l,
		uc:            uc,
		router:        rt,
		replier:       replier,
		channelSecret: channelSecret,
	}
}
