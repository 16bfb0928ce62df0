package line

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"

	"icook-chatbot/internal/model"
	"icook-chatbot/internal/reply"
	"icook-chatbot/internal/router"
	pkgLine "icook-chatbot/pkg/line"
	pkgLog "icook-chatbot/pkg/log"
	pkgResponse "icook-chatbot/pkg/response"
)

type handler struct {
	l             pkgLog.Logger
	uc            reply.UseCase
	router        router.Router
	replier       Replier
	channelSecret string
}

// HandleWebhook is the Gin handler for incoming LINE webhook batches.
// Events are processed concurrently and in isolation: the response always
// carries one result per event, and a failed event never changes the batch
// status or a sibling's result.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	cb, err := webhook.ParseRequest(h.channelSecret, c.Request)
	if err != nil {
		if errors.Is(err, webhook.ErrInvalidSignature) {
			h.l.Warnf(ctx, "line handler: signature verification failed")
			pkgResponse.Unauthorized(c)
			return
		}
		h.l.Errorf(ctx, "line handler: failed to parse webhook body: %v", err)
		pkgResponse.BadRequest(c, err)
		return
	}

	results := make([]reply.EventResult, len(cb.Events))
	var wg sync.WaitGroup
	for i, ev := range cb.Events {
		wg.Add(1)
		go func(i int, ev webhook.EventInterface) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					h.l.Errorf(ctx, "line handler: event %d panicked: %v", i, r)
					results[i] = reply.EventResult{
						Status: reply.StatusFailed,
						Error:  fmt.Sprintf("panic: %v", r),
					}
				}
			}()
			results[i] = h.handleEvent(ctx, ev)
		}(i, ev)
	}
	wg.Wait()

	pkgResponse.OK(c, results)
}

// handleEvent runs one event through classify, compose and reply.
func (h *handler) handleEvent(ctx context.Context, src webhook.EventInterface) reply.EventResult {
	ev := normalizeEvent(src)
	intent := h.router.Classify(ev)
	res := reply.EventResult{Intent: intent}

	sc := model.Scope{UserID: ev.UserID, ReplyToken: ev.ReplyToken}
	msgs, err := h.uc.Compose(ctx, sc, intent, ev)
	if err != nil {
		h.l.Errorf(ctx, "line handler: compose failed for intent %s: %v", intent, err)
		res.Status = reply.StatusFailed
		res.Error = err.Error()
		return res
	}
	if len(msgs) == 0 || ev.ReplyToken == "" {
		res.Status = reply.StatusIgnored
		return res
	}

	if len(msgs) > pkgLine.MaxMessagesPerReply {
		h.l.Warnf(ctx, "line handler: truncating %d messages to the per-reply limit", len(msgs))
		msgs = msgs[:pkgLine.MaxMessagesPerReply]
	}

	if err := h.replier.Reply(ctx, ev.ReplyToken, msgs); err != nil {
		h.l.Errorf(ctx, "line handler: reply failed for intent %s: %v", intent, err)
		res.Status = reply.StatusFailed
		res.Error = err.Error()
		return res
	}

	res.Status = reply.StatusReplied
	return res
}

// normalizeEvent maps a platform webhook event onto the internal event model.
// Non-text messages and unrecognized event types come out as EventKindUnknown
// and are dropped by classification.
func normalizeEvent(src webhook.EventInterface) model.Event {
	ev := model.Event{Kind: model.EventKindUnknown, ReceivedAt: time.Now()}

	switch e := src.(type) {
	case webhook.MessageEvent:
		ev.ReplyToken = e.ReplyToken
		ev.UserID = userIDOf(e.Source)
		if text, ok := e.Message.(webhook.TextMessageContent); ok {
			ev.Kind = model.EventKindMessage
			ev.Payload = text.Text
		}
	case webhook.FollowEvent:
		ev.Kind = model.EventKindFollow
		ev.ReplyToken = e.ReplyToken
		ev.UserID = userIDOf(e.Source)
	case webhook.PostbackEvent:
		ev.Kind = model.EventKindPostback
		ev.ReplyToken = e.ReplyToken
		ev.UserID = userIDOf(e.Source)
		if e.Postback != nil {
			ev.Payload = e.Postback.Data
		}
	}
	return ev
}

func userIDOf(src webhook.SourceInterface) string {
	if u, ok := src.(webhook.UserSource); ok {
		return u.UserId
	}
	return ""
}
