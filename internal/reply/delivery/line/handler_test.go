package line_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

	delivery "icook-chatbot/internal/reply/delivery/line"

	"icook-chatbot/internal/model"
	"icook-chatbot/internal/reply"
	"icook-chatbot/internal/router"
)

const testChannelSecret = "test-channel-secret"

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockUseCase struct {
	composeFunc func(intent router.Intent, ev model.Event) ([]messaging_api.MessageInterface, error)
}

func (m *mockUseCase) Compose(ctx context.Context, sc model.Scope, intent router.Intent, ev model.Event) ([]messaging_api.MessageInterface, error) {
	if m.composeFunc == nil {
		if intent == router.IntentNone {
			return nil, nil
		}
		return []messaging_api.MessageInterface{messaging_api.TextMessage{Text: "ok"}}, nil
	}
	return m.composeFunc(intent, ev)
}

type mockReplier struct {
	mu    sync.Mutex
	calls []replyCall
	fail  bool
}

type replyCall struct {
	replyToken string
	messages   []messaging_api.MessageInterface
}

func (m *mockReplier) Reply(ctx context.Context, replyToken string, messages []messaging_api.MessageInterface) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("platform rejected reply")
	}
	m.calls = append(m.calls, replyCall{replyToken: replyToken, messages: messages})
	return nil
}

type webhookResp struct {
	Status  string              `json:"status"`
	Results []reply.EventResult `json:"results"`
}

func newEngine(uc reply.UseCase, replier delivery.Replier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := delivery.New(&mockLogger{}, uc, router.New(router.Features{}), replier, testChannelSecret)
	engine.POST("/webhook", h.HandleWebhook)
	return engine
}

func sign(body string) string {
	mac := hmac.New(sha256.New, []byte(testChannelSecret))
	mac.Write([]byte(body))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func postWebhook(engine *gin.Engine, body, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-line-signature", signature)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func textEventJSON(replyToken, text string) string {
	return `{"type":"message","mode":"active","timestamp":1700000000000,"replyToken":"` + replyToken + `","source":{"type":"user","userId":"U123"},"message":{"type":"text","id":"m1","text":"` + text + `"}}`
}

func batchBody(events ...string) string {
	return `{"destination":"Udest","events":[` + strings.Join(events, ",") + `]}`
}

func decodeResp(t *testing.T, w *httptest.ResponseRecorder) webhookResp {
	t.Helper()
	var resp webhookResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestHandleWebhook(t *testing.T) {
	t.Run("rejects invalid signature", func(t *testing.T) {
		replier := &mockReplier{}
		engine := newEngine(&mockUseCase{}, replier)

		w := postWebhook(engine, batchBody(textEventJSON("rt-1", "hello")), "not-a-signature")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
		if len(replier.calls) != 0 {
			t.Error("no reply should be sent for a rejected request")
		}
	})

	t.Run("classifies and replies to a message event", func(t *testing.T) {
		uc := &mockUseCase{composeFunc: func(intent router.Intent, ev model.Event) ([]messaging_api.MessageInterface, error) {
			if intent != router.IntentQueryOrderInstructions {
				t.Errorf("unexpected intent %s", intent)
			}
			if ev.UserID != "U123" {
				t.Errorf("unexpected user id %q", ev.UserID)
			}
			return []messaging_api.MessageInterface{messaging_api.TextMessage{Text: "ok"}}, nil
		}}
		replier := &mockReplier{}
		engine := newEngine(uc, replier)

		body := batchBody(textEventJSON("rt-1", "查詢訂單"))
		w := postWebhook(engine, body, sign(body))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		resp := decodeResp(t, w)
		if resp.Status != "success" {
			t.Errorf("batch status: got %q", resp.Status)
		}
		if len(resp.Results) != 1 || resp.Results[0].Status != reply.StatusReplied {
			t.Errorf("unexpected results: %+v", resp.Results)
		}
		if len(replier.calls) != 1 || replier.calls[0].replyToken != "rt-1" {
			t.Errorf("unexpected reply calls: %+v", replier.calls)
		}
	})

	t.Run("one failed event never flips the batch", func(t *testing.T) {
		uc := &mockUseCase{composeFunc: func(intent router.Intent, ev model.Event) ([]messaging_api.MessageInterface, error) {
			if ev.Payload == "壞掉" {
				return nil, errors.New("upstream exploded")
			}
			return []messaging_api.MessageInterface{messaging_api.TextMessage{Text: "ok"}}, nil
		}}
		replier := &mockReplier{}
		engine := newEngine(uc, replier)

		body := batchBody(textEventJSON("rt-1", "滷肉飯"), textEventJSON("rt-2", "壞掉"))
		w := postWebhook(engine, body, sign(body))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		resp := decodeResp(t, w)
		if resp.Status != "success" {
			t.Errorf("batch status must stay success, got %q", resp.Status)
		}
		if len(resp.Results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(resp.Results))
		}
		if resp.Results[0].Status != reply.StatusReplied {
			t.Errorf("first event: got %s", resp.Results[0].Status)
		}
		if resp.Results[1].Status != reply.StatusFailed || resp.Results[1].Error == "" {
			t.Errorf("second event: got %+v", resp.Results[1])
		}
	})

	t.Run("non-text messages are ignored", func(t *testing.T) {
		replier := &mockReplier{}
		engine := newEngine(&mockUseCase{}, replier)

		sticker := `{"type":"message","mode":"active","timestamp":1700000000000,"replyToken":"rt-1","source":{"type":"user","userId":"U123"},"message":{"type":"sticker","id":"m2","packageId":"1","stickerId":"2"}}`
		body := batchBody(sticker)
		w := postWebhook(engine, body, sign(body))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		resp := decodeResp(t, w)
		if len(resp.Results) != 1 || resp.Results[0].Status != reply.StatusIgnored {
			t.Errorf("unexpected results: %+v", resp.Results)
		}
		if len(replier.calls) != 0 {
			t.Error("ignored events must not trigger a reply")
		}
	})

	t.Run("follow event greets the user", func(t *testing.T) {
		uc := &mockUseCase{composeFunc: func(intent router.Intent, ev model.Event) ([]messaging_api.MessageInterface, error) {
			if intent != router.IntentGreeting {
				t.Errorf("unexpected intent %s", intent)
			}
			return []messaging_api.MessageInterface{messaging_api.TextMessage{Text: "welcome"}}, nil
		}}
		replier := &mockReplier{}
		engine := newEngine(uc, replier)

		follow := `{"type":"follow","mode":"active","timestamp":1700000000000,"replyToken":"rt-f","source":{"type":"user","userId":"U123"}}`
		body := batchBody(follow)
		w := postWebhook(engine, body, sign(body))

		resp := decodeResp(t, w)
		if len(resp.Results) != 1 || resp.Results[0].Status != reply.StatusReplied {
			t.Errorf("unexpected results: %+v", resp.Results)
		}
	})

	t.Run("postback data reaches the composer", func(t *testing.T) {
		uc := &mockUseCase{composeFunc: func(intent router.Intent, ev model.Event) ([]messaging_api.MessageInterface, error) {
			if intent != router.IntentShowRecipeDetail || ev.Payload != "443325" {
				t.Errorf("got intent %s payload %q", intent, ev.Payload)
			}
			return []messaging_api.MessageInterface{messaging_api.TextMessage{Text: "detail"}}, nil
		}}
		replier := &mockReplier{}
		engine := newEngine(uc, replier)

		postback := `{"type":"postback","mode":"active","timestamp":1700000000000,"replyToken":"rt-p","source":{"type":"user","userId":"U123"},"postback":{"data":"443325"}}`
		body := batchBody(postback)
		w := postWebhook(engine, body, sign(body))

		resp := decodeResp(t, w)
		if len(resp.Results) != 1 || resp.Results[0].Status != reply.StatusReplied {
			t.Errorf("unexpected results: %+v", resp.Results)
		}
	})

	t.Run("replies are capped at five messages", func(t *testing.T) {
		uc := &mockUseCase{composeFunc: func(intent router.Intent, ev model.Event) ([]messaging_api.MessageInterface, error) {
			var msgs []messaging_api.MessageInterface
			for i := 0; i < 7; i++ {
				msgs = append(msgs, messaging_api.TextMessage{Text: "m"})
			}
			return msgs, nil
		}}
		replier := &mockReplier{}
		engine := newEngine(uc, replier)

		body := batchBody(textEventJSON("rt-1", "滷肉飯"))
		postWebhook(engine, body, sign(body))

		if len(replier.calls) != 1 || len(replier.calls[0].messages) != 5 {
			t.Fatalf("unexpected reply calls: %+v", replier.calls)
		}
	})

	t.Run("reply failure marks only the event", func(t *testing.T) {
		replier := &mockReplier{fail: true}
		engine := newEngine(&mockUseCase{}, replier)

		body := batchBody(textEventJSON("rt-1", "滷肉飯"))
		w := postWebhook(engine, body, sign(body))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		resp := decodeResp(t, w)
		if resp.Status != "success" {
			t.Errorf("batch status must stay success, got %q", resp.Status)
		}
		if resp.Results[0].Status != reply.StatusFailed {
			t.Errorf("got %s", resp.Results[0].Status)
		}
	})

	t.Run("empty batch yields empty results", func(t *testing.T) {
		engine := newEngine(&mockUseCase{}, &mockReplier{})

		body := batchBody()
		w := postWebhook(engine, body, sign(body))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		resp := decodeResp(t, w)
		if resp.Status != "success" || len(resp.Results) != 0 {
			t.Errorf("unexpected response: %+v", resp)
		}
	})
}
