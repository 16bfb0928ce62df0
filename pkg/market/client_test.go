package market_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"icook-chatbot/pkg/market"
)

func TestOrders(t *testing.T) {
	const key = "shared-key"

	t.Run("signs body and decodes orders", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)

			mac := hmac.New(sha1.New, []byte(key))
			mac.Write(body)
			want := "sha1=" + hex.EncodeToString(mac.Sum(nil))
			if got := r.Header.Get("x-hub-signature"); got != want {
				t.Errorf("signature mismatch: got %s want %s", got, want)
			}

			var req map[string]string
			if err := json.Unmarshal(body, &req); err != nil {
				t.Fatalf("unmarshal request: %v", err)
			}
			if req["purchaser_mobile"] != "0912345678" || req["line_user_id"] != "U123" {
				t.Errorf("unexpected request body: %v", req)
			}

			w.Write([]byte(`{"orders":[{"url":"https://market/orders/1","status":"preparing","total":1200,"paid_at":"2024-01-02T10:00:00Z","product":{"name":"麻油","url":"https://market/p/1","cover_url":"https://img/p.jpg"}}]}`))
		}))
		defer srv.Close()

		c := market.NewClient(srv.URL, key, 0)
		resp, err := c.Orders(context.Background(), "0912345678", "U123")
		if err != nil {
			t.Fatalf("Orders error: %v", err)
		}
		if len(resp.Orders) != 1 {
			t.Fatalf("expected 1 order, got %d", len(resp.Orders))
		}
		if resp.Orders[0].Status != "preparing" || resp.Orders[0].Total != 1200 {
			t.Errorf("unexpected order: %+v", resp.Orders[0])
		}
	})

	t.Run("no orders field decodes to nil slice", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		resp, err := market.NewClient(srv.URL, key, 0).Orders(context.Background(), "0912345678", "U123")
		if err != nil {
			t.Fatalf("Orders error: %v", err)
		}
		if resp.Orders != nil {
			t.Errorf("expected nil orders, got %v", resp.Orders)
		}
	})

	t.Run("upstream failure is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		if _, err := market.NewClient(srv.URL, key, 0).Orders(context.Background(), "0912345678", "U123"); err == nil {
			t.Error("expected error, got nil")
		}
	})
}
