package sensor_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"icook-chatbot/pkg/sensor"
)

func TestSnapshots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token-1" {
			t.Errorf("unexpected auth header: %s", got)
		}
		fields := r.URL.Query().Get("fields")
		if !strings.Contains(fields, "soil_moisture") || len(strings.Split(fields, ",")) != len(sensor.MetricFields) {
			t.Errorf("unexpected fields param: %s", fields)
		}
		w.Write([]byte(`{"data":[{
			"station":"北區一號",
			"recorded_at":"2024-03-01T06:00:00+08:00",
			"temperature":18.5,"humidity":82,"soil_moisture":41.2,"soil_ph":5.6,
			"illuminance":12000,"co2":415,"wind_speed":2.3,"wind_direction":"NE",
			"rainfall":0,"pressure":1013.2,"battery":87
		}]}`))
	}))
	defer srv.Close()

	snaps, err := sensor.NewClient(srv.URL, "token-1", 0).Snapshots(context.Background())
	if err != nil {
		t.Fatalf("Snapshots error: %v", err)
	}
	if len(snaps) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(snaps))
	}

	rows := snaps[0].Rows()
	if len(rows) != len(sensor.MetricFields) {
		t.Fatalf("expected %d rows, got %d", len(sensor.MetricFields), len(rows))
	}
	// Values pass through verbatim.
	if rows[0].Value != "18.5" {
		t.Errorf("temperature not verbatim: %s", rows[0].Value)
	}
	if rows[7].Value != "NE" {
		t.Errorf("wind direction not verbatim: %s", rows[7].Value)
	}
}

func TestSnapshotsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	if _, err := sensor.NewClient(srv.URL, "bad", 0).Snapshots(context.Background()); err == nil {
		t.Error("expected error, got nil")
	}
}
