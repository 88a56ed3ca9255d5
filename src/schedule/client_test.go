package schedule

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, "test-key", zap.NewNop().Sugar())
}

func TestClient_SearchSchedule(t *testing.T) {
	mockJSON := `{
		"segments": [
			{
				"departure": "2025-01-14T22:30:00+03:00",
				"arrival": "2025-01-15T06:05:00+03:00",
				"duration": 27300,
				"thread": {
					"uid": "732YA_2_2",
					"number": "732А",
					"title": "Москва — Санкт-Петербург",
					"transport_type": "train",
					"carrier": {"code": 129, "title": "РЖД"}
				}
			}
		],
		"pagination": {"total": 1, "limit": 100, "offset": 0}
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-apikey") != "test-key" {
			t.Errorf("expected x-apikey header to be set, got %q", r.Header.Get("x-apikey"))
		}
		q := r.URL.Query()
		if q.Get("from") != "s2000005" {
			t.Errorf("expected 'from' parameter s2000005, got %s", q.Get("from"))
		}
		if q.Get("to") != "s9602494" {
			t.Errorf("expected 'to' parameter s9602494, got %s", q.Get("to"))
		}
		if q.Get("transport_types") != "train,suburban" {
			t.Errorf("expected transport_types train,suburban, got %s", q.Get("transport_types"))
		}
		if q.Get("limit") != "100" {
			t.Errorf("expected limit 100, got %s", q.Get("limit"))
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockJSON))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	segments, err := client.SearchSchedule(context.Background(), SearchRequest{
		From:           "s2000005",
		To:             "s9602494",
		Date:           "2025-01-14",
		TransportTypes: []string{"train", "suburban"},
		Limit:          100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].Thread.UID != "732YA_2_2" {
		t.Errorf("expected thread uid 732YA_2_2, got %s", segments[0].Thread.UID)
	}
	if segments[0].Duration != 27300 {
		t.Errorf("expected duration 27300, got %v", segments[0].Duration)
	}
}

func TestClient_SearchSchedule_MissingCodes(t *testing.T) {
	client := newTestClient("http://unused")

	_, err := client.SearchSchedule(context.Background(), SearchRequest{From: "", To: "s1"})
	if !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"bad request", http.StatusBadRequest, func(err error) bool { return errors.Is(err, ErrBadRequest) }},
		{"unauthorized", http.StatusUnauthorized, func(err error) bool { return errors.Is(err, ErrUnauthorized) }},
		{"forbidden", http.StatusForbidden, func(err error) bool { return errors.Is(err, ErrUnauthorized) }},
		{"not found", http.StatusNotFound, func(err error) bool { return errors.Is(err, ErrNotFound) }},
		{"server error", http.StatusInternalServerError, func(err error) bool {
			var serverErr *ServerError
			return errors.As(err, &serverErr) && serverErr.Code == http.StatusInternalServerError
		}},
		{"unknown status", http.StatusTeapot, func(err error) bool {
			var unknownErr *UnknownStatusError
			return errors.As(err, &unknownErr) && unknownErr.Code == http.StatusTeapot
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			_, err := client.SearchSchedule(context.Background(), SearchRequest{From: "s1", To: "s2"})
			if err == nil {
				t.Fatalf("expected an error for status %d", tt.status)
			}
			if !tt.check(err) {
				t.Errorf("status %d mapped to unexpected error: %v", tt.status, err)
			}
		})
	}
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"segments": [], "pagination": {"total": 0, "limit": 100, "offset": 0}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	segments, err := client.SearchSchedule(context.Background(), SearchRequest{From: "s1", To: "s2"})
	if err != nil {
		t.Fatalf("expected retry to succeed on 3rd attempt, got error: %v", err)
	}
	if len(segments) != 0 {
		t.Errorf("expected empty segment list, got %d", len(segments))
	}
	if attempts != 3 {
		t.Errorf("expected exactly 3 attempts, got %d", attempts)
	}
}

func TestClient_NoRetryOnPermanentStatus(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.SearchSchedule(context.Background(), SearchRequest{From: "s1", To: "s2"})
	if !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected exactly 1 attempt, got %d", attempts)
	}
}

func TestClient_DecodingFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.SearchSchedule(context.Background(), SearchRequest{From: "s1", To: "s2"})
	if !errors.Is(err, ErrDecoding) {
		t.Fatalf("expected ErrDecoding, got %v", err)
	}
}

func TestClient_NetworkFailureIsConnectivity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	client := newTestClient(server.URL)

	_, err := client.SearchSchedule(context.Background(), SearchRequest{From: "s1", To: "s2"})
	if err == nil {
		t.Fatal("expected an error from a closed server")
	}
	if !IsConnectivity(err) {
		t.Errorf("expected a connectivity-class error, got %v", err)
	}
}

func TestClient_FetchCarrier(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("code") != "129" {
			t.Errorf("expected code parameter 129, got %s", r.URL.Query().Get("code"))
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"carriers": [{"code": 129, "title": "РЖД", "phone": "+7 800 775-00-00"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	details, err := client.FetchCarrier(context.Background(), "129")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.Title != "РЖД" {
		t.Errorf("expected title РЖД, got %s", details.Title)
	}
}

func TestClient_FetchCarrier_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"carriers": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchCarrier(context.Background(), "999")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
