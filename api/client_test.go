package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rmrfus/telexide/model"
)

func TestGetMe(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bot12345:abc/getMe" {
			t.Errorf("path = %q, want /bot12345:abc/getMe", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":12345,"is_bot":true,"first_name":"testbot","username":"testbot"}}`))
	}))
	defer srv.Close()

	c := NewClient("12345:abc", srv.URL)
	me, err := c.GetMe(t.Context())
	if err != nil {
		t.Fatalf("GetMe: %v", err)
	}
	if me.ID != 12345 || !me.IsBot || me.Username != "testbot" {
		t.Errorf("GetMe = %+v", me)
	}
}

func TestSendMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bot12345:abc/sendMessage" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}

		var req SendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.ChatID != 42 || req.Text != "hi" {
			t.Errorf("request = %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":1582216107,"chat":{"id":42,"type":"private"},"text":"hi"}}`))
	}))
	defer srv.Close()

	c := NewClient("12345:abc", srv.URL)
	msg, err := c.SendMessage(t.Context(), SendMessageRequest{ChatID: 42, Text: "hi"})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if msg.MessageID != 7 || msg.Text != "hi" {
		t.Errorf("SendMessage = %+v", msg)
	}
}

func TestAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	c := NewClient("12345:abc", srv.URL)
	_, err := c.SendMessage(t.Context(), SendMessageRequest{ChatID: 1, Text: "x"})
	if err == nil {
		t.Fatal("SendMessage = nil error, want API error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if apiErr.Code != 400 {
		t.Errorf("Code = %d, want 400", apiErr.Code)
	}
	if apiErr.Description != "Bad Request: chat not found" {
		t.Errorf("Description = %q", apiErr.Description)
	}
}

func TestTooManyRequestsRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"ok":false,"error_code":429,"description":"Too Many Requests","parameters":{"retry_after":1}}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":12345,"is_bot":true,"first_name":"testbot"}}`))
	}))
	defer srv.Close()

	c := NewClient("12345:abc", srv.URL)
	me, err := c.GetMe(t.Context())
	if err != nil {
		t.Fatalf("GetMe after 429: %v", err)
	}
	if me.ID != 12345 {
		t.Errorf("ID = %d, want 12345", me.ID)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestGetRawUpdates(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req GetUpdatesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Offset != 100 || req.Timeout != 30 {
			t.Errorf("request = %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":[{"update_id":100,"message":{"message_id":1,"date":1,"chat":{"id":1,"type":"private"},"text":"a"}},{"update_id":101,"poll":{"id":"p1","question":"q","options":[],"total_voter_count":0,"is_closed":false,"is_anonymous":true,"type":"regular","allows_multiple_answers":false}}]}`))
	}))
	defer srv.Close()

	c := NewClient("12345:abc", srv.URL)
	raws, err := c.GetRawUpdates(t.Context(), GetUpdatesRequest{Offset: 100, Timeout: 30})
	if err != nil {
		t.Fatalf("GetRawUpdates: %v", err)
	}
	if len(raws) != 2 {
		t.Fatalf("len = %d, want 2", len(raws))
	}

	// Each element must stay a complete, decodable update document.
	var u model.Update
	if err := json.Unmarshal(raws[1], &u); err != nil {
		t.Fatalf("unmarshal raw update: %v", err)
	}
	if u.UpdateID != 101 || u.Type() != model.UpdatePoll {
		t.Errorf("raw update = id %d type %q", u.UpdateID, u.Type())
	}
}

func TestErrorString(t *testing.T) {
	t.Parallel()

	plain := &Error{Code: 400, Description: "Bad Request"}
	if got := plain.Error(); got != "api: 400 Bad Request" {
		t.Errorf("Error() = %q", got)
	}

	throttled := &Error{Code: 429, Description: "Too Many Requests", RetryAfter: 5}
	if got := throttled.Error(); got != "api: 429 Too Many Requests (retry after 5s)" {
		t.Errorf("Error() = %q", got)
	}
}

func TestFileURL(t *testing.T) {
	t.Parallel()

	c := NewClient("12345:abc", "")
	want := "https://api.telegram.org/file/bot12345:abc/photos/file_1.jpg"
	if got := c.FileURL("photos/file_1.jpg"); got != want {
		t.Errorf("FileURL = %q, want %q", got, want)
	}
}
