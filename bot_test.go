package telexide

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rmrfus/telexide/api"
	"github.com/rmrfus/telexide/model"
)

// fakeBotAPI answers getMe and serves a single-message getUpdates batch
// once, then empty batches.
func fakeBotAPI(t *testing.T) *httptest.Server {
	t.Helper()

	var delivered atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			_, _ = w.Write([]byte(`{"ok":true,"result":{"id":12345,"is_bot":true,"first_name":"testbot","username":"testbot"}}`))
		case strings.HasSuffix(r.URL.Path, "/getUpdates"):
			if delivered.CompareAndSwap(false, true) {
				_, _ = w.Write([]byte(`{"ok":true,"result":[{"update_id":1,"message":{"message_id":1,"date":1,"chat":{"id":5,"type":"private"},"text":"ping"}}]}`))
				return
			}
			time.Sleep(10 * time.Millisecond)
			_, _ = w.Write([]byte(`{"ok":true,"result":[]}`))
		default:
			t.Errorf("unexpected API call: %s", r.URL.Path)
			_, _ = w.Write([]byte(`{"ok":false,"error_code":404,"description":"Not Found"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{Token: "bad token"}); err == nil {
		t.Error("New = nil, want validation error")
	}
}

func TestBotPollingLifecycle(t *testing.T) {
	t.Parallel()

	srv := fakeBotAPI(t)

	b, err := New(Config{
		Token:          "12345:abc",
		APIURL:         srv.URL,
		PollingTimeout: 1,
	}, WithLogger(discardLogger()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	received := make(chan model.Message, 1)
	b.OnMessage(func(ctx *Context, msg model.Message) error {
		if ctx.API == nil || ctx.Data == nil {
			t.Error("handler context missing API or Data")
		}
		if len(ctx.Raw) == 0 {
			t.Error("handler context missing raw payload")
		}
		received <- msg
		return nil
	})

	ctx := t.Context()
	if err := b.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := b.Start(ctx); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start = %v, want ErrAlreadyStarted", err)
	}

	if self := b.Self(); self == nil || self.Username != "testbot" {
		t.Errorf("Self() = %+v, want testbot", self)
	}

	select {
	case msg := <-received:
		if msg.Text != "ping" {
			t.Errorf("message text = %q, want ping", msg.Text)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("message handler never invoked")
	}

	if err := b.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := b.Stop(ctx); !errors.Is(err, ErrNotStarted) {
		t.Errorf("second Stop = %v, want ErrNotStarted", err)
	}
}

func TestBotStopBeforeStart(t *testing.T) {
	t.Parallel()

	b, err := New(Config{Token: "12345:abc"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := b.Stop(t.Context()); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Stop = %v, want ErrNotStarted", err)
	}
}

func TestBotDispatchWithoutDecodedUpdate(t *testing.T) {
	t.Parallel()

	b, err := New(Config{Token: "12345:abc"}, WithLogger(discardLogger()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var raws atomic.Int32
	b.SubscribeRaw(func(_ *Context, raw api.RawUpdate) error {
		if len(raw) == 0 {
			t.Error("raw subscriber got empty payload")
		}
		raws.Add(1)
		return nil
	})

	raw := api.RawUpdate(`{"update_id":"oops"}`)
	b.dispatchUpdate(t.Context(), raw, nil)

	if got := raws.Load(); got != 1 {
		t.Errorf("raw subscriber invoked %d times, want 1", got)
	}
}

func TestBotRawSubscriberSeesPayload(t *testing.T) {
	t.Parallel()

	srv := fakeBotAPI(t)

	b, err := New(Config{
		Token:          "12345:abc",
		APIURL:         srv.URL,
		PollingTimeout: 1,
	}, WithLogger(discardLogger()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	raws := make(chan api.RawUpdate, 1)
	b.SubscribeRaw(func(_ *Context, raw api.RawUpdate) error {
		raws <- raw
		return nil
	})

	ctx := t.Context()
	if err := b.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer func() { _ = b.Stop(ctx) }()

	select {
	case raw := <-raws:
		var u model.Update
		if err := json.Unmarshal(raw, &u); err != nil {
			t.Fatalf("raw payload not decodable: %v", err)
		}
		if u.UpdateID != 1 {
			t.Errorf("UpdateID = %d, want 1", u.UpdateID)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("raw subscriber never invoked")
	}
}
