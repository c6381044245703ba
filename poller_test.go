package telexide

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rmrfus/telexide/api"
	"github.com/rmrfus/telexide/internal/offsetstore"
	"github.com/rmrfus/telexide/model"
)

// pollServer serves getUpdates: one batch on the first call, then empty
// responses. It records the offset of every request after the batch was
// delivered.
type pollServer struct {
	batch []byte

	mu          sync.Mutex
	offsetsSeen []int64
	delivered   bool
}

func (s *pollServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req api.GetUpdatesRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		s.mu.Lock()
		first := !s.delivered
		s.delivered = true
		if !first {
			s.offsetsSeen = append(s.offsetsSeen, req.Offset)
		}
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if first {
			_, _ = w.Write(s.batch)
			return
		}
		// Hold the long poll briefly so the loop does not spin.
		time.Sleep(10 * time.Millisecond)
		_, _ = w.Write([]byte(`{"ok":true,"result":[]}`))
	})
}

func (s *pollServer) lastOffset() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.offsetsSeen) == 0 {
		return 0, false
	}
	return s.offsetsSeen[len(s.offsetsSeen)-1], true
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPollerDispatchesBatchAndAdvancesOffset(t *testing.T) {
	t.Parallel()

	ps := &pollServer{
		batch: []byte(`{"ok":true,"result":[
			{"update_id":1,"message":{"message_id":1,"date":1,"chat":{"id":5,"type":"private"},"text":"a"}},
			{"update_id":2,"message":{"message_id":2,"date":2,"chat":{"id":5,"type":"private"},"text":"b"}}
		]}`),
	}
	srv := httptest.NewServer(ps.handler())
	defer srv.Close()

	var dispatched atomic.Int32
	dispatch := func(_ context.Context, _ api.RawUpdate, update *model.Update) {
		if update.Type() != model.UpdateMessage {
			t.Errorf("dispatched type = %q, want message", update.Type())
		}
		dispatched.Add(1)
	}

	client := api.NewClient("12345:abc", srv.URL)
	p := NewPoller(client, dispatch, nil, discardLogger(), Config{})
	p.Start()

	deadline := time.After(5 * time.Second)
	for {
		if offset, ok := ps.lastOffset(); ok && offset == 3 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("poller never advanced to offset 3")
		case <-time.After(5 * time.Millisecond):
		}
	}

	p.Stop()

	// After Stop all in-flight dispatches have finished.
	if got := dispatched.Load(); got != 2 {
		t.Errorf("dispatched %d updates, want 2", got)
	}
}

func TestPollerConfirmsUndecodableUpdate(t *testing.T) {
	t.Parallel()

	// update 1 has a malformed message (date is a string) and fails the
	// full decode; update 2 is well-formed. Both must be confirmed and
	// both must reach raw subscribers.
	ps := &pollServer{
		batch: []byte(`{"ok":true,"result":[
			{"update_id":1,"message":{"message_id":1,"date":"oops","chat":{"id":5,"type":"private"},"text":"a"}},
			{"update_id":2,"message":{"message_id":2,"date":2,"chat":{"id":5,"type":"private"},"text":"b"}}
		]}`),
	}
	srv := httptest.NewServer(ps.handler())
	defer srv.Close()

	var raws atomic.Int32
	var decoded atomic.Int32
	dispatch := func(_ context.Context, raw api.RawUpdate, update *model.Update) {
		if len(raw) == 0 {
			t.Error("dispatched empty raw payload")
		}
		raws.Add(1)
		if update != nil {
			decoded.Add(1)
		}
	}

	client := api.NewClient("12345:abc", srv.URL)
	p := NewPoller(client, dispatch, nil, discardLogger(), Config{})
	p.Start()

	deadline := time.After(5 * time.Second)
	for {
		if offset, ok := ps.lastOffset(); ok && offset == 3 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("poller never confirmed the malformed update")
		case <-time.After(5 * time.Millisecond):
		}
	}

	p.Stop()

	if got := raws.Load(); got != 2 {
		t.Errorf("raw dispatches = %d, want 2", got)
	}
	if got := decoded.Load(); got != 1 {
		t.Errorf("decoded dispatches = %d, want 1", got)
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(10 * time.Millisecond)
		_, _ = w.Write([]byte(`{"ok":true,"result":[]}`))
	}))
	defer srv.Close()

	client := api.NewClient("12345:abc", srv.URL)
	p := NewPoller(client, func(context.Context, api.RawUpdate, *model.Update) {}, nil, discardLogger(), Config{})
	p.Start()

	p.Stop()
	p.Stop()
}

func TestPollerPersistsOffset(t *testing.T) {
	t.Parallel()

	store, err := offsetstore.Open(filepath.Join(t.TempDir(), "offsets.db"))
	if err != nil {
		t.Fatalf("open offset store: %v", err)
	}
	defer store.Close()

	ps := &pollServer{
		batch: []byte(`{"ok":true,"result":[{"update_id":41,"message":{"message_id":1,"date":1,"chat":{"id":5,"type":"private"},"text":"a"}}]}`),
	}
	srv := httptest.NewServer(ps.handler())
	defer srv.Close()

	client := api.NewClient("12345:abc", srv.URL)
	p := NewPoller(client, func(context.Context, api.RawUpdate, *model.Update) {}, store, discardLogger(), Config{})
	p.Start()

	deadline := time.After(5 * time.Second)
	for {
		if offset, ok := ps.lastOffset(); ok && offset == 42 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("poller never advanced past the batch")
		case <-time.After(5 * time.Millisecond):
		}
	}

	p.Stop()

	offset, err := store.Load(t.Context())
	if err != nil {
		t.Fatalf("load offset: %v", err)
	}
	if offset != 42 {
		t.Errorf("persisted offset = %d, want 42", offset)
	}
}
