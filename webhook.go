package telexide

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rmrfus/telexide/api"
	"github.com/rmrfus/telexide/model"
)

const maxWebhookBody = 1 << 20 // updates are small; cap request bodies

// WebhookServer receives update payloads pushed by the Bot API.
type WebhookServer struct {
	dispatch dispatchFunc
	logger   *slog.Logger
	secret   string
	metrics  http.Handler

	srv *http.Server
}

// NewWebhookServer creates a webhook server listening on addr. secret,
// when non-empty, must match the X-Telegram-Bot-Api-Secret-Token header
// of every request. metricsHandler may be nil to disable /metrics.
func NewWebhookServer(addr string, dispatch dispatchFunc, logger *slog.Logger, secret string, metricsHandler http.Handler) *WebhookServer {
	w := &WebhookServer{
		dispatch: dispatch,
		logger:   logger,
		secret:   secret,
		metrics:  metricsHandler,
	}
	w.srv = &http.Server{
		Addr:              addr,
		Handler:           w.buildRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return w
}

// buildRouter constructs the chi mux with all routes wired.
func (w *WebhookServer) buildRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(rw http.ResponseWriter, _ *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		_, _ = rw.Write([]byte(`{"ok":true}`))
	})

	r.Post("/webhook", w.handleUpdate)

	if w.metrics != nil {
		r.Handle("/metrics", w.metrics)
	}

	return r
}

// handleUpdate validates the secret token header, decodes the update,
// and dispatches it. Handler errors are logged, not surfaced to the
// caller: a non-200 status would make the API re-deliver the update.
func (w *WebhookServer) handleUpdate(rw http.ResponseWriter, r *http.Request) {
	if w.secret != "" {
		token := r.Header.Get("X-Telegram-Bot-Api-Secret-Token")
		if subtle.ConstantTimeCompare([]byte(w.secret), []byte(token)) != 1 {
			http.Error(rw, "invalid secret token", http.StatusUnauthorized)
			return
		}
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		http.Error(rw, "failed to read body", http.StatusBadRequest)
		return
	}

	var update model.Update
	if err := json.Unmarshal(body, &update); err != nil {
		http.Error(rw, "invalid update JSON", http.StatusBadRequest)
		return
	}

	w.dispatch(r.Context(), api.RawUpdate(body), &update)

	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write([]byte(`{"ok":true}`))
}

// Start begins serving in a goroutine.
func (w *WebhookServer) Start() {
	go func() {
		if err := w.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			w.logger.Error("webhook server failed", "error", err)
		}
	}()
}

// Stop gracefully shuts the server down.
func (w *WebhookServer) Stop(ctx context.Context) error {
	return w.srv.Shutdown(ctx)
}
