package telexide

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/rmrfus/telexide/api"
	"github.com/rmrfus/telexide/internal/offsetstore"
	"github.com/rmrfus/telexide/model"
)

// Bot ties the API client, the dispatcher, and an update source
// (long polling or webhook) together.
type Bot struct {
	config     Config
	client     *api.Client
	dispatcher *Dispatcher
	data       *DataStore
	logger     *slog.Logger
	metrics    *metrics
	scheduler  *Scheduler

	mu      sync.Mutex
	started bool
	self    *model.User
	offsets *offsetstore.Store
	poller  *Poller
	webhook *WebhookServer
}

// Option customizes a Bot at construction time.
type Option func(*Bot)

// WithLogger sets the bot's logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) { b.logger = logger }
}

// New creates a Bot from the given configuration. Handlers and jobs are
// registered on the returned Bot before calling Start.
func New(config Config, opts ...Option) (*Bot, error) {
	config.defaults()
	if err := config.validate(); err != nil {
		return nil, err
	}

	b := &Bot{
		config:     config,
		client:     api.NewClient(config.Token, config.APIURL),
		dispatcher: NewDispatcher(),
		data:       NewDataStore(),
		metrics:    newMetrics(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}

	b.scheduler = NewScheduler(b.logger, func(ctx context.Context) *Context {
		return newContext(ctx, b.client, b.data, nil)
	})

	return b, nil
}

// API returns the bot's API client.
func (b *Bot) API() *api.Client { return b.client }

// Data returns the bot-lifetime shared key-value store.
func (b *Bot) Data() *DataStore { return b.data }

// Self returns the bot's own user record, available after Start.
func (b *Bot) Self() *model.User {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.self
}

// MetricsHandler returns an HTTP handler serving the bot's Prometheus
// metrics. In webhook mode the same handler is mounted at /metrics.
func (b *Bot) MetricsHandler() http.Handler { return b.metrics.handler() }

// Subscribe registers a callback invoked for every decoded update.
func (b *Bot) Subscribe(fn EventHandlerFunc) { b.dispatcher.Subscribe(fn) }

// SubscribeRaw registers a callback invoked with every undecoded update
// payload.
func (b *Bot) SubscribeRaw(fn RawEventHandlerFunc) { b.dispatcher.SubscribeRaw(fn) }

// OnMessage registers the message callback, replacing any previous one.
func (b *Bot) OnMessage(fn MessageHandlerFunc) { b.dispatcher.OnMessage(fn) }

// OnInlineQuery registers the inline query callback, replacing any
// previous one.
func (b *Bot) OnInlineQuery(fn InlineQueryHandlerFunc) { b.dispatcher.OnInlineQuery(fn) }

// OnChosenInlineResult registers the chosen-inline-result callback,
// replacing any previous one.
func (b *Bot) OnChosenInlineResult(fn ChosenInlineResultHandlerFunc) {
	b.dispatcher.OnChosenInlineResult(fn)
}

// RegisterJob adds a periodic job, executed while the bot runs.
func (b *Bot) RegisterJob(j Job) error { return b.scheduler.RegisterJob(j) }

// Start validates the bot token via getMe, then begins receiving
// updates in the configured mode.
func (b *Bot) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.started {
		return ErrAlreadyStarted
	}

	self, err := b.client.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("telexide: getMe failed (check token): %w", err)
	}
	b.self = self
	b.logger.Info("bot authenticated",
		"id", self.ID,
		"username", self.Username,
	)

	if err := b.scheduler.Start(); err != nil {
		return err
	}

	switch b.config.Mode {
	case "polling":
		if b.config.OffsetPath != "" {
			store, err := offsetstore.Open(b.config.OffsetPath)
			if err != nil {
				b.scheduler.Stop()
				return err
			}
			b.offsets = store
		}

		b.poller = NewPoller(b.client, b.dispatchUpdate, b.offsets, b.logger, b.config)
		b.poller.Start()
		b.logger.Info("polling started",
			"timeout", b.config.PollingTimeout,
		)

	case "webhook":
		if b.config.WebhookSecret == "" {
			b.logger.Warn("webhook running without secret_token, " +
				"set webhook_secret for production deployments")
		}

		b.webhook = NewWebhookServer(
			b.config.WebhookListen, b.dispatchUpdate, b.logger,
			b.config.WebhookSecret, b.metrics.handler(),
		)
		b.webhook.Start()

		if err := b.client.SetWebhook(ctx, api.SetWebhookRequest{
			URL:            b.config.WebhookURL,
			SecretToken:    b.config.WebhookSecret,
			AllowedUpdates: b.config.AllowedUpdates,
		}); err != nil {
			b.scheduler.Stop()
			_ = b.webhook.Stop(ctx)
			return fmt.Errorf("telexide: setWebhook failed: %w", err)
		}
		b.logger.Info("webhook configured",
			"url", b.config.WebhookURL,
			"listen", b.config.WebhookListen,
		)
	}

	b.started = true
	return nil
}

// Stop shuts down the update source, the scheduler, and the offset
// store. In webhook mode the webhook registration is removed.
func (b *Bot) Stop(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.started {
		return ErrNotStarted
	}

	b.logger.Info("bot stopping")
	b.scheduler.Stop()

	switch b.config.Mode {
	case "polling":
		b.poller.Stop()
	case "webhook":
		if err := b.client.DeleteWebhook(ctx, api.DeleteWebhookRequest{}); err != nil {
			b.logger.Warn("deleting webhook on shutdown failed", "error", err)
		}
		if err := b.webhook.Stop(ctx); err != nil {
			return err
		}
	}

	if b.offsets != nil {
		if err := b.offsets.Close(); err != nil {
			b.logger.Warn("closing offset store failed", "error", err)
		}
	}

	b.started = false
	return nil
}

// dispatchUpdate is the driver entry point for one update. It creates
// the per-cycle Context, runs the dispatcher, and records metrics.
// Callback errors are logged here; they never affect other updates.
// update is nil for payloads that failed to decode; raw subscribers
// still receive those.
func (b *Bot) dispatchUpdate(ctx context.Context, raw api.RawUpdate, update *model.Update) {
	b.metrics.updatesReceived.Inc()

	label := "none"
	var updateID int64
	if update != nil {
		if kind := update.Type(); kind != model.UpdateNone {
			label = string(kind)
		}
		updateID = update.UpdateID
	}
	b.metrics.dispatched.WithLabelValues(label).Inc()

	c := newContext(ctx, b.client, b.data, raw)
	if err := b.dispatcher.Dispatch(c, raw, update); err != nil {
		b.metrics.handlerErrors.Inc()
		b.logger.Error("handler failed",
			"update_id", updateID,
			"type", label,
			"error", err,
		)
	}
}
