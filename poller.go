package telexide

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/rmrfus/telexide/api"
	"github.com/rmrfus/telexide/internal/offsetstore"
	"github.com/rmrfus/telexide/model"
)

const (
	maxConsecutivePollingErrors = 5
	errorPauseDuration          = 30 * time.Second
)

// dispatchFunc delivers one update to the bot's dispatcher. Each call
// runs in its own goroutine, one per update.
type dispatchFunc func(ctx context.Context, raw api.RawUpdate, update *model.Update)

// Poller implements long-polling for receiving updates.
type Poller struct {
	client   *api.Client
	dispatch dispatchFunc
	offsets  *offsetstore.Store
	logger   *slog.Logger
	config   Config

	stopCh   chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	inflight sync.WaitGroup
}

// NewPoller creates a new Poller. offsets may be nil to disable offset
// persistence.
func NewPoller(client *api.Client, dispatch dispatchFunc, offsets *offsetstore.Store, logger *slog.Logger, config Config) *Poller {
	return &Poller{
		client:   client,
		dispatch: dispatch,
		offsets:  offsets,
		logger:   logger,
		config:   config,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the polling loop in a goroutine.
func (p *Poller) Start() {
	go p.loop()
}

// Stop signals the polling loop to stop, then waits for it and all
// in-flight update dispatches to finish. Safe to call multiple times.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	<-p.done
	p.inflight.Wait()
}

// loop runs the long-polling loop until Stop() is called.
func (p *Poller) loop() {
	defer close(p.done)

	offset := p.loadOffset()
	var consecutiveErrors int

	for {
		select {
		case <-p.stopCh:
			return
		default:
		}

		raws, err := p.client.GetRawUpdates(p.ctx(), api.GetUpdatesRequest{
			Offset:         offset,
			Timeout:        p.config.PollingTimeout,
			AllowedUpdates: p.config.AllowedUpdates,
		})
		if err != nil {
			select {
			case <-p.stopCh:
				return
			default:
			}

			consecutiveErrors++
			p.logger.Error("polling getUpdates failed",
				"error", err,
				"consecutive_errors", consecutiveErrors,
			)

			if consecutiveErrors >= maxConsecutivePollingErrors {
				p.logger.Warn("polling paused after consecutive errors",
					"pause", errorPauseDuration,
				)
				select {
				case <-p.stopCh:
					return
				case <-time.After(errorPauseDuration):
				}
				consecutiveErrors = 0
			}
			continue
		}

		consecutiveErrors = 0

		for _, raw := range raws {
			var update model.Update
			if err := json.Unmarshal(raw, &update); err != nil {
				p.logger.Error("decode update failed", "error", err)

				// Raw subscribers still see the payload.
				p.inflight.Add(1)
				go func(raw api.RawUpdate) {
					defer p.inflight.Done()
					p.dispatch(p.ctx(), raw, nil)
				}(raw)

				// Confirm the update anyway, or getUpdates keeps
				// redelivering it at full speed. Without a usable
				// update_id, pause instead of spinning.
				var id struct {
					UpdateID int64 `json:"update_id"`
				}
				if json.Unmarshal(raw, &id) != nil || id.UpdateID == 0 {
					p.logger.Warn("update without usable update_id, pausing",
						"pause", errorPauseDuration,
					)
					select {
					case <-p.stopCh:
						return
					case <-time.After(errorPauseDuration):
					}
					continue
				}
				offset = id.UpdateID + 1
				p.saveOffset(offset)
				continue
			}

			offset = update.UpdateID + 1
			p.saveOffset(offset)

			p.inflight.Add(1)
			go func(raw api.RawUpdate, update *model.Update) {
				defer p.inflight.Done()
				p.dispatch(p.ctx(), raw, update)
			}(raw, &update)
		}
	}
}

// loadOffset restores the persisted polling offset, if configured.
func (p *Poller) loadOffset() int64 {
	if p.offsets == nil {
		return 0
	}
	offset, err := p.offsets.Load(context.Background())
	if err != nil {
		p.logger.Warn("loading polling offset failed", "error", err)
		return 0
	}
	return offset
}

// saveOffset persists the polling offset, if configured.
func (p *Poller) saveOffset(offset int64) {
	if p.offsets == nil {
		return
	}
	if err := p.offsets.Save(context.Background(), offset); err != nil {
		p.logger.Warn("saving polling offset failed", "error", err)
	}
}

// ctx returns a context that is cancelled when the poller stops.
func (p *Poller) ctx() context.Context {
	return stopContext{stopCh: p.stopCh}
}

// stopContext adapts the poller's stop channel to a context.Context.
type stopContext struct {
	stopCh <-chan struct{}
}

func (c stopContext) Deadline() (time.Time, bool) { return time.Time{}, false }
func (c stopContext) Done() <-chan struct{}       { return c.stopCh }

func (c stopContext) Err() error {
	select {
	case <-c.stopCh:
		return errPollerStopped
	default:
		return nil
	}
}

func (c stopContext) Value(any) any { return nil }

var errPollerStopped = pollerStoppedError{}

type pollerStoppedError struct{}

func (pollerStoppedError) Error() string { return "telexide: poller stopped" }
