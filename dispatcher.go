package telexide

import (
	"errors"
	"sync"

	"github.com/rmrfus/telexide/api"
	"github.com/rmrfus/telexide/model"
)

// Dispatcher routes one incoming update to the registered callbacks.
//
// Raw and generic event handlers are subscriptions: every update reaches
// all of them. The typed categories (message, inline query, chosen
// inline result) each hold a single replaceable slot; re-registering a
// category swaps the callback inside the existing Handler rather than
// creating a new one.
type Dispatcher struct {
	mu sync.RWMutex

	event []*Handler[model.Update]
	raw   []*Handler[api.RawUpdate]

	message            *Handler[model.Message]
	inlineQuery        *Handler[model.InlineQuery]
	chosenInlineResult *Handler[model.ChosenInlineResult]
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers a callback invoked for every decoded update.
func (d *Dispatcher) Subscribe(fn EventHandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.event = append(d.event, NewHandler(fn))
}

// SubscribeRaw registers a callback invoked with the undecoded JSON
// payload of every update, before convenience mapping.
func (d *Dispatcher) SubscribeRaw(fn RawEventHandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.raw = append(d.raw, NewHandler(fn))
}

// OnMessage registers the message callback, replacing any previous one.
func (d *Dispatcher) OnMessage(fn MessageHandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.message != nil {
		d.message.Replace(fn)
		return
	}
	d.message = NewHandler(fn)
}

// OnInlineQuery registers the inline query callback, replacing any
// previous one.
func (d *Dispatcher) OnInlineQuery(fn InlineQueryHandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.inlineQuery != nil {
		d.inlineQuery.Replace(fn)
		return
	}
	d.inlineQuery = NewHandler(fn)
}

// OnChosenInlineResult registers the chosen-inline-result callback,
// replacing any previous one.
func (d *Dispatcher) OnChosenInlineResult(fn ChosenInlineResultHandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.chosenInlineResult != nil {
		d.chosenInlineResult.Replace(fn)
		return
	}
	d.chosenInlineResult = NewHandler(fn)
}

// Dispatch delivers one update: raw subscribers first, then generic
// event subscribers, then the typed callback matching the update's
// first populated variant field.
//
// An update with no populated field, or one whose category has no
// registered callback, is a no-op. Callback errors are collected and
// returned joined; a failing callback affects only this update.
func (d *Dispatcher) Dispatch(ctx *Context, raw api.RawUpdate, update *model.Update) error {
	d.mu.RLock()
	rawHandlers := d.raw
	eventHandlers := d.event
	message := d.message
	inlineQuery := d.inlineQuery
	chosenInlineResult := d.chosenInlineResult
	d.mu.RUnlock()

	var errs []error

	if raw != nil {
		for _, h := range rawHandlers {
			if err := h.Call(ctx, raw); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if update == nil {
		return errors.Join(errs...)
	}

	for _, h := range eventHandlers {
		if err := h.Call(ctx, *update); err != nil {
			errs = append(errs, err)
		}
	}

	switch update.Type() {
	case model.UpdateMessage:
		if message != nil {
			if err := message.Call(ctx, *update.Message); err != nil {
				errs = append(errs, err)
			}
		}
	case model.UpdateInlineQuery:
		if inlineQuery != nil {
			if err := inlineQuery.Call(ctx, *update.InlineQuery); err != nil {
				errs = append(errs, err)
			}
		}
	case model.UpdateChosenInlineResult:
		if chosenInlineResult != nil {
			if err := chosenInlineResult.Call(ctx, *update.ChosenInlineResult); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}
