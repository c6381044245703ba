package telexide

import (
	"sync"

	"github.com/rmrfus/telexide/api"
	"github.com/rmrfus/telexide/model"
)

// HandlerFunc is a callback for one payload category. A non-nil error
// terminates that update's processing; it is reported to the driver
// loop unchanged.
type HandlerFunc[T any] func(*Context, T) error

// Callback signatures for the handler categories the dispatcher knows.
type (
	EventHandlerFunc              = HandlerFunc[model.Update]
	RawEventHandlerFunc           = HandlerFunc[api.RawUpdate]
	MessageHandlerFunc            = HandlerFunc[model.Message]
	InlineQueryHandlerFunc        = HandlerFunc[model.InlineQuery]
	ChosenInlineResultHandlerFunc = HandlerFunc[model.ChosenInlineResult]
)

// Handler is a shareable wrapper around a single callback function.
// The held function may be replaced at any time; replacement and
// invocation may interleave freely.
type Handler[T any] struct {
	mu sync.Mutex
	fn HandlerFunc[T]
}

// NewHandler wraps fn in a Handler. fn may be nil; a nil callback makes
// Call a no-op.
func NewHandler[T any](fn HandlerFunc[T]) *Handler[T] {
	return &Handler[T]{fn: fn}
}

// Replace swaps the held callback. Invocations already past their
// snapshot continue with the function they captured.
func (h *Handler[T]) Replace(fn HandlerFunc[T]) {
	h.mu.Lock()
	h.fn = fn
	h.mu.Unlock()
}

// Call invokes the currently held callback with ctx and payload. The
// lock covers only the snapshot of the function reference, never its
// execution, so a slow callback blocks neither concurrent Call nor
// Replace.
func (h *Handler[T]) Call(ctx *Context, payload T) error {
	h.mu.Lock()
	fn := h.fn
	h.mu.Unlock()

	if fn == nil {
		return nil
	}
	return fn(ctx, payload)
}
