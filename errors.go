package telexide

import "errors"

// Sentinel errors for bot lifecycle operations.
var (
	// ErrAlreadyStarted indicates Start was called on a running bot.
	ErrAlreadyStarted = errors.New("telexide: bot already started")

	// ErrNotStarted indicates Stop was called on a bot that never started.
	ErrNotStarted = errors.New("telexide: bot not started")

	// ErrDuplicateJob indicates a scheduled job with the same name is
	// already registered.
	ErrDuplicateJob = errors.New("telexide: duplicate job name")
)
