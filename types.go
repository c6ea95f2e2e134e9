package fluentfsm

import "log/slog"

// Guard decides whether a candidate transition commits.
// It receives a copy of the store and must not retain it.
type Guard[D any] func(store D) bool

// Hook runs a side effect against the store. Used for both the
// pre-hook (before the guard) and the post-hook (after a passing guard).
type Hook[D any] func(store *D)

// GlobalHook runs once per committed transition, after the state changed
type GlobalHook[T, S comparable, D any] func(store *D, state S, trigger T)

// Edge is a read-only view of one transition record
type Edge[T, S comparable] struct {
	Trigger T
	From    S
	To      S
}

// Logger is the default logger used when none is provided
var Logger = slog.Default()

func alwaysTrue[D any](D) bool { return true }

func noop[D any](*D) {}
