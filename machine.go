package fluentfsm

import (
	"log/slog"
)

// Machine is the runtime FSM instance. It owns its table, current state and
// store. Only Trigger changes the state.
//
// A Machine is not safe for concurrent use, and Trigger must not be called
// from a guard or hook of the same Machine.
type Machine[T, S comparable, D any] struct {
	transitions []Transition[T, S, D]
	state       S
	store       D

	global              GlobalHook[T, S, D]
	stateChangeCallback func(from, to S)
	logger              *slog.Logger
}

type options struct {
	logger *slog.Logger
	name   string
}

// MachineOption is a functional option for configuring a Machine
type MachineOption func(*options)

// WithLogger sets the logger for the machine
func WithLogger(logger *slog.Logger) MachineOption {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName tags every log record of the machine with its name
func WithName(name string) MachineOption {
	return func(o *options) {
		o.name = name
	}
}

func newOptions(opts ...MachineOption) *options {
	o := &options{logger: Logger}
	for _, opt := range opts {
		opt(o)
	}
	if o.name != "" {
		o.logger = o.logger.With("machine", o.name)
	}
	return o
}

// OnStateChange sets a callback invoked after each committed transition that
// changed the state. It runs after the global action.
func (m *Machine[T, S, D]) OnStateChange(fn func(from, to S)) {
	m.stateChangeCallback = fn
}

// State returns the current state
func (m *Machine[T, S, D]) State() S {
	return m.state
}

// Store returns the store owned by the machine. Callers must not hold on to
// it across Trigger calls.
func (m *Machine[T, S, D]) Store() *D {
	return &m.store
}

// Trigger dispatches trigger against the table in declaration order.
//
// Every candidate (a record matching trigger and the current state) has its
// pre-hook run, then its guard evaluated. The first candidate whose guard
// passes runs its post-hook, moves the machine to its target and fires the
// global action; scanning stops there. If no guard passes the state is left
// as is. Trigger reports whether a transition committed.
func (m *Machine[T, S, D]) Trigger(trigger T) bool {
	from := m.state
	m.logger.Debug("processing trigger", "trigger", trigger, "state", from)

	candidates := 0
	for i := range m.transitions {
		t := &m.transitions[i]
		if t.Trigger != trigger || t.From != from {
			continue
		}
		candidates++

		t.Before(&m.store)

		if !t.Guard(m.store) {
			m.logger.Debug("guard rejected transition", "trigger", trigger, "from", t.From, "to", t.To)
			continue
		}

		m.logger.Debug("executing transition", "trigger", trigger, "from", t.From, "to", t.To)
		t.After(&m.store)
		m.state = t.To

		if m.global != nil {
			m.global(&m.store, m.state, trigger)
		}
		if m.stateChangeCallback != nil && from != m.state {
			m.stateChangeCallback(from, m.state)
		}
		return true
	}

	if candidates == 0 {
		m.logger.Debug("no transition found", "trigger", trigger, "state", from)
	} else {
		m.logger.Debug("all guards rejected", "trigger", trigger, "state", from, "candidates", candidates)
	}
	return false
}

// CanTrigger reports whether any transition is declared for trigger from the
// current state. Guards are not evaluated and no hooks run.
func (m *Machine[T, S, D]) CanTrigger(trigger T) bool {
	for i := range m.transitions {
		if m.transitions[i].Trigger == trigger && m.transitions[i].From == m.state {
			return true
		}
	}
	return false
}

// PermittedTriggers returns the distinct triggers declared from the current
// state, in table order. Guards are not evaluated.
func (m *Machine[T, S, D]) PermittedTriggers() []T {
	var triggers []T
	seen := make(map[T]struct{})
	for i := range m.transitions {
		t := &m.transitions[i]
		if t.From != m.state {
			continue
		}
		if _, ok := seen[t.Trigger]; ok {
			continue
		}
		seen[t.Trigger] = struct{}{}
		triggers = append(triggers, t.Trigger)
	}
	return triggers
}

// Transitions returns the table as trigger/from/to edges in declaration order
func (m *Machine[T, S, D]) Transitions() []Edge[T, S] {
	edges := make([]Edge[T, S], len(m.transitions))
	for i, t := range m.transitions {
		edges[i] = Edge[T, S]{Trigger: t.Trigger, From: t.From, To: t.To}
	}
	return edges
}
