package fluentfsm

import (
	"fmt"
	"slices"
)

// definition is the table under construction, shared by every builder
// position of one New call
type definition[T, S comparable, D any] struct {
	transitions []Transition[T, S, D]
	initial     S
	store       D
	global      GlobalHook[T, S, D]

	source    S
	hasSource bool
	open      int // index of the record refinements apply to, -1 when closed

	errs []error
}

// Builder is the starting position of the construction grammar. A source
// state must be selected with State before any transition can be attached.
type Builder[T, S comparable, D any] struct {
	def *definition[T, S, D]
}

// New creates a builder for a machine owning store and starting in initial.
// The trigger type cannot be inferred and is given explicitly:
//
//	fluentfsm.New[string](0, "Stopped")
func New[T, S comparable, D any](store D, initial S) *Builder[T, S, D] {
	return &Builder[T, S, D]{
		def: &definition[T, S, D]{
			transitions: make([]Transition[T, S, D], 0),
			initial:     initial,
			store:       store,
			open:        -1,
		},
	}
}

// SetGlobalAction replaces the hook run after every committed transition.
// It may be called at any builder position before Build; the last call wins.
func (b *Builder[T, S, D]) SetGlobalAction(fn GlobalHook[T, S, D]) *Builder[T, S, D] {
	b.def.global = fn
	return b
}

// State selects the source state for the transitions that follow
func (b *Builder[T, S, D]) State(state S) *StateBuilder[T, S, D] {
	return b.def.state(state)
}

// Build validates the table and returns a Machine
func (b *Builder[T, S, D]) Build(opts ...MachineOption) (*Machine[T, S, D], error) {
	return b.def.build(opts...)
}

// MustBuild is like Build but panics on validation errors
func (b *Builder[T, S, D]) MustBuild(opts ...MachineOption) *Machine[T, S, D] {
	return b.def.mustBuild(opts...)
}

func (d *definition[T, S, D]) state(state S) *StateBuilder[T, S, D] {
	d.source = state
	d.hasSource = true
	d.open = -1
	return &StateBuilder[T, S, D]{def: d}
}

func (d *definition[T, S, D]) on(trigger T) *TransitionBuilder[T, S, D] {
	if !d.hasSource {
		d.open = -1
		d.errs = append(d.errs, &TransitionError{
			Op:      "on",
			Index:   -1,
			Prev:    -1,
			Trigger: trigger,
			Err:     ErrMissingState,
		})
		return &TransitionBuilder[T, S, D]{def: d, index: -1}
	}

	d.transitions = append(d.transitions, newTransition[T, S, D](trigger, d.source))
	d.open = len(d.transitions) - 1
	return &TransitionBuilder[T, S, D]{def: d, index: d.open}
}

// refine applies fn to the record at index if it is still the open one
func (d *definition[T, S, D]) refine(index int, op string, fn func(*Transition[T, S, D])) {
	if index < 0 || index != d.open {
		te := &TransitionError{Op: op, Index: index, Prev: -1, Err: ErrMissingTransition}
		if index >= 0 && index < len(d.transitions) {
			te.Trigger = d.transitions[index].Trigger
			te.From = d.transitions[index].From
			te.To = d.transitions[index].To
		}
		d.errs = append(d.errs, te)
		return
	}
	fn(&d.transitions[index])
}

// validate collects every grammar error and duplicate edge without
// modifying the table
func (d *definition[T, S, D]) validate() error {
	errs := slices.Clone(d.errs)

	for j := range d.transitions {
		for i := 0; i < j; i++ {
			if !d.transitions[i].sameEdge(&d.transitions[j]) {
				continue
			}
			t := &d.transitions[j]
			errs = append(errs, &TransitionError{
				Op:      "validate",
				Index:   j,
				Prev:    i,
				Trigger: t.Trigger,
				From:    t.From,
				To:      t.To,
				Err:     ErrDuplicateTransition,
			})
			break
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return &BuildError{Errors: errs}
}

func (d *definition[T, S, D]) build(opts ...MachineOption) (*Machine[T, S, D], error) {
	cfg := newOptions(opts...)

	if err := d.validate(); err != nil {
		cfg.logger.Debug("state machine rejected", "error", err)
		return nil, err
	}

	m := &Machine[T, S, D]{
		transitions: slices.Clone(d.transitions),
		state:       d.initial,
		store:       d.store,
		global:      d.global,
		logger:      cfg.logger,
	}

	m.logger.Debug("state machine built", "transitions", len(m.transitions), "initial", d.initial)
	return m, nil
}

func (d *definition[T, S, D]) mustBuild(opts ...MachineOption) *Machine[T, S, D] {
	m, err := d.build(opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to build state machine: %v", err))
	}
	return m
}
