package fluentfsm

// Transition is one edge of the table. Records are refined only through the
// TransitionBuilder returned by the call that appended them.
type Transition[T, S comparable, D any] struct {
	Trigger T
	From    S
	To      S
	Guard   Guard[D] // must return true to commit
	Before  Hook[D]  // runs for every candidate, before Guard
	After   Hook[D]  // runs only when Guard passes
}

func newTransition[T, S comparable, D any](trigger T, from S) Transition[T, S, D] {
	return Transition[T, S, D]{
		Trigger: trigger,
		From:    from,
		To:      from,
		Guard:   alwaysTrue[D],
		Before:  noop[D],
		After:   noop[D],
	}
}

func (t *Transition[T, S, D]) sameEdge(o *Transition[T, S, D]) bool {
	return t.Trigger == o.Trigger && t.From == o.From && t.To == o.To
}

// TransitionBuilder refines the most recently appended transition.
// It is invalidated by the next State, On, When or Event call; refining
// through a stale handle is reported by Build as ErrMissingTransition.
type TransitionBuilder[T, S comparable, D any] struct {
	def   *definition[T, S, D]
	index int
}

// GoTo sets the target state
func (b *TransitionBuilder[T, S, D]) GoTo(target S) *TransitionBuilder[T, S, D] {
	b.def.refine(b.index, "go_to", func(t *Transition[T, S, D]) {
		t.To = target
	})
	return b
}

// To is an alias of GoTo
func (b *TransitionBuilder[T, S, D]) To(target S) *TransitionBuilder[T, S, D] {
	return b.GoTo(target)
}

// Update sets the pre-hook. It runs whenever this transition is a candidate,
// whether or not its guard passes.
func (b *TransitionBuilder[T, S, D]) Update(fn Hook[D]) *TransitionBuilder[T, S, D] {
	b.def.refine(b.index, "update", func(t *Transition[T, S, D]) {
		if fn != nil {
			t.Before = fn
		}
	})
	return b
}

// BeforeCondition is an alias of Update
func (b *TransitionBuilder[T, S, D]) BeforeCondition(fn Hook[D]) *TransitionBuilder[T, S, D] {
	return b.Update(fn)
}

// OnlyIf sets the guard
func (b *TransitionBuilder[T, S, D]) OnlyIf(fn Guard[D]) *TransitionBuilder[T, S, D] {
	b.def.refine(b.index, "only_if", func(t *Transition[T, S, D]) {
		if fn != nil {
			t.Guard = fn
		}
	})
	return b
}

// Condition is an alias of OnlyIf
func (b *TransitionBuilder[T, S, D]) Condition(fn Guard[D]) *TransitionBuilder[T, S, D] {
	return b.OnlyIf(fn)
}

// Then sets the post-hook, run after the guard passes and before the state changes
func (b *TransitionBuilder[T, S, D]) Then(fn Hook[D]) *TransitionBuilder[T, S, D] {
	b.def.refine(b.index, "then", func(t *Transition[T, S, D]) {
		if fn != nil {
			t.After = fn
		}
	})
	return b
}

// AfterCondition is an alias of Then
func (b *TransitionBuilder[T, S, D]) AfterCondition(fn Hook[D]) *TransitionBuilder[T, S, D] {
	return b.Then(fn)
}

// On closes this transition and appends a new one from the same source state
func (b *TransitionBuilder[T, S, D]) On(trigger T) *TransitionBuilder[T, S, D] {
	return b.def.on(trigger)
}

// When is an alias of On
func (b *TransitionBuilder[T, S, D]) When(trigger T) *TransitionBuilder[T, S, D] {
	return b.On(trigger)
}

// Event is shorthand for On(trigger).GoTo(target)
func (b *TransitionBuilder[T, S, D]) Event(trigger T, target S) *TransitionBuilder[T, S, D] {
	return b.On(trigger).GoTo(target)
}

// State closes this transition and selects a new source state
func (b *TransitionBuilder[T, S, D]) State(state S) *StateBuilder[T, S, D] {
	return b.def.state(state)
}

// SetGlobalAction replaces the global hook
func (b *TransitionBuilder[T, S, D]) SetGlobalAction(fn GlobalHook[T, S, D]) *TransitionBuilder[T, S, D] {
	b.def.global = fn
	return b
}

// Build validates the table and returns a Machine
func (b *TransitionBuilder[T, S, D]) Build(opts ...MachineOption) (*Machine[T, S, D], error) {
	return b.def.build(opts...)
}

// MustBuild is like Build but panics on validation errors
func (b *TransitionBuilder[T, S, D]) MustBuild(opts ...MachineOption) *Machine[T, S, D] {
	return b.def.mustBuild(opts...)
}
