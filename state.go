package fluentfsm

// StateBuilder is the builder position reached after a source state has been
// selected. Only from here can transitions be attached.
type StateBuilder[T, S comparable, D any] struct {
	def *definition[T, S, D]
}

// State selects a different source state
func (b *StateBuilder[T, S, D]) State(state S) *StateBuilder[T, S, D] {
	return b.def.state(state)
}

// On appends a self-loop transition from the current source state and returns
// a handle for refining it
func (b *StateBuilder[T, S, D]) On(trigger T) *TransitionBuilder[T, S, D] {
	return b.def.on(trigger)
}

// When is an alias of On
func (b *StateBuilder[T, S, D]) When(trigger T) *TransitionBuilder[T, S, D] {
	return b.On(trigger)
}

// Event is shorthand for On(trigger).GoTo(target)
func (b *StateBuilder[T, S, D]) Event(trigger T, target S) *TransitionBuilder[T, S, D] {
	return b.On(trigger).GoTo(target)
}

// SetGlobalAction replaces the global hook
func (b *StateBuilder[T, S, D]) SetGlobalAction(fn GlobalHook[T, S, D]) *StateBuilder[T, S, D] {
	b.def.global = fn
	return b
}

// Build validates the table and returns a Machine
func (b *StateBuilder[T, S, D]) Build(opts ...MachineOption) (*Machine[T, S, D], error) {
	return b.def.build(opts...)
}

// MustBuild is like Build but panics on validation errors
func (b *StateBuilder[T, S, D]) MustBuild(opts ...MachineOption) *Machine[T, S, D] {
	return b.def.mustBuild(opts...)
}
