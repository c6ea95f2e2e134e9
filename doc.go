// Package fluentfsm is an embeddable finite-state machine with a fluent,
// type-state construction API.
//
// A machine is declared by selecting a source state and attaching triggers
// to it. Each attached transition defaults to a self-loop with an
// always-true guard and no-op hooks, and can be refined in any order:
//
//	player := fluentfsm.New[string](0, "Stopped").
//	    State("Stopped").
//	        On("Play").GoTo("Playing").OnlyIf(func(track int) bool { return track > 0 }).
//	        On("Forward").Update(func(track *int) { *track++ }).
//	    State("Playing").
//	        On("Stop").GoTo("Stopped").Then(func(track *int) { *track = 0 }).
//	    MustBuild()
//
//	player.Trigger("Forward")
//	player.Trigger("Play") // now "Playing"
//
// New returns a Builder that has no On method, so a transition cannot be
// attached before a state is selected. Build reports every duplicate
// (trigger, source, target) edge and every misuse of a stale refinement
// handle in one BuildError.
//
// Trigger scans the table in declaration order. For every candidate it runs
// the pre-hook (Update) and then the guard (OnlyIf); the first passing
// candidate runs its post-hook (Then), commits the target state and calls the
// global action. A trigger with no passing candidate is silently ignored.
//
// Machines are synchronous and not safe for concurrent use. Guards and hooks
// must not call Trigger on the machine that invoked them.
package fluentfsm
