package fluentfsm

// All returns a guard that passes when every guard passes (AND logic).
// An empty list always passes.
func All[D any](guards ...Guard[D]) Guard[D] {
	return func(store D) bool {
		for _, g := range guards {
			if g != nil && !g(store) {
				return false
			}
		}
		return true
	}
}

// Any returns a guard that passes when at least one guard passes (OR logic).
// An empty list never passes.
func Any[D any](guards ...Guard[D]) Guard[D] {
	return func(store D) bool {
		for _, g := range guards {
			if g != nil && g(store) {
				return true
			}
		}
		return false
	}
}

// Not inverts a guard
func Not[D any](guard Guard[D]) Guard[D] {
	return func(store D) bool {
		return !guard(store)
	}
}
