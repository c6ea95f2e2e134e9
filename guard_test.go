package fluentfsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuardCombinators(t *testing.T) {
	positive := Guard[int](func(n int) bool { return n > 0 })
	even := Guard[int](func(n int) bool { return n%2 == 0 })

	tests := []struct {
		name  string
		guard Guard[int]
		in    int
		want  bool
	}{
		{"all both pass", All(positive, even), 2, true},
		{"all one fails", All(positive, even), 3, false},
		{"all empty", All[int](), -1, true},
		{"all skips nil", All(positive, nil), 1, true},
		{"any one passes", Any(positive, even), -2, true},
		{"any none pass", Any(positive, even), -3, false},
		{"any empty", Any[int](), 1, false},
		{"not", Not(positive), 0, true},
		{"not passing", Not(positive), 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.guard(tt.in))
		})
	}
}

func TestCombinedGuardInMachine(t *testing.T) {
	type door struct {
		closed bool
		locked bool
	}

	m := New[EventID](door{closed: true}, stateA).
		State(stateA).
		On(evGo).GoTo(stateB).OnlyIf(All[door](
			func(d door) bool { return d.closed },
			Not[door](func(d door) bool { return d.locked }),
		)).
		MustBuild()

	m.Store().locked = true
	assert.False(t, m.Trigger(evGo))

	m.Store().locked = false
	assert.True(t, m.Trigger(evGo))
	assert.Equal(t, stateB, m.State())
}
