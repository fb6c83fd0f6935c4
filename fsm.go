// Package fsm provides a persistent (copy-on-write) finite state machine.
// A machine value is an immutable snapshot of current state, carried data
// and transition table; configuring or triggering it returns a new
// snapshot and never modifies the original, so snapshots can be stored,
// compared and shared across goroutines freely. It is built with types
// and utilities from the github.com/enetx/g library.
package fsm

import (
	"context"
	"fmt"
	"reflect"

	"github.com/enetx/g"
)

// FSM is an immutable machine snapshot: the current state, the carried
// data (possibly absent) and the transition table. Construct machines
// with New; methods never modify their receiver.
type FSM struct {
	state State
	data  g.Option[any]
	table Table
	limit int
}

// New creates a machine in the given initial state with an empty table.
// An optional single data argument seeds the carried data. No hooks run:
// the initial state's OnEnter is never invoked for the construction,
// though its OnExit does run on the first outward transition.
func New(initial State, data ...any) FSM {
	m := FSM{state: initial, table: NewTable()}
	if len(data) > 0 {
		m.data = g.Some(data[0])
	}

	return m
}

// Transition returns a machine whose table additionally maps (from,
// event) to to. State and data are untouched. Adding the same (from,
// event) pair again replaces the previous target.
func (f FSM) Transition(from State, event Event, to State) FSM {
	f.table = f.table.Add(from, event, to)
	return f
}

// WithChainLimit caps the number of transitions a single Trigger call may
// resolve, the initial one included; exceeding the cap fails with
// ErrChainOverflow. The default 0 means unlimited, in which case a chain
// of states that keeps emitting events loops until a hook returns an
// error - guarding against that is the caller's responsibility.
func (f FSM) WithChainLimit(n int) FSM {
	f.limit = n
	return f
}

// Current returns the snapshot's state.
func (f FSM) Current() State { return f.state }

// Data returns the snapshot's carried data, or None when absent.
func (f FSM) Data() g.Option[any] { return f.data }

// Table returns the snapshot's transition table.
func (f FSM) Table() Table { return f.table }

// Trigger resolves event against the current state and returns the
// settled snapshot. The exit hook of the state being left runs first,
// then the enter hook of the state being entered; when the enter hook
// requests a chained event, resolution continues from the new state until
// an enter hook stays silent. Intermediate snapshots are never
// observable. An optional single input argument overrides the stored data
// as the transition's starting data.
//
// On failure the receiver is returned unchanged alongside the error: an
// *ErrNoTransition when a resolution step finds no table entry, the
// hook's own error otherwise, never wrapped. Hooks run strictly in
// sequence, one in flight at a time; ctx is handed to them for their own
// blocking work, and a hook that never returns stalls Trigger with it.
func (f FSM) Trigger(ctx context.Context, event Event, input ...any) (FSM, error) {
	data := f.data
	if len(input) > 0 {
		data = g.Some(input[0])
	}

	state, ev := f.state, event

	for depth := 0; ; depth++ {
		if f.limit > 0 && depth == f.limit {
			return f, &ErrChainOverflow{State: state, Event: ev, Depth: depth}
		}

		target := f.table.Lookup(state, ev)
		if target.IsNone() {
			return f, &ErrNoTransition{State: state, Event: ev}
		}

		if h, ok := state.(ExitHandler); ok {
			emitted, err := h.OnExit(ctx, data.UnwrapOr(nil))
			if err != nil {
				return f, err
			}

			if emitted.IsSome() {
				data = emitted
			}
		}

		state = target.Some()

		var chained g.Option[Event]

		if h, ok := state.(EnterHandler); ok {
			resp, err := h.OnEnter(ctx, data.UnwrapOr(nil))
			if err != nil {
				return f, err
			}

			if resp.Data.IsSome() {
				data = resp.Data
			}

			chained = resp.Event
		}

		if chained.IsNone() {
			return FSM{state: state, data: data, table: f.table, limit: f.limit}, nil
		}

		ev = chained.Some()
	}
}

// Eq reports whether two snapshots are equal: same state, same carried
// data (deep equality, both-absent counts as equal) and structurally
// equal tables.
func (f FSM) Eq(other FSM) bool {
	if f.state != other.state {
		return false
	}

	if f.data.IsSome() != other.data.IsSome() {
		return false
	}

	if f.data.IsSome() && !reflect.DeepEqual(f.data.Some(), other.data.Some()) {
		return false
	}

	return f.table.Eq(other.table)
}

// Hash returns a hash consistent with Eq.
func (f FSM) Hash() uint64 {
	var dataHash uint64
	if f.data.IsSome() {
		dataHash = hashValue(f.data.Some())
	}

	return mix(hashValue(f.state), dataHash) ^ f.table.Hash()
}

// String renders a one-line debug view of the snapshot.
func (f FSM) String() string {
	data := "<none>"
	if f.data.IsSome() {
		data = fmt.Sprintf("%v", f.data.Some())
	}

	return fmt.Sprintf("FSM(state=%v, data=%s, transitions=%d)", label(f.state), data, f.table.Len())
}
