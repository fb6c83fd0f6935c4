package fsm

import "fmt"

// ErrNoTransition is returned when a trigger event has no table entry for
// the state it was resolved against. The machine is unchanged and no
// hooks ran for the failing resolution step.
type ErrNoTransition struct {
	State State
	Event Event
}

func (e *ErrNoTransition) Error() string {
	return fmt.Sprintf("fsm: no transition for event %q from state %v", e.Event, e.State)
}

// ErrChainOverflow is returned when a chain limit set with
// FSM.WithChainLimit is exhausted before the machine settles. State and
// Event describe the transition that was about to be resolved when the
// limit hit.
type ErrChainOverflow struct {
	State State
	Event Event
	Depth int
}

func (e *ErrChainOverflow) Error() string {
	return fmt.Sprintf("fsm: chain limit reached after %d transitions at state %v on event %q", e.Depth, e.State, e.Event)
}
