package fsm

import (
	"context"

	"github.com/enetx/g"
)

type (
	// State identifies one machine mode. Any comparable value works as a
	// state: string kinds for flat machines, or struct variants carrying
	// constant fields (two variants of the same type with equal fields are
	// the same state). States are table keys, so a non-comparable state
	// value is a programming error.
	//
	// A state opts into transition hooks by implementing EnterHandler,
	// ExitHandler or both; a state implementing neither passes the carried
	// data through unchanged.
	State any

	// Event identifies a transition trigger.
	Event g.String
)

// EnterHandler is implemented by states that observe being entered. The
// hook runs after the exited state's ExitHandler and receives the data
// that hook settled on. It may replace the carried data and may request
// an immediate chained transition out of the state via the returned
// Response; the hook of the machine's initial state never runs for the
// construction itself.
type EnterHandler interface {
	OnEnter(ctx context.Context, data any) (Response, error)
}

// ExitHandler is implemented by states that observe being left, including
// the initial state on its first outward transition. It may replace the
// carried data; unlike an enter hook it cannot chain.
type ExitHandler interface {
	OnExit(ctx context.Context, data any) (g.Option[any], error)
}
