package fsm

import "github.com/enetx/g"

// Response is the outcome of an enter hook: optionally replacement
// carried data and optionally a chained event. The zero value keeps the
// incoming data and lets the machine settle in the entered state. Each
// hook invocation produces its own Response, so nothing carries over
// between the exit and enter phases except the data the engine threads
// explicitly.
type Response struct {
	Data  g.Option[any]
	Event g.Option[Event]
}

// EmitData builds a Response that replaces the carried data.
func EmitData(data any) Response {
	return Response{Data: g.Some(data)}
}

// EmitEvent builds a Response that requests an immediate chained
// transition out of the entered state.
func EmitEvent(event Event) Response {
	return Response{Event: g.Some(event)}
}

// Emit builds a Response that both replaces the carried data and requests
// a chained transition.
func Emit(data any, event Event) Response {
	return Response{Data: g.Some(data), Event: g.Some(event)}
}
