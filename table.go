package fsm

import "github.com/enetx/g"

// Table is a persistent mapping from (state, event) pairs to target
// states. Add returns a new Table and never modifies the receiver; the
// two tables share every inner event map Add did not touch, so a snapshot
// holding an old table keeps resolving exactly as it did.
type Table struct {
	states g.Map[State, g.Map[Event, State]]
}

// NewTable returns an empty transition table.
func NewTable() Table {
	return Table{states: g.NewMap[State, g.Map[Event, State]]()}
}

// Add returns a table that additionally maps (from, event) to to. An
// existing target for the same pair is silently replaced. Cost is
// proportional to the number of source states plus the entries of the one
// event map being rewritten.
func (t Table) Add(from State, event Event, to State) Table {
	states := g.NewMap[State, g.Map[Event, State]]()
	for state, events := range t.states.Iter() {
		states.Set(state, events)
	}

	events := g.NewMap[Event, State]()
	if prev := t.states.Get(from); prev.IsSome() {
		for ev, target := range prev.Some().Iter() {
			events.Set(ev, target)
		}
	}

	events.Set(event, to)
	states.Set(from, events)

	return Table{states: states}
}

// Lookup returns the target state for (state, event), if one is defined.
func (t Table) Lookup(state State, event Event) g.Option[State] {
	events := t.states.Get(state)
	if events.IsNone() {
		return g.None[State]()
	}

	return events.Some().Get(event)
}

// Len returns the number of (state, event) pairs in the table.
func (t Table) Len() g.Int {
	var n g.Int
	for _, events := range t.states.Iter() {
		n += events.Len()
	}

	return n
}

// Eq reports structural equality: the same set of (state, event, target)
// triples, regardless of the order they were added in.
func (t Table) Eq(other Table) bool {
	if t.states.Len() != other.states.Len() {
		return false
	}

	for state, events := range t.states.Iter() {
		otherEvents := other.states.Get(state)
		if otherEvents.IsNone() || otherEvents.Some().Len() != events.Len() {
			return false
		}

		for event, target := range events.Iter() {
			got := otherEvents.Some().Get(event)
			if got.IsNone() || got.Some() != target {
				return false
			}
		}
	}

	return true
}

// Hash returns a hash consistent with Eq. Per-entry hashes are combined
// with XOR, so insertion order cannot influence the result.
func (t Table) Hash() uint64 {
	var h uint64
	for state, events := range t.states.Iter() {
		for event, target := range events.Iter() {
			h ^= mix(hashValue(state), hashValue(event), hashValue(target))
		}
	}

	return h
}
