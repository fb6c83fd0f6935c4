package fsm

import (
	"fmt"

	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// label renders a state for display: its Stringer form when it has one,
// the value itself for string kinds, otherwise the type plus fields so
// distinct variants stay distinguishable.
func label(s State) g.String {
	switch v := s.(type) {
	case fmt.Stringer:
		return g.String(v.String())
	case g.String:
		return v
	case string:
		return g.String(v)
	default:
		return g.String(fmt.Sprintf("%T%+v", s, s))
	}
}

// ToDOT generates a DOT language string representation of the snapshot
// for visualization. The current state is highlighted, states without
// outgoing transitions are drawn as final, and states implementing enter
// or exit hooks carry a tooltip naming them.
func (f FSM) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph FSM {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	states := g.NewSet[State]()
	states.Insert(f.state)

	outgoing := g.NewSet[State]()

	for from, events := range f.table.states.Iter() {
		states.Insert(from)
		outgoing.Insert(from)

		for _, to := range events.Iter() {
			states.Insert(to)
		}
	}

	sorted := states.ToSlice()
	sorted.SortBy(func(a, b State) cmp.Ordering { return cmp.Cmp(label(a), label(b)) })

	for state := range sorted.Iter() {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", label(state)))

		switch {
		case state == f.state:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case !outgoing.Contains(state):
			attrs.Push("fillcolor=\"#d3d3d3\"", "shape=doublecircle")
		}

		var hooks g.Slice[g.String]

		if _, ok := state.(EnterHandler); ok {
			hooks.Push("OnEnter")
		}

		if _, ok := state.(ExitHandler); ok {
			hooks.Push("OnExit")
		}

		if hooks.NotEmpty() {
			attrs.Push(g.Format("tooltip=\"{}\"", hooks.Join("\\n")))
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", label(state), attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for state := range sorted.Iter() {
		events := f.table.states.Get(state)
		if events.IsNone() {
			continue
		}

		grouped := g.NewMap[State, g.Slice[g.String]]()

		for event, to := range events.Some().Iter() {
			grouped.Entry(to).
				AndModify(func(s *g.Slice[g.String]) { s.Push(g.String(event)) }).
				OrInsert(g.SliceOf(g.String(event)))
		}

		for to, labels := range grouped.Iter() {
			labels.SortBy(cmp.Cmp)
			b.WriteString(g.Format("  \"{}\" -> \"{}\" [label=\" {} \"];\n", label(state), label(to), labels.Join(", ")))
		}
	}

	b.WriteString("}\n")

	return b.String()
}
