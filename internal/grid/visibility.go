package grid

import "sort"

// Result is the visible/hidden partition for one width budget. The two
// sets are disjoint, cover every input index exactly once, and are
// sorted ascending by original column index.
type Result struct {
	Visible []int
	Hidden  []int
}

// Equal reports whether two results describe the same partition. The
// orchestrator uses it to short-circuit redundant re-applies.
func (r Result) Equal(o Result) bool {
	return equalInts(r.Visible, o.Visible) && equalInts(r.Hidden, o.Hidden)
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Calculate partitions the entries into visible and hidden sets for the
// given width budget (terminal cells, already reduced for chrome by the
// caller).
//
// Entries are admitted most-important-first: never-hide entries ahead of
// everything, then ascending priority value, ties broken by original
// index. Never-hide entries are always admitted and their width always
// counts against the budget. Other entries are admitted while the
// running total stays within budget; the first rejection closes
// admission for every later non-never-hide entry, which keeps visibility
// monotonic in the budget.
//
// The function is pure and deterministic: identical inputs produce
// identical, identically-ordered results.
func Calculate(entries []Entry, budget int) Result {
	res := Result{Visible: []int{}, Hidden: []int{}}
	if len(entries) == 0 {
		return res
	}

	order := make([]Entry, len(entries))
	copy(order, entries)
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		an, bn := a.Priority >= NeverHide, b.Priority >= NeverHide
		if an != bn {
			return an
		}
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.Index < b.Index
	})

	used := 0
	closed := false
	for _, e := range order {
		switch {
		case e.Priority >= NeverHide:
			used += e.MinWidth
			res.Visible = append(res.Visible, e.Index)
		case !closed && used+e.MinWidth <= budget:
			used += e.MinWidth
			res.Visible = append(res.Visible, e.Index)
		default:
			closed = true
			res.Hidden = append(res.Hidden, e.Index)
		}
	}

	// Consumers expect original column order, not admission order.
	sort.Ints(res.Visible)
	sort.Ints(res.Hidden)
	return res
}
