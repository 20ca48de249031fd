package grid

import "math"

// Unbounded marks a tier with no upper width bound. The last tier of
// every table must be unbounded so resolution is total.
const Unbounded = math.MaxInt

// Tier is one named breakpoint with an inclusive upper width bound.
type Tier struct {
	Name string
	Max  int
}

// Table is an ordered breakpoint list, narrowest bound first.
type Table []Tier

// DefaultTable is the stock breakpoint table in terminal cells. It is
// fixed by design; per-deployment tables are a future extension.
func DefaultTable() Table {
	return Table{
		{Name: "compact", Max: 80},
		{Name: "medium", Max: 120},
		{Name: "wide", Max: Unbounded},
	}
}

// Resolve returns the name of the first tier whose bound covers width,
// scanning narrowest-first. It never fails: negative widths resolve like
// zero, and a width beyond every bounded tier lands on the last tier.
func (t Table) Resolve(width int) string {
	if len(t) == 0 {
		return ""
	}
	if width < 0 {
		width = 0
	}
	for _, tier := range t {
		if tier.Max >= width {
			return tier.Name
		}
	}
	return t[len(t)-1].Name
}
