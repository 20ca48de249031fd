package ui

import (
	"github.com/oakwood-commons/gridx/internal/grid"
	"github.com/oakwood-commons/gridx/internal/render"
)

// Toggle glyphs shown in the control cell of rows that can expand.
const (
	ToggleCollapsed = "+"
	ToggleExpanded  = "-"
)

// DetailPlaceholder is shown when a detail row ends up with nothing to
// display (every hidden column was internal or the hidden set emptied).
const DetailPlaceholder = "(nothing to show)"

// Details manages expand toggles and the synthetic detail rows that expose
// hidden-column values. It always reads the hidden set it was last Reset
// with, so detail content tracks the current visibility result.
type Details struct {
	surface *Surface
	hidden  []int
}

// NewDetails creates a controller bound to a surface.
func NewDetails(s *Surface) *Details {
	return &Details{surface: s}
}

// Hidden returns the hidden set from the last Reset.
func (d *Details) Hidden() []int { return d.hidden }

// HasToggles reports whether toggles are currently attached.
func (d *Details) HasToggles() bool {
	return len(d.hidden) > 0 && d.surface.HasSelection
}

// Reset removes every detail row and every toggle, then re-attaches toggles
// only if the new hidden set is non-empty. Called after each recomputation
// so the affordance never survives a visibility change it no longer matches.
func (d *Details) Reset(res grid.Result) {
	body := d.surface.Body[:0]
	for i := range d.surface.Body {
		if d.surface.Body[i].Detail {
			continue
		}
		row := d.surface.Body[i]
		row.Expanded = false
		body = append(body, row)
	}
	d.surface.Body = body

	d.hidden = append(d.hidden[:0], res.Hidden...)

	glyph := ""
	if d.HasToggles() {
		glyph = ToggleCollapsed
	}
	if d.surface.HasSelection {
		for i := range d.surface.Body {
			d.surface.Body[i].Cells[0].Content = glyph
		}
	}
}

// Toggle expands the data row at body index i, or collapses it if it is
// already expanded. No-op when toggles are not attached.
func (d *Details) Toggle(i int) {
	if !d.HasToggles() {
		return
	}
	if i < 0 || i >= len(d.surface.Body) || d.surface.Body[i].Detail {
		return
	}
	if d.surface.Body[i].Expanded {
		d.Collapse(i)
	} else {
		d.Expand(i)
	}
}

// Expand inserts a detail row immediately after the data row at body index
// i, listing the row's hidden-column values in ascending column order.
func (d *Details) Expand(i int) {
	if i < 0 || i >= len(d.surface.Body) {
		return
	}
	owner := &d.surface.Body[i]
	if owner.Detail || owner.Expanded {
		return
	}

	detail := Row{
		OwnerIndex: owner.OwnerIndex,
		Detail:     true,
		Pairs:      d.pairsFor(owner.OwnerIndex),
	}

	owner.Expanded = true
	owner.Cells[0].Content = ToggleExpanded

	body := make([]Row, 0, len(d.surface.Body)+1)
	body = append(body, d.surface.Body[:i+1]...)
	body = append(body, detail)
	body = append(body, d.surface.Body[i+1:]...)
	d.surface.Body = body
}

// Collapse removes the detail row following the data row at body index i.
// The sibling is removed only if it actually carries the detail tag.
func (d *Details) Collapse(i int) {
	if i < 0 || i >= len(d.surface.Body) {
		return
	}
	owner := &d.surface.Body[i]
	if owner.Detail {
		return
	}
	owner.Expanded = false
	if d.surface.HasSelection && d.HasToggles() {
		owner.Cells[0].Content = ToggleCollapsed
	}
	next := i + 1
	if next < len(d.surface.Body) && d.surface.Body[next].Detail {
		d.surface.Body = append(d.surface.Body[:next], d.surface.Body[next+1:]...)
	}
}

// pairsFor builds the label/value pairs for one record from the current
// hidden set. Display values come from the same render path as the table
// cells. The synthetic row-number column is skipped.
func (d *Details) pairsFor(recordIndex int) []DetailPair {
	if recordIndex < 0 || recordIndex >= len(d.surface.Records) {
		return nil
	}
	rec := d.surface.Records[recordIndex]

	var pairs []DetailPair
	for _, idx := range d.hidden {
		if idx < 0 || idx >= len(d.surface.Columns) {
			continue
		}
		col := d.surface.Columns[idx]
		if col.DataKey == grid.RowIndexKey {
			continue
		}
		ctx := render.Context{Row: rec, RowIndex: recordIndex, DataKey: col.DataKey}
		pairs = append(pairs, DetailPair{
			Label: col.Title,
			Value: render.DisplayValue(rec[col.DataKey], ctx, col.Render),
		})
	}
	return pairs
}
