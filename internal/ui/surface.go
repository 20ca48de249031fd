package ui

import (
	"github.com/oakwood-commons/gridx/internal/grid"
	"github.com/oakwood-commons/gridx/internal/render"
)

// CellKind distinguishes data cells, which visibility applies to, from
// control cells (selection markers, expand toggles), which it never touches.
type CellKind int

const (
	CellData CellKind = iota
	CellControl
)

// Cell is one rendered cell on the surface. Hidden cells keep their content;
// hiding is a draw-time decision, not a data mutation.
type Cell struct {
	Content string
	Hidden  bool
	Kind    CellKind
}

// DetailPair is one label/value line inside an expanded detail row.
type DetailPair struct {
	Label string
	Value string
}

// Row is a rendered row. Detail rows are synthetic: they carry Pairs instead
// of per-column cells and span the full table width when drawn.
type Row struct {
	Cells      []Cell
	OwnerIndex int  // record index of the owning data row
	Detail     bool // synthetic detail row inserted below its owner
	Expanded   bool // data row currently showing a detail row
	Pairs      []DetailPair
}

// Surface is the retained cell grid the visibility result is applied to.
// It mirrors the drawable table: header, optional per-column search row,
// body rows (with detail rows interleaved) and an optional footer row.
type Surface struct {
	Columns      []grid.Descriptor
	Records      []map[string]any
	Header       Row
	Search       *Row
	Body         []Row
	Footer       *Row
	HasSelection bool
}

// cellOffset is how far data-column index i sits from the start of a row's
// cell slice. A leading selection column shifts every position by one.
func (s *Surface) cellOffset() int {
	if s.HasSelection {
		return 1
	}
	return 0
}

// BuildSurface renders records into a fresh surface. Cell content goes
// through each column's render function via render.DisplayValue, so the
// surface and the detail rows always agree on display values.
func BuildSurface(cols []grid.Descriptor, records []map[string]any, hasSelection bool) *Surface {
	s := &Surface{
		Columns:      cols,
		Records:      records,
		HasSelection: hasSelection,
	}

	s.Header = Row{Cells: s.newCellRow()}
	for i, c := range cols {
		s.Header.Cells[i+s.cellOffset()].Content = c.Title
	}

	for ri, rec := range records {
		row := Row{Cells: s.newCellRow(), OwnerIndex: ri}
		for ci, c := range cols {
			ctx := render.Context{Row: rec, RowIndex: ri, DataKey: c.DataKey}
			var raw any
			if c.DataKey == grid.RowIndexKey {
				raw = ri + 1
			} else {
				raw = rec[c.DataKey]
			}
			row.Cells[ci+s.cellOffset()].Content = render.DisplayValue(raw, ctx, c.Render)
		}
		s.Body = append(s.Body, row)
	}
	return s
}

// newCellRow allocates a cell slice sized for the column count plus the
// selection column, with the control cell pre-marked.
func (s *Surface) newCellRow() []Cell {
	cells := make([]Cell, len(s.Columns)+s.cellOffset())
	if s.HasSelection {
		cells[0].Kind = CellControl
	}
	return cells
}

// AttachSearchRow adds the secondary per-column search header row. It is
// kept in sync with column visibility like any other row.
func (s *Surface) AttachSearchRow() {
	row := Row{Cells: s.newCellRow()}
	s.Search = &row
}

// SetFooter installs a footer row with one value per data column.
func (s *Surface) SetFooter(values []string) {
	row := Row{Cells: s.newCellRow()}
	for i := range s.Columns {
		if i < len(values) {
			row.Cells[i+s.cellOffset()].Content = values[i]
		}
	}
	s.Footer = &row
}

// Apply makes the surface match a visibility result. All data cells are
// reset to visible first, then exactly the hidden indices are hidden, across
// the header, the search row, every body row and the footer. Incremental
// toggling without the reset would leak stale hidden state after a data
// reload replaces the body rows.
func (s *Surface) Apply(res grid.Result) {
	rows := s.allCellRows()
	for _, row := range rows {
		for i := range row.Cells {
			if row.Cells[i].Kind == CellData {
				row.Cells[i].Hidden = false
			}
		}
	}
	off := s.cellOffset()
	for _, idx := range res.Hidden {
		pos := idx + off
		for _, row := range rows {
			if pos >= 0 && pos < len(row.Cells) && row.Cells[pos].Kind == CellData {
				row.Cells[pos].Hidden = true
			}
		}
	}
}

// allCellRows collects every row visibility applies to. Detail rows span
// all columns and are skipped.
func (s *Surface) allCellRows() []*Row {
	rows := []*Row{&s.Header}
	if s.Search != nil {
		rows = append(rows, s.Search)
	}
	for i := range s.Body {
		if s.Body[i].Detail {
			continue
		}
		rows = append(rows, &s.Body[i])
	}
	if s.Footer != nil {
		rows = append(rows, s.Footer)
	}
	return rows
}

// DataRowAt returns the body index of the n-th data row, skipping detail
// rows, or -1 when out of range.
func (s *Surface) DataRowAt(n int) int {
	seen := 0
	for i := range s.Body {
		if s.Body[i].Detail {
			continue
		}
		if seen == n {
			return i
		}
		seen++
	}
	return -1
}

// DataRowCount is the number of data rows currently on the surface.
func (s *Surface) DataRowCount() int {
	n := 0
	for i := range s.Body {
		if !s.Body[i].Detail {
			n++
		}
	}
	return n
}
