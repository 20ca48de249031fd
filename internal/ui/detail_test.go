package ui

import (
	"testing"

	"github.com/oakwood-commons/gridx/internal/grid"
)

func detailFixture(t *testing.T) (*Surface, *Details) {
	t.Helper()
	s := BuildSurface(testColumns(), testRecords(), true)
	d := NewDetails(s)
	return s, d
}

func countDetailRows(s *Surface) int {
	n := 0
	for i := range s.Body {
		if s.Body[i].Detail {
			n++
		}
	}
	return n
}

func TestExpandCollapseLifecycle(t *testing.T) {
	s, d := detailFixture(t)
	d.Reset(grid.Result{Visible: []int{0}, Hidden: []int{1, 2}})

	d.Expand(0)
	if got := countDetailRows(s); got != 1 {
		t.Fatalf("detail row count after expand = %d, want 1", got)
	}
	detail := s.Body[1]
	if !detail.Detail {
		t.Fatal("row after the owner should carry the detail tag")
	}
	want := []DetailPair{
		{Label: "Email", Value: "a@b.com"},
		{Label: "Phone", Value: "555-1234"},
	}
	if len(detail.Pairs) != len(want) {
		t.Fatalf("pair count = %d, want %d", len(detail.Pairs), len(want))
	}
	for i, p := range want {
		if detail.Pairs[i] != p {
			t.Errorf("pair %d = %+v, want %+v", i, detail.Pairs[i], p)
		}
	}
	if !s.Body[0].Expanded {
		t.Error("owner row should be tagged expanded")
	}
	if got := s.Body[0].Cells[0].Content; got != ToggleExpanded {
		t.Errorf("toggle glyph = %q, want %q", got, ToggleExpanded)
	}

	d.Collapse(0)
	if got := countDetailRows(s); got != 0 {
		t.Errorf("detail row count after collapse = %d, want 0", got)
	}
	if s.Body[0].Expanded {
		t.Error("owner row should no longer be tagged expanded")
	}
	if got := s.Body[0].Cells[0].Content; got != ToggleCollapsed {
		t.Errorf("toggle glyph = %q, want %q", got, ToggleCollapsed)
	}
}

func TestToggleFlipsState(t *testing.T) {
	s, d := detailFixture(t)
	d.Reset(grid.Result{Visible: []int{0}, Hidden: []int{1, 2}})

	d.Toggle(0)
	if countDetailRows(s) != 1 {
		t.Fatal("first toggle should expand")
	}
	d.Toggle(0)
	if countDetailRows(s) != 0 {
		t.Fatal("second toggle should collapse")
	}
}

func TestToggleNoopWithoutHiddenColumns(t *testing.T) {
	s, d := detailFixture(t)
	d.Reset(grid.Result{Visible: []int{0, 1, 2}, Hidden: nil})

	d.Toggle(0)
	if countDetailRows(s) != 0 {
		t.Error("toggle with empty hidden set should do nothing")
	}
	if got := s.Body[0].Cells[0].Content; got != "" {
		t.Errorf("toggle glyph should be cleared, got %q", got)
	}
}

func TestToggleNoopWithoutSelectionColumn(t *testing.T) {
	s := BuildSurface(testColumns(), testRecords(), false)
	d := NewDetails(s)
	d.Reset(grid.Result{Visible: []int{0}, Hidden: []int{1, 2}})

	d.Toggle(0)
	if countDetailRows(s) != 0 {
		t.Error("toggles need a selection column to live in")
	}
}

func TestResetRemovesDetailRowsAndTogglesOnWiden(t *testing.T) {
	s, d := detailFixture(t)
	d.Reset(grid.Result{Visible: []int{0}, Hidden: []int{1, 2}})
	d.Expand(0)
	d.Expand(2) // second data row, now at body index 2

	// window widened, nothing hidden anymore
	d.Reset(grid.Result{Visible: []int{0, 1, 2}, Hidden: nil})

	if got := countDetailRows(s); got != 0 {
		t.Errorf("detail row count after reset = %d, want 0", got)
	}
	for i := range s.Body {
		if s.Body[i].Expanded {
			t.Errorf("body row %d still tagged expanded after reset", i)
		}
		if got := s.Body[i].Cells[0].Content; got != "" {
			t.Errorf("body row %d still carries toggle %q after reset", i, got)
		}
	}
}

func TestReExpandUsesNewHiddenSet(t *testing.T) {
	s, d := detailFixture(t)
	d.Reset(grid.Result{Visible: []int{0}, Hidden: []int{1, 2}})
	d.Expand(0)

	// width grew enough to show Email again; Phone stays hidden
	d.Reset(grid.Result{Visible: []int{0, 1}, Hidden: []int{2}})
	d.Expand(0)

	detail := s.Body[1]
	if len(detail.Pairs) != 1 || detail.Pairs[0].Label != "Phone" {
		t.Errorf("re-expanded pairs = %+v, want single Phone pair", detail.Pairs)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	s, d := detailFixture(t)
	res := grid.Result{Visible: []int{0}, Hidden: []int{1, 2}}

	d.Reset(res)
	d.Reset(res)

	if got := len(s.Body); got != 2 {
		t.Errorf("body row count after double reset = %d, want 2", got)
	}
	for i := range s.Body {
		if got := s.Body[i].Cells[0].Content; got != ToggleCollapsed {
			t.Errorf("row %d toggle = %q, want single %q", i, got, ToggleCollapsed)
		}
	}
}

func TestDetailSkipsRowNumberColumn(t *testing.T) {
	cols := grid.WithRowNumbers(testColumns())
	s := BuildSurface(cols, testRecords(), true)
	d := NewDetails(s)

	// hide the row-number column and Phone
	d.Reset(grid.Result{Visible: []int{1, 2}, Hidden: []int{0, 3}})
	d.Expand(0)

	detail := s.Body[1]
	if len(detail.Pairs) != 1 || detail.Pairs[0].Label != "Phone" {
		t.Errorf("pairs = %+v, want only the Phone pair", detail.Pairs)
	}
}

func TestExpandOutOfRangeIsNoop(t *testing.T) {
	s, d := detailFixture(t)
	d.Reset(grid.Result{Visible: []int{0}, Hidden: []int{1, 2}})

	d.Expand(-1)
	d.Expand(99)
	d.Collapse(-1)
	d.Collapse(99)

	if got := countDetailRows(s); got != 0 {
		t.Errorf("detail row count = %d, want 0", got)
	}
}
