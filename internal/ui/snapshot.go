package ui

// Snapshot renders the grid once at the given dimensions without running an
// interactive program. Used by the CLI's non-interactive mode and useful
// for golden tests: the full recomputation sequence runs synchronously, so
// the output reflects the visibility that width would produce live.
func (m *Model) Snapshot(width, height int) string {
	m.layout.SetDimensions(width, height)
	m.reflow()
	return m.View()
}
