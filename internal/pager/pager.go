// Package pager applies row-window limiting to the grid's data set:
// limit/offset slicing for pagination and tail for "last N records".
package pager

import "fmt"

// Config holds the row-limiting parameters.
type Config struct {
	Limit  int // Show only this many rows (0 = unlimited)
	Offset int // Skip the first N rows (0 = no skip)
	Tail   int // Show only the last N rows (0 = disabled); mutually exclusive with Limit
}

// Validate checks for conflicting parameter combinations.
// Rules:
// - Limit and Tail are mutually exclusive
// - All numeric values must be non-negative
func (c Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("--limit must be non-negative, got %d", c.Limit)
	}
	if c.Offset < 0 {
		return fmt.Errorf("--offset must be non-negative, got %d", c.Offset)
	}
	if c.Tail < 0 {
		return fmt.Errorf("--tail must be non-negative, got %d", c.Tail)
	}
	if c.Limit > 0 && c.Tail > 0 {
		return fmt.Errorf("--limit and --tail are mutually exclusive")
	}
	return nil
}

// IsActive returns true if any limiting is configured.
func (c Config) IsActive() bool {
	return c.Limit > 0 || c.Offset > 0 || c.Tail > 0
}

// Apply returns the configured window of rows. The input slice is never
// mutated; the result aliases it.
func (c Config) Apply(rows []map[string]any) []map[string]any {
	start, end := c.Window(len(rows))
	return rows[start:end]
}

// Window returns the [start, end) bounds of the configured window for a
// slice of the given length, so callers can slice parallel data the same
// way Apply slices rows.
func (c Config) Window(length int) (start, end int) {
	if !c.IsActive() {
		return 0, length
	}

	if c.Tail > 0 {
		start = length - c.Tail
		if start < 0 {
			start = 0
		}
		return start, length
	}

	start = c.Offset
	if start > length {
		start = length
	}
	end = length
	if c.Limit > 0 {
		end = start + c.Limit
		if end > length {
			end = length
		}
	}
	if start > end {
		start = end
	}
	return start, end
}

// NextPage advances the offset by one page (the configured limit).
// A no-op when no limit is set or the next page would be empty.
func (c Config) NextPage(total int) Config {
	if c.Limit <= 0 {
		return c
	}
	if c.Offset+c.Limit < total {
		c.Offset += c.Limit
	}
	return c
}

// PrevPage rewinds the offset by one page, clamping at zero.
func (c Config) PrevPage() Config {
	if c.Limit <= 0 {
		return c
	}
	c.Offset -= c.Limit
	if c.Offset < 0 {
		c.Offset = 0
	}
	return c
}

// PageInfo returns the 1-based current page and total page count for
// status display. Without a limit there is a single page.
func (c Config) PageInfo(total int) (page, pages int) {
	if c.Limit <= 0 || total == 0 {
		return 1, 1
	}
	pages = (total + c.Limit - 1) / c.Limit
	page = c.Offset/c.Limit + 1
	if page > pages {
		page = pages
	}
	return page, pages
}
