// Package render resolves cell values into display strings. The grid core
// treats custom cell renderers as opaque callables; everything else falls
// back to Stringify so arbitrary decoded data stays presentable.
package render

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Context carries the row-level information a cell renderer may consult.
type Context struct {
	Row      map[string]any // The full data record the cell belongs to
	RowIndex int            // Position of the record in the current data set
	DataKey  string         // The column's data key
}

// CellFunc formats a single cell value for display. Implementations are
// caller-supplied and never inspected by the grid.
type CellFunc func(value any, ctx Context) string

// DisplayValue resolves the display string for one cell: the column's
// renderer when present, otherwise the Stringify fallback. This is the
// single path both the table body and the detail rows go through.
func DisplayValue(value any, ctx Context, fn CellFunc) string {
	if fn != nil {
		return fn(value, ctx)
	}
	return Stringify(value)
}

// Stringify returns a single-line string representation of v suitable for
// a table cell. Maps, slices, and structs render as compact JSON so nested
// data stays readable in one column.
func Stringify(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return flattenScalarString(t)
	case bool, int, int64, float64:
		return fmt.Sprint(t)
	case map[string]any, []any:
		if b, err := json.Marshal(t); err == nil {
			return string(b)
		}
		return fmt.Sprintf("%v", t)
	default:
		// Reflection covers native Go types handed in by embedding callers
		// (structs, typed maps/slices) so they don't render as "map[k:v]".
		rv := reflect.ValueOf(v)
		switch rv.Kind() { //nolint:exhaustive // only composite types need JSON marshaling
		case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
			if b, err := json.Marshal(v); err == nil {
				return string(b)
			}
		case reflect.Ptr:
			if !rv.IsNil() {
				elem := rv.Elem()
				if elem.Kind() == reflect.Struct || elem.Kind() == reflect.Map || elem.Kind() == reflect.Slice {
					if b, err := json.Marshal(v); err == nil {
						return string(b)
					}
				}
			}
		}
		return fmt.Sprintf("%v", v)
	}
}

// flattenScalarString keeps scalar strings single-line so table rows never
// break the cell grid.
func flattenScalarString(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\t", " ")
	return s
}
