// Package filter implements row matching for the grid's search feature.
// A plain query is a case-insensitive substring match over the row's
// displayed cells; a query prefixed with "?" is compiled as a CEL
// expression and evaluated per row with the record bound to "_".
package filter

import (
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"
	celext "github.com/google/cel-go/ext"
)

// ExprPrefix switches a search query into CEL expression mode.
const ExprPrefix = "?"

// Filter matches data rows against a search query.
type Filter struct {
	query   string
	needle  string      // lowercased substring needle (plain mode)
	program cel.Program // compiled expression (CEL mode), nil otherwise
}

// New builds a filter for query. An empty query matches everything.
// CEL compile errors are returned so the UI can surface them in the
// status bar instead of silently matching nothing.
func New(query string) (*Filter, error) {
	f := &Filter{query: query}
	if expr, ok := strings.CutPrefix(query, ExprPrefix); ok {
		expr = strings.TrimSpace(expr)
		if expr == "" {
			return f, nil
		}
		prg, err := compile(expr)
		if err != nil {
			return nil, err
		}
		f.program = prg
		return f, nil
	}
	f.needle = strings.ToLower(strings.TrimSpace(query))
	return f, nil
}

// Query returns the original query string.
func (f *Filter) Query() string { return f.query }

// IsActive reports whether the filter constrains rows at all.
func (f *Filter) IsActive() bool {
	return f != nil && (f.needle != "" || f.program != nil)
}

// Match reports whether a row passes the filter. cells are the row's
// stringified display values (plain mode matches against what the user
// actually sees). Expression evaluation errors count as no match; a
// non-boolean expression result is truthy unless nil or false.
func (f *Filter) Match(row map[string]any, cells []string) bool {
	if !f.IsActive() {
		return true
	}
	if f.program != nil {
		out, _, err := f.program.Eval(map[string]any{"_": row})
		if err != nil {
			return false
		}
		switch v := out.Value().(type) {
		case bool:
			return v
		case nil:
			return false
		default:
			return true
		}
	}
	for _, c := range cells {
		if strings.Contains(strings.ToLower(c), f.needle) {
			return true
		}
	}
	return false
}

// compile parses and type-checks a CEL expression against the standard
// environment with the common extension libraries enabled.
func compile(expr string) (cel.Program, error) {
	env, err := cel.NewEnv(
		cel.Variable("_", cel.DynType),
		celext.Strings(),
		celext.Encoders(),
		celext.Lists(),
		celext.Math(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return prg, nil
}
