package grid

import (
	"sort"
	"strings"
)

// InferDescriptors derives a column descriptor list from row data when
// the caller supplies none: one column per data key, in first-seen order
// across all rows so later rows can still contribute new keys. Every
// inferred column is orderable and left to the width/priority heuristics.
func InferDescriptors(rows []map[string]any) []Descriptor {
	var keys []string
	seen := map[string]bool{}
	for _, row := range rows {
		for _, k := range orderedKeys(row) {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}

	cols := make([]Descriptor, len(keys))
	for i, k := range keys {
		cols[i] = Descriptor{
			Index:     i,
			Title:     TitleForKey(k),
			DataKey:   k,
			Orderable: true,
		}
	}
	return cols
}

// WithRowNumbers prepends the synthetic row-number column and shifts the
// remaining indices. The column is non-orderable, so the priority
// heuristic pins it visible.
func WithRowNumbers(cols []Descriptor) []Descriptor {
	out := make([]Descriptor, 0, len(cols)+1)
	out = append(out, Descriptor{
		Index:         0,
		Title:         "#",
		DataKey:       RowIndexKey,
		DeclaredWidth: "4",
		Orderable:     false,
	})
	for _, c := range cols {
		c.Index++
		out = append(out, c)
	}
	return out
}

// TitleForKey turns a data key into a human-facing column title:
// underscores become spaces and each word is capitalized.
func TitleForKey(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	if len(words) == 0 {
		return key
	}
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// orderedKeys returns map keys in a stable order. Go maps do not iterate
// deterministically, so inference sorts keys per row; the cross-row
// first-seen rule above then fixes the overall column order.
func orderedKeys(row map[string]any) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
