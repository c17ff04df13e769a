package connector

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByLabel returns the connectors ordered by label using locale-aware
// collation. The sort is stable and the input slice is left unmodified.
func SortByLabel(connectors []Connector) []Connector {
	sorted := make([]Connector, len(connectors))
	copy(sorted, connectors)

	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.CompareString(sorted[i].Label, sorted[j].Label) < 0
	})
	return sorted
}
