package prefabs

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance is the largest edit distance offered as a suggestion.
const maxSuggestDistance = 3

// Unmatched is a map object whose name has no catalog entry. Such objects can
// be hit but never selected.
type Unmatched struct {
	Object string
	// Suggestion is the closest catalog name, or "" when nothing is close.
	Suggestion string
}

// Catalog is the part of area.Catalog the check needs.
type Catalog interface {
	Names() []string
}

// Unmatched lists map objects that no catalog name matches exactly, in map
// order.
func (s *MapSpec) Unmatched(cat Catalog) []Unmatched {
	if s == nil {
		return nil
	}
	var names []string
	if cat != nil {
		names = cat.Names()
	}
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}

	var out []Unmatched
	for _, obj := range s.Objects {
		if obj.Name == "" || known[obj.Name] {
			continue
		}
		out = append(out, Unmatched{Object: obj.Name, Suggestion: closest(obj.Name, names)})
	}
	return out
}

func closest(name string, names []string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	lower := strings.ToLower(name)
	for _, n := range names {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(n))
		if d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}
