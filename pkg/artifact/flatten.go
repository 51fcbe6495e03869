package artifact

import "slices"

// Flatten returns every transitive dependency of root exactly once, sorted
// by [CompareFlat]. The root itself is excluded.
//
// Duplicate coordinates collapse to the first occurrence in a depth-first
// pre-order walk; the non-identity fields (scope, type, ...) of later
// occurrences are discarded. A root without children yields an empty slice.
func Flatten(root *Artifact) []FlatArtifact {
	out := []FlatArtifact{}
	seen := make(map[string]struct{})

	Walk(root, func(a *Artifact, _ int) bool {
		k := a.Key()
		if _, dup := seen[k]; !dup {
			seen[k] = struct{}{}
			out = append(out, a.Flat())
		}
		return true
	})

	slices.SortFunc(out, CompareFlat)
	return out
}

// Walk calls fn for every descendant of root in depth-first pre-order,
// passing the node's depth (direct children have depth 1). The walk stops
// early when fn returns false.
func Walk(root *Artifact, fn func(a *Artifact, depth int) bool) {
	var walk func(a *Artifact, depth int) bool
	walk = func(a *Artifact, depth int) bool {
		for _, child := range a.Children {
			if child == nil {
				continue
			}
			if !fn(child, depth) || !walk(child, depth+1) {
				return false
			}
		}
		return true
	}
	if root != nil {
		walk(root, 1)
	}
}

// Stats summarizes a tree's shape.
type Stats struct {
	Nodes    int // descendants of the root, duplicates included
	Unique   int // distinct coordinates among Nodes
	MaxDepth int // deepest level below the root
}

// TreeStats computes [Stats] for the descendants of root.
func TreeStats(root *Artifact) Stats {
	var s Stats
	seen := make(map[string]struct{})
	Walk(root, func(a *Artifact, depth int) bool {
		s.Nodes++
		s.MaxDepth = max(s.MaxDepth, depth)
		seen[a.Key()] = struct{}{}
		return true
	})
	s.Unique = len(seen)
	return s
}
