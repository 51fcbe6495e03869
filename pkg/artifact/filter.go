package artifact

// Filter returns the artifacts of arts that are external runtime
// dependencies: those whose group does not belong to namespace and whose
// scope is in [RuntimeScopes]. The relative order of survivors is kept and
// arts is not modified.
func Filter(arts []FlatArtifact, namespace string) []FlatArtifact {
	out := make([]FlatArtifact, 0, len(arts))
	for _, a := range arts {
		if a.BelongsTo(namespace) || !a.IsRuntime() {
			continue
		}
		out = append(out, a)
	}
	return out
}

// ExcludeNamespaces drops every artifact belonging to any of namespaces.
func ExcludeNamespaces(arts []FlatArtifact, namespaces ...string) []FlatArtifact {
	out := make([]FlatArtifact, 0, len(arts))
outer:
	for _, a := range arts {
		for _, ns := range namespaces {
			if a.BelongsTo(ns) {
				continue outer
			}
		}
		out = append(out, a)
	}
	return out
}
