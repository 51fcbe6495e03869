package artifact

import (
	"cmp"
	"slices"
	"strings"
)

// Maven dependency scopes.
const (
	ScopeCompile  = "compile"
	ScopeRuntime  = "runtime"
	ScopeProvided = "provided"
	ScopeTest     = "test"
	ScopeSystem   = "system"
	ScopeImport   = "import"
)

// RuntimeScopes lists the scopes whose artifacts end up on the runtime
// classpath. Everything else is build-only or test-only.
var RuntimeScopes = []string{ScopeCompile, ScopeRuntime}

// Artifact is a node in a dependency tree.
//
// Only GroupID, ArtifactID and Version define identity. Children is owned by
// the tree; LatestVersion stays empty until registry enrichment sets it.
type Artifact struct {
	GroupID       string
	ArtifactID    string
	Version       string
	Scope         string
	Type          string
	Classifier    string
	Optional      bool
	LatestVersion string
	Children      []*Artifact
}

// FlatArtifact is an [Artifact] without its children, as produced by [Flatten].
type FlatArtifact struct {
	GroupID       string
	ArtifactID    string
	Version       string
	Scope         string
	Type          string
	Classifier    string
	Optional      bool
	LatestVersion string
}

// Key returns the identity key "group:artifact:version".
func (a *Artifact) Key() string { return key(a.GroupID, a.ArtifactID, a.Version) }

// Equal reports whether a and b have the same coordinate.
func (a *Artifact) Equal(b *Artifact) bool { return a.Key() == b.Key() }

// BelongsTo reports whether a's group is namespace or one of its
// dot-separated descendants.
func (a *Artifact) BelongsTo(namespace string) bool { return BelongsTo(a.GroupID, namespace) }

// IsRuntime reports whether a's scope is one of [RuntimeScopes].
func (a *Artifact) IsRuntime() bool { return IsRuntimeScope(a.Scope) }

// Flat returns a copy of a with the children stripped.
func (a *Artifact) Flat() FlatArtifact {
	return FlatArtifact{
		GroupID:       a.GroupID,
		ArtifactID:    a.ArtifactID,
		Version:       a.Version,
		Scope:         a.Scope,
		Type:          a.Type,
		Classifier:    a.Classifier,
		Optional:      a.Optional,
		LatestVersion: a.LatestVersion,
	}
}

// Key returns the identity key "group:artifact:version".
func (f FlatArtifact) Key() string { return key(f.GroupID, f.ArtifactID, f.Version) }

// Coordinate returns "group:artifact", the key used for registry lookups.
// Artifacts that differ only in version share a coordinate.
func (f FlatArtifact) Coordinate() string { return f.GroupID + ":" + f.ArtifactID }

// BelongsTo reports whether f's group is namespace or one of its
// dot-separated descendants.
func (f FlatArtifact) BelongsTo(namespace string) bool { return BelongsTo(f.GroupID, namespace) }

// IsRuntime reports whether f's scope is one of [RuntimeScopes].
func (f FlatArtifact) IsRuntime() bool { return IsRuntimeScope(f.Scope) }

// String returns the identity key.
func (f FlatArtifact) String() string { return f.Key() }

// BelongsTo reports whether group equals namespace or is a strict
// dot-separated descendant of it. "com.acme.core" belongs to "com.acme",
// "com.acmex" does not. An empty namespace matches nothing.
func BelongsTo(group, namespace string) bool {
	if namespace == "" {
		return false
	}
	if group == namespace {
		return true
	}
	return strings.HasPrefix(group, namespace) && group[len(namespace)] == '.'
}

// IsRuntimeScope reports whether scope is one of [RuntimeScopes].
func IsRuntimeScope(scope string) bool {
	return slices.Contains(RuntimeScopes, scope)
}

// Compare orders artifacts by group, then artifact, then version.
func Compare(a, b *Artifact) int {
	return compareCoords(a.GroupID, a.ArtifactID, a.Version, b.GroupID, b.ArtifactID, b.Version)
}

// CompareFlat orders flat artifacts by group, then artifact, then version.
// It is a total order on coordinates and is suitable for [slices.SortFunc].
func CompareFlat(a, b FlatArtifact) int {
	return compareCoords(a.GroupID, a.ArtifactID, a.Version, b.GroupID, b.ArtifactID, b.Version)
}

func compareCoords(g1, a1, v1, g2, a2, v2 string) int {
	return cmp.Or(
		strings.Compare(g1, g2),
		strings.Compare(a1, a2),
		strings.Compare(v1, v2),
	)
}

func key(group, artifact, version string) string {
	return group + ":" + artifact + ":" + version
}
