// Package artifact models Maven artifact coordinates and reduces a
// dependency tree to a flat, deduplicated, sorted list.
//
// # Identity
//
// An [Artifact] is identified by its coordinate: the (groupId, artifactId,
// version) triple. Scope, type, classifier and the latest registry version
// do not take part in equality, ordering or deduplication. [Artifact.Key]
// builds the identity string used as the dedup map key.
//
// # Flattening
//
// [Flatten] walks every descendant of a root artifact depth-first in
// pre-order (a node before its children, children in declaration order).
// The root itself is not reported. When the same coordinate appears more
// than once, the first occurrence in that walk is kept and later ones are
// dropped, so the surviving scope is the one declared closest to the top
// of the tree. The result is sorted with [CompareFlat].
//
// # Filtering
//
// [Filter] drops artifacts that belong to the project's own namespace (see
// [BelongsTo]) and artifacts whose scope is not in [RuntimeScopes]:
//
//	flat := artifact.Flatten(root)
//	report := artifact.Filter(flat, root.GroupID)
package artifact
