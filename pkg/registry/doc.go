// Package registry looks up the latest published version of Maven
// artifacts on Maven Central's Solr search API.
//
// # Protocol
//
// One GET per (groupId, artifactId) pair:
//
//	https://search.maven.org/solrsearch/select?q=g:<group> AND a:<artifact>&rows=1&wt=json
//
// The response envelope is {"response": {"docs": [{"latestVersion": ...}]}}.
// Zero docs is a valid answer meaning the coordinate is not published (for
// example a private artifact); the version is left empty.
//
// # Sequencing
//
// [Enricher.Enrich] issues requests strictly one at a time in input order
// and pauses [DefaultRequestInterval] before every request except the
// first. The first failure aborts the whole pass and no artifact is
// updated. There are no retries.
//
// Lookups for a coordinate already answered in the same pass are served
// from a bounded in-memory memo and cost neither a request nor a pause.
// Nothing is persisted between runs.
//
// # Errors
//
// Transport failures and non-2xx statuses carry [errors.ErrCodeNetwork];
// bodies that do not match the envelope carry [errors.ErrCodeResponseFormat].
package registry
