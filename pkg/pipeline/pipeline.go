// Package pipeline runs the itdepends report end to end.
//
// # Stages
//
//  1. parse: read the tree document into an artifact tree
//  2. flatten: deduplicate and sort every transitive dependency
//  3. filter: drop the project's own namespace and non-runtime scopes
//  4. enrich: look up latest versions on the registry (skipped offline)
//  5. report: render the CSV
//
// Every stage failure is fatal. The report is rendered into memory and only
// copied to the destination writer after all stages have succeeded, so a
// failed run never produces a truncated report.
//
// # Usage
//
//	client := registry.NewMavenCentral(registry.NewClient(0, nil), "")
//	runner := pipeline.NewRunner(registry.NewEnricher(client), logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Path: "deps.json"}, os.Stdout)
package pipeline

import (
	"time"

	"github.com/matzehuels/itdepends/pkg/artifact"
	"github.com/matzehuels/itdepends/pkg/tree"
)

// Stage names reported to logs and pipeline hooks.
const (
	StageParse   = "parse"
	StageFlatten = "flatten"
	StageFilter  = "filter"
	StageEnrich  = "enrich"
	StageReport  = "report"
)

// Options configures a single run.
type Options struct {
	Path              string      // tree document to read (required)
	Parser            tree.Parser // input format; nil selects by file extension
	Offline           bool        // skip registry enrichment
	Namespace         string      // further project namespace, excluded alongside the root's groupId
	ExcludeNamespaces []string    // additional namespaces left out of the report
}

// Result holds the outcome of a successful run.
type Result struct {
	Root      *artifact.Artifact      // parsed tree
	Artifacts []artifact.FlatArtifact // reported artifacts, in report order
	Namespace string                  // root groupId filtered out as the project's own namespace
	Stats     Stats
}

// Stats records counts and timings of a run.
type Stats struct {
	Tree      artifact.Stats
	Flattened int // unique coordinates before filtering
	Reported  int // artifacts in the report
	Enriched  int // artifacts with a known latest version
	Duration  time.Duration
}
