package pipeline

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/itdepends/pkg/artifact"
	"github.com/matzehuels/itdepends/pkg/errors"
	"github.com/matzehuels/itdepends/pkg/observability"
	"github.com/matzehuels/itdepends/pkg/report"
	"github.com/matzehuels/itdepends/pkg/tree"
)

// Enricher attaches latest versions to artifacts in place.
// [registry.Enricher] is the production implementation.
type Enricher interface {
	Enrich(ctx context.Context, arts []artifact.FlatArtifact) error
}

// Runner executes the report pipeline. It holds no per-run state.
type Runner struct {
	Enricher Enricher
	Logger   *log.Logger
}

// NewRunner creates a runner. A nil enricher makes every run offline; a
// nil logger falls back to log.Default().
func NewRunner(e Enricher, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Enricher: e, Logger: logger}
}

// Execute runs all stages and writes the CSV report to w.
// Nothing is written to w unless every stage succeeds.
func (r *Runner) Execute(ctx context.Context, opts Options, w io.Writer) (*Result, error) {
	if opts.Path == "" {
		return nil, errors.New(errors.ErrCodeInput, "no input file given")
	}
	start := time.Now()
	res := &Result{}

	err := r.stage(ctx, StageParse, func() (int, error) {
		root, err := tree.ReadFile(opts.Path, opts.Parser)
		if err != nil {
			return 0, err
		}
		res.Root = root
		res.Stats.Tree = artifact.TreeStats(root)
		return res.Stats.Tree.Nodes, nil
	})
	if err != nil {
		return nil, err
	}
	r.Logger.Info("Parsed dependency tree",
		"root", res.Root.Key(),
		"nodes", res.Stats.Tree.Nodes,
		"depth", res.Stats.Tree.MaxDepth)

	var flat []artifact.FlatArtifact
	err = r.stage(ctx, StageFlatten, func() (int, error) {
		flat = artifact.Flatten(res.Root)
		res.Stats.Flattened = len(flat)
		return len(flat), nil
	})
	if err != nil {
		return nil, err
	}

	res.Namespace = res.Root.GroupID
	extra := opts.ExcludeNamespaces
	if opts.Namespace != "" {
		extra = append([]string{opts.Namespace}, extra...)
	}
	err = r.stage(ctx, StageFilter, func() (int, error) {
		res.Artifacts = artifact.Filter(flat, res.Namespace)
		if len(extra) > 0 {
			res.Artifacts = artifact.ExcludeNamespaces(res.Artifacts, extra...)
		}
		return len(res.Artifacts), nil
	})
	if err != nil {
		return nil, err
	}
	r.Logger.Info("Flattened dependencies",
		"unique", res.Stats.Flattened,
		"reported", len(res.Artifacts),
		"namespace", res.Namespace)

	switch {
	case opts.Offline:
		r.Logger.Debug("Skipping registry lookups (offline)")
	case r.Enricher == nil:
		r.Logger.Warn("No registry configured, skipping latest version lookups")
	default:
		err := r.stage(ctx, StageEnrich, func() (int, error) {
			if err := r.Enricher.Enrich(ctx, res.Artifacts); err != nil {
				return 0, err
			}
			for _, a := range res.Artifacts {
				if a.LatestVersion != "" {
					res.Stats.Enriched++
				}
			}
			return res.Stats.Enriched, nil
		})
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	err = r.stage(ctx, StageReport, func() (int, error) {
		if err := report.WriteCSV(&buf, res.Artifacts); err != nil {
			return 0, err
		}
		if _, err := io.Copy(w, &buf); err != nil {
			return 0, errors.Wrap(errors.ErrCodeOutput, err, "write report")
		}
		return len(res.Artifacts), nil
	})
	if err != nil {
		return nil, err
	}

	res.Stats.Reported = len(res.Artifacts)
	res.Stats.Duration = time.Since(start)
	return res, nil
}

// stage runs fn as the named stage, reporting it to the pipeline hooks.
// fn returns the number of items the stage produced.
func (r *Runner) stage(ctx context.Context, name string, fn func() (int, error)) error {
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, name)
	start := time.Now()

	n, err := fn()
	elapsed := time.Since(start)
	hooks.OnStageComplete(ctx, name, n, elapsed, err)
	if err != nil {
		return err
	}
	r.Logger.Debug("Stage complete", "stage", name, "count", n, "duration", elapsed.Round(time.Microsecond))
	return nil
}
