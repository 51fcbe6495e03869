package registry

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/matzehuels/itdepends/pkg/artifact"
	"github.com/matzehuels/itdepends/pkg/observability"
)

const (
	// DefaultRequestInterval is the courtesy pause between two requests to
	// the shared public endpoint.
	DefaultRequestInterval = time.Second

	// DefaultMemoSize bounds the number of coordinates remembered per pass.
	DefaultMemoSize = 4096
)

// VersionSource resolves the latest published version of an artifact.
// An empty version with a nil error means "not published".
type VersionSource interface {
	LatestVersion(ctx context.Context, groupID, artifactID string) (string, error)
}

// Enricher attaches latest versions to flattened artifacts.
type Enricher struct {
	source   VersionSource
	interval time.Duration
	memoSize int
	logger   *log.Logger
	sleep    func(ctx context.Context, d time.Duration) error
}

// EnricherOption configures an [Enricher].
type EnricherOption func(*Enricher)

// WithInterval sets the pause between requests. Zero disables pacing.
func WithInterval(d time.Duration) EnricherOption {
	return func(e *Enricher) { e.interval = max(d, 0) }
}

// WithMemoSize bounds the in-run lookup memo. Values <= 0 keep the default.
func WithMemoSize(n int) EnricherOption {
	return func(e *Enricher) {
		if n > 0 {
			e.memoSize = n
		}
	}
}

// WithLogger sets the logger for per-artifact progress at debug level.
func WithLogger(l *log.Logger) EnricherOption {
	return func(e *Enricher) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEnricher creates an Enricher reading from src with
// [DefaultRequestInterval] pacing unless overridden.
func NewEnricher(src VersionSource, opts ...EnricherOption) *Enricher {
	e := &Enricher{
		source:   src,
		interval: DefaultRequestInterval,
		memoSize: DefaultMemoSize,
		logger:   log.Default(),
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Interval returns the configured pause between requests.
func (e *Enricher) Interval() time.Duration { return e.interval }

// Enrich sets LatestVersion on every element of arts, in order, one request
// at a time. It waits the configured interval before each request except
// the first.
//
// Requests are issued per distinct group:artifact rather than per element:
// an element whose coordinate was already looked up in this pass reuses that
// answer without a request or a pause. For N elements with D distinct
// coordinates a pass costs D requests and D-1 pauses.
//
// The pass is all-or-nothing: on the first error Enrich returns it and arts
// is left untouched, even for artifacts already looked up. Artifacts the
// registry does not know keep an empty LatestVersion.
func (e *Enricher) Enrich(ctx context.Context, arts []artifact.FlatArtifact) error {
	memo, err := lru.New[string, string](e.memoSize)
	if err != nil {
		return err
	}

	latest := make([]string, len(arts))
	requests := 0
	for i, a := range arts {
		coord := a.Coordinate()
		if v, ok := memo.Get(coord); ok {
			observability.Cache().OnCacheHit(ctx, "latest-version")
			latest[i] = v
			continue
		}
		observability.Cache().OnCacheMiss(ctx, "latest-version")

		if requests > 0 {
			if err := e.sleep(ctx, e.interval); err != nil {
				return err
			}
		}
		requests++

		e.logger.Debug("Fetching metadata", "group", a.GroupID, "artifact", a.ArtifactID)
		v, err := e.source.LatestVersion(ctx, a.GroupID, a.ArtifactID)
		if err != nil {
			return err
		}
		if v == "" {
			e.logger.Debug("No published version", "coordinate", coord)
		}
		memo.Add(coord, v)
		latest[i] = v
	}

	for i := range arts {
		arts[i].LatestVersion = latest[i]
	}
	e.logger.Info("Fetched latest versions", "artifacts", len(arts), "requests", requests)
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
