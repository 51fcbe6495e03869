// Package cli implements the itdepends command-line interface.
//
// The single command reads a dependency tree export, prints the flattened
// external runtime dependencies as CSV on stdout and logs progress on
// stderr:
//
//	itdepends deps.json             # with latest versions from Maven Central
//	itdepends --offline deps.json   # no network access
//
// Settings beyond the flags come from [config.Load].
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/itdepends/pkg/buildinfo"
	"github.com/matzehuels/itdepends/pkg/config"
	"github.com/matzehuels/itdepends/pkg/pipeline"
	"github.com/matzehuels/itdepends/pkg/registry"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
	out    io.Writer
}

// New creates a CLI that writes the report to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the itdepends command.
func (c *CLI) RootCommand() *cobra.Command {
	var offline bool

	root := &cobra.Command{
		Use:   "itdepends <tree-file>",
		Short: "List the external runtime dependencies of a Maven project",
		Long: `itdepends flattens a Maven dependency tree into the unique set of external
runtime dependencies and prints them as CSV: group,artifact,version,latestVersion.

Generate the input with:
  mvn dependency:tree -DoutputType=json -DoutputFile=deps.json

Latest versions are looked up on Maven Central one artifact at a time, pausing
between requests. Use --offline to skip the lookups.`,
		Version:       buildinfo.Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.analyze(ctx, args[0], offline)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.Flags().BoolVar(&offline, "offline", false, "skip latest-version lookups on the registry")

	return root
}

func (c *CLI) analyze(ctx context.Context, path string, offline bool) error {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var enricher pipeline.Enricher
	if !offline {
		if err := cfg.ValidateRegistry(); err != nil {
			return err
		}
		enricher = newEnricher(cfg, logger)
	}

	p := newProgress(logger)
	res, err := pipeline.NewRunner(enricher, logger).Execute(ctx, pipeline.Options{
		Path:              path,
		Offline:           offline,
		Namespace:         cfg.Namespace,
		ExcludeNamespaces: cfg.ExcludeNamespaces,
	}, c.out)
	if err != nil {
		return err
	}

	p.done(fmt.Sprintf("Reported %d of %d dependencies", res.Stats.Reported, res.Stats.Flattened))
	return nil
}

func newEnricher(cfg config.Config, logger *log.Logger) *registry.Enricher {
	var headers map[string]string
	if cfg.UserAgent != "" {
		headers = map[string]string{"User-Agent": cfg.UserAgent}
	}
	client := registry.NewMavenCentral(registry.NewClient(cfg.Timeout.Duration, headers), cfg.RegistryURL)
	logger.Debug("Using registry", "url", client.BaseURL(), "interval", cfg.RequestInterval.Duration)
	return registry.NewEnricher(client,
		registry.WithInterval(cfg.RequestInterval.Duration),
		registry.WithMemoSize(cfg.MemoSize),
		registry.WithLogger(logger),
	)
}
