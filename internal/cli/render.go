package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	kolamio "github.com/kolamstudio/kolam/pkg/io"
	"github.com/kolamstudio/kolam/pkg/kolam"
	"github.com/kolamstudio/kolam/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	flags       synthFlags
	autoConnect bool   // rebuild connections from dot proximity
	hint        string // archetype hint for auto-connect thresholds
}

// renderCommand creates the render command for drawing an exported pattern.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [pattern.json]",
		Short: "Render an exported pattern",
		Long: `Render a pattern document produced by "generate -f json" or by an editor.

Dots and connections that fall outside the grid are dropped with a warning.
--auto-connect replaces the connections with proximity links chosen by the
pattern's archetype (or --hint), which suits dot sets without strokes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ropts := opts.flags.options(cmd, c.Config.baseOptions())
			return c.runRender(cmd.Context(), args[0], ropts, &opts)
		},
	}

	opts.flags.registerRender(cmd)
	cmd.Flags().BoolVar(&opts.autoConnect, "auto-connect", false, "rebuild connections from dot proximity")
	cmd.Flags().StringVar(&opts.hint, "hint", "", "archetype hint for --auto-connect (default: the pattern's archetype)")

	return cmd
}

// runRender loads the pattern and renders it.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, ro *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	p, dropped, err := kolamio.ImportJSON(input)
	if err != nil {
		return err
	}
	if dropped.Any() {
		printWarning("Dropped %d dots and %d connections outside the %dx%d grid", dropped.Dots, dropped.Connections, p.GridSize, p.GridSize)
	}
	logger.Debug("loaded pattern", "dots", len(p.Dots), "connections", len(p.Connections), "grid", p.GridSize)

	if ro.autoConnect {
		hint := p.Archetype
		if ro.hint != "" {
			hint, _ = kolam.ParseArchetype(ro.hint)
		}
		p.Connections = kolam.AutoConnect(p.Dots, p.GridSize, hint)
		logger.Info("auto-connected dots", "hint", hint, "connections", len(p.Connections))
	}

	opts.Logger = c.Logger
	if err := opts.ValidateForRender(); err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, opts.NoCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	artifacts, _, hit, err := runner.RenderWithCacheInfo(ctx, p, opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	paths, err := c.writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		output:    ro.flags.output,
		fallback:  strings.TrimSuffix(input, filepath.Ext(input)),
		cacheHit:  hit,
	})
	if err != nil || ro.flags.output == "-" {
		return err
	}
	prog.done("Rendered " + input)
	printStats(len(p.Dots), len(p.Connections), hit)
	for _, path := range paths {
		printFile(path)
	}
	return nil
}
