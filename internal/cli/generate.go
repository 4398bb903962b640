package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	kolamio "github.com/kolamstudio/kolam/pkg/io"
	"github.com/kolamstudio/kolam/pkg/kolam"
	"github.com/kolamstudio/kolam/pkg/pipeline"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		flags       synthFlags
		requestPath string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Synthesize a kolam pattern",
		Long: `Synthesize a kolam pattern and render it.

Settings are layered: built-in defaults, then config.toml [render], then a
TOML request file (--request), then flags. Unknown archetypes are drawn with
the geometric generator and reported.

Results are cached locally for faster subsequent runs.`,
		Example: `  kolam generate -a lotus -n 8 -g 11
  kolam generate -a star -s rotational -c 7 -f svg,png -o star
  kolam generate --request festival.toml
  kolam generate -i`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.Config.baseOptions()
			output := ""
			if requestPath != "" {
				rf, err := kolamio.LoadRequestFile(requestPath)
				if err != nil {
					return err
				}
				output = applyRequestFile(&opts, rf)
			}
			opts = flags.options(cmd, opts)
			if flags.output != "" {
				output = flags.output
			}

			if interactive {
				a, ok, err := pickArchetype()
				if err != nil {
					return err
				}
				if !ok {
					printInfo("Cancelled")
					return nil
				}
				opts.Archetype = string(a)
			}
			return c.runSynthesis(cmd.Context(), opts, output)
		},
	}

	flags.registerRequest(cmd)
	flags.registerRender(cmd)
	cmd.Flags().StringVarP(&requestPath, "request", "r", "", "TOML request file")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick the archetype interactively")

	return cmd
}

// runSynthesis executes the pipeline and writes the artifacts.
func (c *CLI) runSynthesis(ctx context.Context, opts pipeline.Options, output string) error {
	opts.Logger = c.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, opts.NoCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	quiet := output == "-"
	spinner := newSpinnerWithContext(ctx, "Synthesizing...")
	if !quiet {
		spinner.Start()
		defer narrate(spinner)()
	}

	res, err := runner.Execute(ctx, opts)
	if !quiet {
		if err != nil {
			spinner.StopWithError("Generation failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}

	for _, co := range res.Coerced {
		c.Logger.Warn("guidance coerced", "field", co.Field, "reason", co.Reason)
	}

	req := res.Request
	paths, err := c.writeArtifacts(artifactWriteParams{
		artifacts: res.Artifacts,
		formats:   opts.Formats,
		output:    output,
		fallback:  fmt.Sprintf("kolam-%s-%d", strings.ToLower(string(archetypeLabel(res))), req.GridSize),
		cacheHit:  res.CacheInfo.RenderHit,
	})
	if err != nil || quiet {
		return err
	}

	if res.Pattern.Fallback {
		printWarning("Unknown archetype %q, drew a geometric pattern", res.Pattern.Requested)
	}
	printSuccess("Generated %s kolam", StyleHighlight.Render(string(archetypeLabel(res))))
	printStats(res.Stats.Dots, res.Stats.Connections, res.CacheInfo.PatternHit)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// archetypeLabel names a result by the archetype that was asked for, so
// aliases such as traditional keep their name. Unknown names fall back to
// the archetype that was drawn.
func archetypeLabel(res *pipeline.Result) kolam.Archetype {
	if res.Pattern.Fallback || res.Request.Archetype == "" {
		return res.Pattern.Archetype
	}
	return res.Request.Archetype
}
