package cli

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	kerrors "github.com/kolamstudio/kolam/pkg/errors"
	"github.com/kolamstudio/kolam/pkg/guidance"
	kolamio "github.com/kolamstudio/kolam/pkg/io"
	"github.com/kolamstudio/kolam/pkg/kolam"
	"github.com/kolamstudio/kolam/pkg/pipeline"
)

// promptCommand creates the prompt command.
func (c *CLI) promptCommand() *cobra.Command {
	var (
		flags        synthFlags
		guidancePath string
		random       bool
		category     string
		seed         uint64
		listOnly     bool
		savePath     string
	)

	cmd := &cobra.Command{
		Use:   "prompt [text]",
		Short: "Synthesize a kolam from a text description",
		Long: `Synthesize a kolam from a text description.

The prompt is scanned for an archetype ("lotus", "spiral"), a symmetry
("radial", "mirror"), a complexity ("intricate", "complexity 7") and an
element count ("8 petals"). Hints that are missing or out of range fall back
to defaults. Explicit flags override anything found in the prompt.

--guidance reads a JSON guidance record instead, for example a reply saved
from a language model; surrounding prose is ignored.`,
		Example: `  kolam prompt "an intricate lotus with 8 petals"
  kolam prompt --random --category floral
  kolam prompt --guidance reply.json -g 13
  kolam prompt --categories`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listOnly {
				printCatalog()
				return nil
			}

			opts := flags.options(cmd, c.Config.baseOptions())
			switch {
			case len(args) == 1:
				opts.Prompt = args[0]
			case random:
				if !cmd.Flags().Changed("seed") {
					seed = uint64(time.Now().UnixNano())
				}
				p, ok := guidance.Random(rand.New(rand.NewPCG(seed, seed)), category)
				if !ok {
					return kerrors.New(kerrors.ErrCodeInvalidInput, "unknown category %q (want one of: %s)",
						category, strings.Join(guidance.Categories(), ", "))
				}
				opts.Prompt = p
				printInfo("Prompt: %s", StyleValue.Render(p))
			case guidancePath == "":
				return kerrors.New(kerrors.ErrCodeInvalidInput, "a prompt, --random or --guidance is required")
			}

			if guidancePath != "" {
				data, err := os.ReadFile(guidancePath)
				if err != nil {
					return fmt.Errorf("read guidance: %w", err)
				}
				raw, err := guidance.ExtractRaw(data)
				if err != nil {
					c.Logger.Warn("guidance unreadable, using defaults", "path", guidancePath, "error", err)
					raw = guidance.Raw{}
				}
				opts.Guidance = raw
			}

			if savePath != "" {
				if err := saveRequest(savePath, opts); err != nil {
					return err
				}
				printFile(savePath)
				printNextStep("Replay with", "kolam generate --request "+savePath)
			}
			return c.runSynthesis(cmd.Context(), opts, flags.output)
		},
	}

	flags.registerRequest(cmd)
	flags.registerRender(cmd)
	cmd.Flags().StringVar(&guidancePath, "guidance", "", "JSON guidance record")
	cmd.Flags().BoolVar(&random, "random", false, "pick an example prompt")
	cmd.Flags().StringVar(&category, "category", "", "example category for --random")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for --random")
	cmd.Flags().BoolVar(&listOnly, "categories", false, "list example prompts by category")
	cmd.Flags().StringVar(&savePath, "save-request", "", "also save the prompt as a TOML request file")

	return cmd
}

// saveRequest writes opts as a request file that "generate --request" can
// replay. Unset fields stay unset so the prompt still decides them.
func saveRequest(path string, opts pipeline.Options) error {
	rf := kolamio.RequestFile{
		Request: kolam.Request{
			Archetype:    kolam.Archetype(opts.Archetype),
			Symmetry:     kolam.Symmetry(opts.Symmetry),
			Complexity:   opts.Complexity,
			ElementCount: opts.ElementCount,
			GridSize:     opts.GridSize,
		},
		Prompt:   opts.Prompt,
		Guidance: opts.Guidance,
		Render: kolamio.RenderSection{
			Formats: opts.Formats,
			Style:   opts.Style,
			VizType: opts.VizType,
		},
	}
	return kolamio.WriteRequestFile(rf, path)
}

// printCatalog prints the example prompts grouped by category.
func printCatalog() {
	for _, cat := range guidance.Categories() {
		fmt.Println(StyleTitle.Render(cat))
		for _, p := range guidance.Prompts(cat) {
			printDetail("%s", p)
		}
	}
}
