package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/choromap/pkg/observability"
	"github.com/matzehuels/choromap/pkg/pipeline"
	"github.com/matzehuels/choromap/pkg/scale"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	config    string // TOML config file with data, thresholds, and mode sections
	output    string // output file path (or base path for multiple formats)
	formats   []string
	mode      string // annotation mode override: labels, bars, callouts
	legend    bool
	interact  bool
	noInt     bool // disable interactivity even if the config enables it
	bg        string
	rampFrom  string // generate the color list as a perceptual ramp
	rampTo    string
	rampSteps int
	noCache   bool
	refresh   bool
}

// renderCommand creates the render command for generating map artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{rampSteps: 5}

	cmd := &cobra.Command{
		Use:   "render [geometry.json]",
		Short: "Render a choropleth map to SVG, PNG, PDF, or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML config with data, thresholds, and annotation sections")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "annotation mode: labels, bars, callouts (default: inferred from config)")
	cmd.Flags().BoolVar(&opts.legend, "legend", false, "draw a color scale legend")
	cmd.Flags().BoolVar(&opts.interact, "interactive", false, "embed hover and selection behavior in the SVG")
	cmd.Flags().BoolVar(&opts.noInt, "no-interactive", false, "strip interactivity even if the config enables it")
	cmd.Flags().StringVar(&opts.bg, "background", "", "background fill color (hex)")
	cmd.Flags().StringVar(&opts.rampFrom, "ramp-from", "", "generate colors as a ramp starting at this hex color")
	cmd.Flags().StringVar(&opts.rampTo, "ramp-to", "", "ramp end color (hex)")
	cmd.Flags().IntVar(&opts.rampSteps, "ramp-steps", opts.rampSteps, "number of ramp colors")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when cached")

	return cmd
}

// runRender loads the geometry and config, executes the pipeline, and writes
// the requested artifacts.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()

	geo, err := c.loadGeometry(ctx, input)
	if err != nil {
		return err
	}
	c.Logger.Info("loaded geometry", "source", input, "regions", geo.Set.Len())

	pipeOpts, err := loadPipelineOptions(opts)
	if err != nil {
		return err
	}
	pipeOpts.Logger = c.Logger
	if err := pipeOpts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	p := newProgress(c.Logger)
	spinner := newSpinner(ctx, "Rendering map...")
	observability.SetPipelineHooks(stageHooks{spinner: spinner})
	defer observability.Reset()
	spinner.Start()
	result, err := runner.Execute(ctx, geo, pipeOpts)
	spinner.Stop()
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %d regions", result.Stats.RegionCount))

	base := outputBase(opts.output, input)
	for _, format := range pipeOpts.Formats {
		path := outputPath(base, opts.output, format, len(pipeOpts.Formats))
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	printSuccess("Rendered %s mode", pipeOpts.Mode)
	printStats(result.Stats.RegionCount, len(result.Artifacts), result.CacheInfo.RenderHit)
	if pipeOpts.Interactive {
		explore := "choromap explore " + input
		if opts.config != "" {
			explore += " -c " + opts.config
		}
		printNextStep("Explore in the terminal", explore)
	}
	return nil
}

// loadPipelineOptions decodes the TOML config (when given) and applies flag
// overrides on top.
func loadPipelineOptions(opts *renderOpts) (pipeline.Options, error) {
	var pipeOpts pipeline.Options
	if opts.config != "" {
		if _, err := toml.DecodeFile(opts.config, &pipeOpts); err != nil {
			return pipeOpts, fmt.Errorf("decode config %s: %w", opts.config, err)
		}
	}

	if opts.mode != "" {
		pipeOpts.Mode = opts.mode
	}
	pipeOpts.Formats = opts.formats
	if opts.legend {
		pipeOpts.Legend = true
	}
	if opts.interact {
		pipeOpts.Interactive = true
	}
	if opts.noInt {
		pipeOpts.Interactive = false
	}
	if opts.bg != "" {
		pipeOpts.Background = opts.bg
	}
	pipeOpts.Refresh = opts.refresh

	if opts.rampFrom != "" || opts.rampTo != "" {
		if opts.rampFrom == "" || opts.rampTo == "" {
			return pipeOpts, fmt.Errorf("ramp needs both --ramp-from and --ramp-to")
		}
		colors, err := scale.Ramp(opts.rampFrom, opts.rampTo, opts.rampSteps)
		if err != nil {
			return pipeOpts, err
		}
		pipeOpts.Colors = colors
		if len(pipeOpts.Thresholds) == 0 {
			pipeOpts.Thresholds = scale.EvenThresholds(opts.rampSteps)
		}
	}

	return pipeOpts, nil
}

// stageHooks drives the spinner text from pipeline progress.
type stageHooks struct {
	observability.NoopPipelineHooks
	spinner *Spinner
}

func (h stageHooks) OnLayoutStart(_ context.Context, regionCount int) {
	h.spinner.SetMessage(fmt.Sprintf("Computing layout for %d regions...", regionCount))
}

func (h stageHooks) OnRenderStart(_ context.Context, mode string, formats []string) {
	h.spinner.SetMessage(fmt.Sprintf("Rendering %s in %s mode...", strings.Join(formats, ", "), mode))
}

// outputBase derives the base output path from the output and input paths.
func outputBase(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath builds the file path for one format. A single requested format
// honors an explicit --output verbatim.
func outputPath(base, output, format string, formatCount int) string {
	if formatCount == 1 && output != "" && filepath.Ext(output) != "" {
		return output
	}
	return base + "." + format
}
