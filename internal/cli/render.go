package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tshape/pkg/pipeline"
	"github.com/matzehuels/tshape/pkg/skills"
)

// renderCommand creates the render command: dataset to chart files in one step.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		data    dataFlags
		lay     layoutFlags
		rend    renderFlags
		caching cacheFlags
		output  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the skill chart from a dataset",
		Long: `Render the skill chart from a dataset.

Loads the skills catalog and the outline, places the labels and writes one
file per requested format. Without --skills/--shape the configured dataset or
the bundled sample is used.

Formats: svg, png, pdf, json (chart description), dot (Graphviz source) and
html (the full dashboard page).

Layouts and artifacts are cached locally for faster subsequent runs.`,
		Example: `  tshape render
  tshape render --skills skills.csv --shape shape.csv -f svg,png
  tshape render --target --style handdrawn -o profile.svg
  tshape render -f html --raw`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			data.apply(&opts)
			if err := lay.apply(cmd, &opts); err != nil {
				return err
			}
			rend.apply(cmd, &opts)
			opts.Refresh = caching.refresh
			return c.runRender(cmd.Context(), opts, output, caching.noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format), base path (multiple) or - for stdout")
	data.register(cmd)
	lay.register(cmd)
	rend.register(cmd, "output format(s): svg (default), png, pdf, json, dot, html (comma-separated)")
	caching.register(cmd)

	return cmd
}

// runRender executes the full pipeline and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s view...", opts.Mode))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if result.Stats.Residual > 0 {
		printWarning("%d labels still share a position", result.Stats.Residual)
	}

	_, err = writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     renderInput(opts),
		output:    output,
		cacheHit:  result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit,
		records:   result.Stats.RecordCount,
		labels:    result.Stats.LabelCount,
	})
	if err != nil {
		return err
	}
	prog.done("Rendered " + string(opts.Mode) + " view")
	return nil
}

// renderInput names the default output after the skills file, or "tshape"
// for the sample data. Target views get a suffix so both views can sit
// side by side.
func renderInput(opts pipeline.Options) string {
	name := opts.SkillsPath
	if opts.UsesSample() {
		name = appName
	}
	name = basePath("", name)
	if opts.Mode == skills.ModeTarget {
		name += "_target"
	}
	return name
}
