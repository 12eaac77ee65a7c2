package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	tio "github.com/matzehuels/tshape/pkg/io"
	"github.com/matzehuels/tshape/pkg/pipeline"
)

// layoutCommand creates the layout command for computing label placements.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		data    dataFlags
		lay     layoutFlags
		caching cacheFlags
		output  string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute label placements without rendering",
		Long: `Compute label placements without rendering.

The layout command loads the dataset, places every label inside its band and
writes a placement document (JSON). The document carries the outline too, so
'visualize' can render it later without the source files.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			data.apply(&opts)
			if err := lay.apply(cmd, &opts); err != nil {
				return err
			}
			opts.Refresh = caching.refresh
			return c.runLayout(cmd.Context(), opts, output, caching.noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <skills>.layout.json) or - for stdout")
	data.register(cmd)
	lay.register(cmd)
	caching.register(cmd)

	return cmd
}

// runLayout loads the dataset, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	if err := opts.ValidateForLoad(); err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	ds, err := runner.Load(ctx, opts)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", opts.Mode))
	spinner.Start()

	doc, cacheHit, err := runner.GenerateLayoutWithCacheInfo(ctx, ds, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = renderInput(opts) + ".layout.json"
	}

	if outputPath == stdoutPath {
		out, _ := openOutput(stdoutPath)
		return tio.WriteLayoutJSON(out, doc)
	}
	if err := tio.ExportLayoutJSON(doc, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(ds.Records), len(doc.Labels), cacheHit)
	if doc.Residual > 0 {
		printWarning("%d labels still share a position", doc.Residual)
	}
	printNewline()
	printNextStep("Render", appName+" visualize "+outputPath)

	return nil
}
