package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tshape/pkg/errors"
	tio "github.com/matzehuels/tshape/pkg/io"
	"github.com/matzehuels/tshape/pkg/pipeline"
)

// visualizeCommand creates the visualize command for rendering from a placement document.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		rend    renderFlags
		caching cacheFlags
		output  string
	)

	cmd := &cobra.Command{
		Use:   "visualize [layout.json]",
		Short: "Render a chart from a computed layout",
		Long: `Render a chart from a computed layout.

The visualize command takes a placement document (produced by 'layout') and
renders it. The document contains the outline and every label position, so
this step is purely about drawing. The dashboard (html) needs the full
catalog and is only available through 'render'.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			rend.apply(cmd, &opts)
			for _, f := range opts.Formats {
				if f == pipeline.FormatHTML {
					return errors.New(errors.ErrCodeInvalidFormat, "html needs the skills catalog; use '%s render -f html'", appName)
				}
			}
			opts.Refresh = caching.refresh
			return c.runVisualize(cmd.Context(), args[0], opts, output, caching.noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format), base path (multiple) or - for stdout")
	rend.register(cmd, "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	caching.register(cmd)

	return cmd
}

// runVisualize loads the placement document and renders it.
func (c *CLI) runVisualize(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	doc, err := tio.ImportLayoutJSON(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}

	// The document decides the view and the band order.
	opts.Mode = doc.Mode
	opts.Categories = doc.Categories

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s view...", doc.Mode))
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, nil, doc, opts)
	if err != nil {
		spinner.StopWithError("Visualization failed")
		return fmt.Errorf("visualize: %w", err)
	}
	spinner.Stop()

	_, err = writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     trimLayoutSuffix(input),
		output:    output,
		cacheHit:  cacheHit,
		labels:    len(doc.Labels),
	})
	return err
}

// trimLayoutSuffix maps "profile.layout.json" to "profile".
func trimLayoutSuffix(path string) string {
	return basePath("", basePath("", path))
}
