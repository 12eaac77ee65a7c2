package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tshape/pkg/buildinfo"
	"github.com/matzehuels/tshape/pkg/pipeline"
	"github.com/matzehuels/tshape/pkg/skills"
)

// Flag sets shared between commands. Each set only overrides the config
// values whose flags were given on the command line.

// dataFlags select the dataset files.
type dataFlags struct {
	skills string
	shape  string
}

func (f *dataFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.skills, "skills", "", "skills catalog file (csv, yaml or json)")
	cmd.Flags().StringVar(&f.shape, "shape", "", "outline file (csv, yaml or json)")
}

func (f *dataFlags) apply(opts *pipeline.Options) {
	if f.skills != "" {
		opts.SkillsPath = f.skills
	}
	if f.shape != "" {
		opts.ShapePath = f.shape
	}
}

// layoutFlags tune label placement.
type layoutFlags struct {
	mode       string
	target     bool
	categories []string
	step       float64
	maxRounds  int
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.mode, "mode", "m", string(skills.ModeCurrent), "view: current, target")
	cmd.Flags().BoolVarP(&f.target, "target", "t", false, "show only skills marked for growth (same as --mode target)")
	cmd.Flags().StringSliceVar(&f.categories, "categories", nil, "band order, left to right (comma-separated)")
	cmd.Flags().Float64Var(&f.step, "step", 0, "vertical offset applied per duplicate rank")
	cmd.Flags().IntVar(&f.maxRounds, "max-rounds", 0, "maximum duplicate resolution rounds")
}

func (f *layoutFlags) apply(cmd *cobra.Command, opts *pipeline.Options) error {
	mode, err := skills.ParseMode(f.mode)
	if err != nil {
		return err
	}
	if f.target {
		mode = skills.ModeTarget
	}
	opts.Mode = mode

	if cmd.Flags().Changed("categories") {
		opts.Categories = f.categories
	}
	if cmd.Flags().Changed("step") {
		opts.Step = f.step
	}
	if cmd.Flags().Changed("max-rounds") {
		opts.MaxRounds = f.maxRounds
	}
	return nil
}

// renderFlags control chart output.
type renderFlags struct {
	formats  string
	renderer string
	style    string
	seed     uint64
	width    float64
	height   float64
	scale    float64
	title    string
	palette  map[string]string
	raw      bool
	noTable  bool
}

func (f *renderFlags) register(cmd *cobra.Command, formatsHelp string) {
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", formatsHelp)
	cmd.Flags().StringVar(&f.renderer, "renderer", pipeline.RendererNative, "renderer: native, graphviz, browser")
	cmd.Flags().StringVar(&f.style, "style", "", "visual style: simple, handdrawn")
	cmd.Flags().Uint64Var(&f.seed, "seed", pipeline.DefaultSeed, "random seed for the handdrawn style")
	cmd.Flags().Float64Var(&f.width, "width", 0, "chart width")
	cmd.Flags().Float64Var(&f.height, "height", 0, "chart height")
	cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().StringVar(&f.title, "title", "", "chart title")
	cmd.Flags().StringToStringVar(&f.palette, "color", nil, "category colors, e.g. Domain=#821e7d")
	cmd.Flags().BoolVar(&f.raw, "raw", false, "include the raw data table (html)")
	cmd.Flags().BoolVar(&f.noTable, "no-summary", false, "omit the summary table (html)")
}

func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	opts.Formats = parseFormats(f.formats)

	changed := cmd.Flags().Changed
	if changed("renderer") {
		opts.Renderer = f.renderer
	}
	if changed("style") {
		opts.Style = f.style
	}
	if changed("seed") {
		opts.Seed = f.seed
	}
	if changed("width") {
		opts.Width = f.width
	}
	if changed("height") {
		opts.Height = f.height
	}
	if changed("scale") {
		opts.Scale = f.scale
	}
	if changed("title") {
		opts.Title = f.title
	}
	if len(f.palette) > 0 {
		merged := make(map[string]string, len(opts.Palette)+len(f.palette))
		for k, v := range opts.Palette {
			merged[k] = v
		}
		for k, v := range f.palette {
			merged[k] = v
		}
		opts.Palette = merged
	}
	opts.ShowRaw = f.raw
	opts.HideSummary = f.noTable
}

// cacheFlags control result caching.
type cacheFlags struct {
	noCache bool
	refresh bool
}

func (f *cacheFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute instead of reading cached results")
}

// baseOptions returns pipeline options seeded from the loaded config.
func (c *CLI) baseOptions() pipeline.Options {
	opts := c.cfg.PipelineOptions()
	opts.Logger = c.Logger
	opts.Version = buildinfo.Version
	return opts
}
