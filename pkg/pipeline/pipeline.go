// Package pipeline provides the load → layout → render pipeline for tshape.
//
// The CLI and the dashboard server both drive this package, so a profile
// rendered from the command line is identical to the one the server shows.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read the skills catalog and the outline, or fall back to the
//     embedded sample dataset
//  2. Layout: Place one label per skill inside the outline
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON, DOT, HTML)
//
// Layouts and artifacts are cached through [cache.Cache] when a runner is
// given one.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    SkillsPath: "data/t_shape_content.csv",
//	    ShapePath:  "data/t_shape_shape.csv",
//	    Mode:       skills.ModeTarget,
//	    Formats:    []string{"svg", "html"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tshape/pkg/cache"
	"github.com/matzehuels/tshape/pkg/errors"
	tio "github.com/matzehuels/tshape/pkg/io"
	"github.com/matzehuels/tshape/pkg/layout"
	"github.com/matzehuels/tshape/pkg/render/chart"
	"github.com/matzehuels/tshape/pkg/skills"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default chart width in pixels.
	DefaultWidth = chart.DefaultWidth

	// DefaultHeight is the default chart height in pixels.
	DefaultHeight = chart.DefaultHeight

	// DefaultSeed is the default seed for the handdrawn style.
	DefaultSeed = uint64(42)

	// DefaultScale is the PNG zoom factor.
	DefaultScale = 2.0
)

// DefaultStyle is the default visual style.
const DefaultStyle = chart.StyleSimple

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatHTML = "html"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatHTML: true,
}

// Renderer names. The renderer decides how the chart images are produced:
// natively, through Graphviz, or by screenshotting the dashboard.
const (
	RendererNative   = "native"
	RendererGraphviz = "graphviz"
	RendererBrowser  = "browser"
)

// ValidRenderers is the set of supported renderers.
var ValidRenderers = map[string]bool{
	RendererNative:   true,
	RendererGraphviz: true,
	RendererBrowser:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options. Both paths empty selects the sample dataset.
	SkillsPath string `json:"skills_path,omitempty"`
	ShapePath  string `json:"shape_path,omitempty"`
	Refresh    bool   `json:"refresh,omitempty"`

	// Layout options
	Mode       skills.Mode `json:"mode,omitempty"`
	Categories []string    `json:"categories,omitempty"`
	Step       float64     `json:"step,omitempty"`
	MaxRounds  int         `json:"max_rounds,omitempty"`

	// Render options
	Formats     []string          `json:"formats,omitempty"`
	Renderer    string            `json:"renderer,omitempty"`
	Width       float64           `json:"width,omitempty"`
	Height      float64           `json:"height,omitempty"`
	Scale       float64           `json:"scale,omitempty"`
	Style       string            `json:"style,omitempty"`
	Seed        uint64            `json:"seed,omitempty"`
	Title       string            `json:"title,omitempty"`
	Palette     map[string]string `json:"palette,omitempty"`
	HideSummary bool              `json:"hide_summary,omitempty"` // summary table is shown by default
	ShowRaw     bool              `json:"show_raw,omitempty"`
	Version     string            `json:"version,omitempty"` // footer of the HTML dashboard

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dataset is the loaded catalog and outline.
	Dataset *Dataset

	// DataHash is the content hash of the dataset.
	DataHash string

	// Layout is the placement document of the run.
	Layout tio.Document

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RecordCount int
	LabelCount  int
	Rounds      int
	Residual    int
	LoadTime    time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, dot, html)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if style != chart.StyleSimple && style != chart.StyleHanddrawn {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: simple, handdrawn)", style)
	}
	return nil
}

// ValidateRenderer checks that a renderer is valid.
func ValidateRenderer(renderer string) error {
	if !ValidRenderers[renderer] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid renderer: %q (must be one of: native, graphviz, browser)", renderer)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks the data paths. Either both paths are set or
// neither, in which case the sample dataset is used.
func (o *Options) ValidateForLoad() error {
	if (o.SkillsPath == "") != (o.ShapePath == "") {
		return errors.New(errors.ErrCodeInvalidInput, "skills and shape paths must be given together")
	}
	for _, p := range []string{o.SkillsPath, o.ShapePath} {
		if p == "" {
			continue
		}
		if err := errors.ValidatePath(p); err != nil {
			return err
		}
	}
	o.setLogger()
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Mode == "" {
		o.Mode = skills.ModeCurrent
	}
	if len(o.Categories) == 0 {
		o.Categories = slices.Clone(skills.DefaultCategoryOrder)
	}
	if o.Step == 0 {
		o.Step = layout.DefaultStep
	}
	if o.MaxRounds == 0 {
		o.MaxRounds = layout.DefaultMaxRounds
	}
	o.setLogger()
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if _, err := skills.ParseMode(string(o.Mode)); err != nil {
		return err
	}
	if o.Step <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "step must be positive, got %g", o.Step)
	}
	if o.MaxRounds < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_rounds must not be negative, got %d", o.MaxRounds)
	}
	return errors.ValidateCategoryOrder(o.Categories)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Renderer == "" {
		o.Renderer = RendererNative
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Title == "" {
		o.Title = chart.DefaultTitle
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateRenderer(o.Renderer); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if o.Width < 0 || o.Height < 0 || o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "width, height and scale must be positive")
	}
	_, err := o.palette()
	return err
}

// UsesSample reports whether the run reads the embedded sample dataset.
func (o *Options) UsesSample() bool {
	return o.SkillsPath == "" && o.ShapePath == ""
}

// ShowSummary reports whether the dashboard shows the summary table.
func (o *Options) ShowSummary() bool {
	return !o.HideSummary
}

// LayoutOptions returns the layout engine options.
func (o *Options) LayoutOptions() []layout.Option {
	return []layout.Option{
		layout.WithCategoryOrder(o.Categories),
		layout.WithStep(o.Step),
		layout.WithMaxRounds(o.MaxRounds),
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Mode:       string(o.Mode),
		Categories: o.Categories,
		Step:       o.Step,
		MaxRounds:  o.MaxRounds,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
// Dashboard toggles only affect the HTML output, so other formats share
// one key regardless of them.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:  format,
		Style:   o.Style,
		Seed:    o.Seed,
		Width:   o.Width,
		Height:  o.Height,
		Title:   o.Title,
		Palette: o.Palette,
	}
	if format != FormatJSON && format != FormatDOT {
		k.Style = o.Renderer + ":" + o.Style
	}
	if format == FormatPNG {
		k.Width, k.Height = o.Width*o.Scale, o.Height*o.Scale
	}
	if format == FormatHTML || (format == FormatPNG && o.Renderer == RendererBrowser) {
		k.ShowSummary = o.ShowSummary()
		k.ShowRaw = o.ShowRaw
		k.Version = o.Version
	}
	return k
}

// palette merges the configured overrides into the default palette.
func (o *Options) palette() (chart.Palette, error) {
	return chart.DefaultPalette().With(o.Palette)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
