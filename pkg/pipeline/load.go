package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/tshape/pkg/cache"
	"github.com/matzehuels/tshape/pkg/geometry"
	tio "github.com/matzehuels/tshape/pkg/io"
	"github.com/matzehuels/tshape/pkg/observability"
	"github.com/matzehuels/tshape/pkg/sample"
	"github.com/matzehuels/tshape/pkg/skills"
)

// Dataset is a loaded skills catalog together with its outline.
type Dataset struct {
	Records  []skills.Record
	Boundary *geometry.Boundary

	// SkillsSource and ShapeSource name where the data came from.
	SkillsSource string
	ShapeSource  string
}

// Source describes both inputs for logs.
func (d *Dataset) Source() string {
	return d.SkillsSource + "+" + d.ShapeSource
}

// Hash returns a content hash of the records and outline points.
func (d *Dataset) Hash() string {
	h, err := cache.HashJSON(struct {
		Records  []skills.Record  `json:"records"`
		Boundary []geometry.Point `json:"boundary"`
	}{d.Records, d.Boundary.Points()})
	if err != nil {
		return ""
	}
	return h
}

// Load reads the dataset named by opts, or the sample dataset when no
// paths are set.
func Load(ctx context.Context, opts Options) (*Dataset, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}

	source := sample.SkillsName
	if !opts.UsesSample() {
		source = opts.SkillsPath
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()

	ds, err := load(opts)
	records := 0
	if ds != nil {
		records = len(ds.Records)
	}
	hooks.OnLoadComplete(ctx, source, records, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug("loaded dataset", "skills", ds.SkillsSource, "shape", ds.ShapeSource, "records", records)
	return ds, nil
}

func load(opts Options) (*Dataset, error) {
	if opts.UsesSample() {
		records, err := sample.Skills()
		if err != nil {
			return nil, err
		}
		b, err := sample.Boundary()
		if err != nil {
			return nil, err
		}
		return &Dataset{Records: records, Boundary: b, SkillsSource: sample.SkillsName, ShapeSource: sample.ShapeName}, nil
	}

	records, err := tio.ImportSkills(opts.SkillsPath)
	if err != nil {
		return nil, err
	}
	b, err := tio.ImportBoundary(opts.ShapePath)
	if err != nil {
		return nil, err
	}
	return &Dataset{Records: records, Boundary: b, SkillsSource: opts.SkillsPath, ShapeSource: opts.ShapePath}, nil
}
