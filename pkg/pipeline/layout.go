package pipeline

import (
	"context"
	"time"

	tio "github.com/matzehuels/tshape/pkg/io"
	"github.com/matzehuels/tshape/pkg/layout"
	"github.com/matzehuels/tshape/pkg/observability"
	"github.com/matzehuels/tshape/pkg/skills"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout places the dataset's skills for opts.Mode and returns the
// placement document.
//
// Levels are sign-flipped before placement so that the chart reads top
// down; in [skills.ModeTarget] only the skills marked for growth are placed,
// at their target level.
func GenerateLayout(ctx context.Context, ds *Dataset, opts Options) (tio.Document, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return tio.Document{}, err
	}

	view := skills.Prepare(ds.Records, opts.Mode)
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, string(view.Mode), len(view.Records))
	start := time.Now()

	res, err := layout.Compute(view.Records, ds.Boundary, view.Level, opts.LayoutOptions()...)
	hooks.OnLayoutComplete(ctx, string(view.Mode), res.Rounds, res.Residual, time.Since(start), err)
	if err != nil {
		return tio.Document{}, err
	}

	if res.Residual > 0 {
		opts.Logger.Warn("labels still overlap after duplicate resolution",
			"mode", view.Mode, "residual", res.Residual, "rounds", res.Rounds)
	}
	return tio.NewDocument(view.Mode, ds.Boundary, res), nil
}
