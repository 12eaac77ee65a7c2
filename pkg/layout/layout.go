package layout

import (
	"github.com/matzehuels/tshape/pkg/skills"
)

const (
	// DefaultStep is the vertical displacement between members of a duplicate group.
	DefaultStep = 0.25

	// DefaultMaxRounds bounds the number of duplicate resolution rounds.
	DefaultMaxRounds = 10
)

// Label is a skill record placed at its final position.
type Label struct {
	Index    int     `json:"index"` // position in the input sequence
	Category string  `json:"category"`
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// Result is the output of [Compute].
type Result struct {
	Labels     []Label  // one per input record, in input order
	Categories []string // effective band order, left to right
	Rounds     int      // resolution rounds executed
	Residual   int      // labels still sharing a position after the last round
}

// Option configures [Compute].
type Option func(*config)

type config struct {
	order     []string
	step      float64
	maxRounds int
}

// WithCategoryOrder sets the left-to-right band order.
// An empty order keeps the default.
func WithCategoryOrder(order []string) Option {
	return func(c *config) {
		if len(order) > 0 {
			c.order = order
		}
	}
}

// WithStep sets the displacement step used by duplicate resolution.
func WithStep(step float64) Option {
	return func(c *config) { c.step = step }
}

// WithMaxRounds sets the duplicate resolution round budget.
func WithMaxRounds(n int) Option {
	return func(c *config) { c.maxRounds = n }
}

// Compute places every record inside the outline described by g.
//
// The y coordinate of a label is level(record); the x coordinate is the
// midpoint of the record's category band (see [Bands]). Labels sharing an
// exact position are then separated with [Resolve].
//
// An empty input returns an empty result without consulting g. The only
// error is a geometry error from g; unresolved duplicates are reported in
// [Result.Residual].
func Compute(records []skills.Record, g Geometry, level skills.LevelFunc, opts ...Option) (Result, error) {
	cfg := config{
		order:     skills.DefaultCategoryOrder,
		step:      DefaultStep,
		maxRounds: DefaultMaxRounds,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(records) == 0 {
		return Result{Labels: []Label{}, Categories: append([]string(nil), cfg.order...)}, nil
	}

	categories := skills.Categories(records, cfg.order)
	bands, err := NewBands(g, categories)
	if err != nil {
		return Result{}, err
	}

	labels := make([]Label, len(records))
	for i, r := range records {
		y := level(r)
		labels[i] = Label{
			Index:    i,
			Category: r.Category,
			Text:     r.Text(),
			X:        PositionFor(y, r.Category, bands),
			Y:        y,
		}
	}

	rounds, residual := Resolve(labels, cfg.step, cfg.maxRounds)
	return Result{
		Labels:     labels,
		Categories: categories,
		Rounds:     rounds,
		Residual:   residual,
	}, nil
}
