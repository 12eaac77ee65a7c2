package skills

import (
	"cmp"
	"slices"

	"github.com/montanaflynn/stats"
)

// CategorySummary aggregates the skills of one category.
type CategorySummary struct {
	Category    string  `json:"category"`
	Count       int     `json:"count"`
	MeanLevel   float64 `json:"mean_level"`
	MinLevel    float64 `json:"min_level"`
	MaxLevel    float64 `json:"max_level"`
	WithTarget  int     `json:"with_target"`
	MeanTarget  float64 `json:"mean_target,omitempty"`
	MeanGrowth  float64 `json:"mean_growth,omitempty"`
	GrowthCount int     `json:"growth_count"`
}

// Summarize aggregates records per category. Categories appear in the order
// given by [Categories]; categories without records are omitted.
func Summarize(records []Record, order []string) []CategorySummary {
	groups := group(records)
	out := make([]CategorySummary, 0, len(groups))
	for _, c := range Categories(records, order) {
		rs, ok := groups[c]
		if !ok {
			continue
		}
		out = append(out, summarize(c, rs))
	}
	return out
}

func summarize(category string, rs []Record) CategorySummary {
	s := CategorySummary{Category: category, Count: len(rs)}

	levels := make(stats.Float64Data, 0, len(rs))
	var targets, growth stats.Float64Data
	for _, r := range rs {
		levels = append(levels, r.Level)
		if r.Target == nil {
			continue
		}
		targets = append(targets, *r.Target)
		if d := r.Delta(); d != 0 {
			growth = append(growth, d)
		}
	}

	s.MeanLevel = aggregate(levels, stats.Float64Data.Mean)
	s.MinLevel = aggregate(levels, stats.Float64Data.Min)
	s.MaxLevel = aggregate(levels, stats.Float64Data.Max)
	s.WithTarget = len(targets)
	s.MeanTarget = aggregate(targets, stats.Float64Data.Mean)
	s.MeanGrowth = aggregate(growth, stats.Float64Data.Mean)
	s.GrowthCount = len(growth)
	return s
}

// aggregate applies fn, reporting empty input as zero instead of NaN.
func aggregate(d stats.Float64Data, fn func(stats.Float64Data) (float64, error)) float64 {
	if len(d) == 0 {
		return 0
	}
	v, err := fn(d)
	if err != nil {
		return 0
	}
	return v
}

// CategoryBreakdown lists the skills of one category, highest level first.
type CategoryBreakdown struct {
	Category string   `json:"category"`
	Skills   []Record `json:"skills"`
}

// Breakdown groups records per category, each group sorted by level
// descending. Ties keep catalog order.
func Breakdown(records []Record, order []string) []CategoryBreakdown {
	groups := group(records)
	out := make([]CategoryBreakdown, 0, len(groups))
	for _, c := range Categories(records, order) {
		rs, ok := groups[c]
		if !ok {
			continue
		}
		sorted := slices.Clone(rs)
		slices.SortStableFunc(sorted, func(a, b Record) int {
			return cmp.Compare(b.Level, a.Level)
		})
		out = append(out, CategoryBreakdown{Category: c, Skills: sorted})
	}
	return out
}

func group(records []Record) map[string][]Record {
	groups := make(map[string][]Record)
	for _, r := range records {
		groups[r.Category] = append(groups[r.Category], r)
	}
	return groups
}
