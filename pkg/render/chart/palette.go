package chart

import (
	"hash/fnv"
	"maps"

	"github.com/matzehuels/tshape/pkg/errors"
	"github.com/matzehuels/tshape/pkg/skills"
)

// Palette maps category keys to color tokens.
type Palette map[string]string

// fallbackColors are assigned to categories without a configured color.
var fallbackColors = []string{
	"#e07a5f", "#3d405b", "#81b29a", "#f2a541", "#6d597a", "#b56576", "#355070", "#2a9d8f",
}

// DefaultPalette returns the built-in category colors.
func DefaultPalette() Palette {
	return Palette{
		skills.CategoryDomain:    "#821e7d",
		skills.CategoryTechnical: "#008cbe",
		skills.CategoryPersonal:  "#7db43c",
	}
}

// Color returns the color for category. Unknown categories get a stable
// fallback color derived from the name.
func (p Palette) Color(category string) string {
	if c, ok := p[category]; ok {
		return c
	}
	h := fnv.New32a()
	h.Write([]byte(category))
	return fallbackColors[h.Sum32()%uint32(len(fallbackColors))]
}

// With returns a copy of p with overrides applied. Every override must be a
// hex color.
func (p Palette) With(overrides map[string]string) (Palette, error) {
	out := maps.Clone(p)
	if out == nil {
		out = Palette{}
	}
	for cat, color := range overrides {
		if err := errors.ValidateCategory(cat); err != nil {
			return nil, err
		}
		if err := errors.ValidateColor(color); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "palette entry %s", cat)
		}
		out[cat] = color
	}
	return out, nil
}
