package chart

import (
	"github.com/matzehuels/tshape/pkg/errors"
	"github.com/matzehuels/tshape/pkg/render/chart/styles"
	"github.com/matzehuels/tshape/pkg/render/chart/styles/handdrawn"
)

// Style names.
const (
	StyleSimple    = "simple"
	StyleHanddrawn = "handdrawn"
)

// ParseStyle returns the style registered under name. seed only affects
// the handdrawn style; 0 selects its default seed.
func ParseStyle(name string, seed uint64) (styles.Style, error) {
	switch name {
	case "", StyleSimple:
		return styles.Simple{}, nil
	case StyleHanddrawn:
		if seed == 0 {
			seed = handdrawn.DefaultSeed
		}
		return handdrawn.New(seed), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: simple, handdrawn)", name)
	}
}
