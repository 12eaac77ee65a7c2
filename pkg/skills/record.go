package skills

import (
	"math"
	"strconv"

	"github.com/matzehuels/tshape/pkg/errors"
)

// Well-known categories, in the default band order.
const (
	CategoryDomain    = "Domain"
	CategoryTechnical = "Technical"
	CategoryPersonal  = "Personal"
)

// DefaultCategoryOrder is the left-to-right band order of the default layout.
var DefaultCategoryOrder = []string{CategoryDomain, CategoryTechnical, CategoryPersonal}

// Record is a single skill of the catalog.
type Record struct {
	Category string   `json:"category" yaml:"category"`
	Skill    string   `json:"skill" yaml:"skill"`
	Level    float64  `json:"y" yaml:"y"`
	Target   *float64 `json:"y_aim,omitempty" yaml:"y_aim,omitempty"`

	// Display overrides the label text. Empty means the skill name.
	Display string `json:"-" yaml:"-"`
}

// HasTarget reports whether a target level is set.
func (r Record) HasTarget() bool { return r.Target != nil }

// Delta returns target minus current level, or 0 without a target.
func (r Record) Delta() float64 {
	if r.Target == nil {
		return 0
	}
	return *r.Target - r.Level
}

// Text returns the label text drawn for the record.
func (r Record) Text() string {
	if r.Display != "" {
		return r.Display
	}
	return r.Skill
}

// Float returns a pointer to v, for building records with a target.
func Float(v float64) *float64 { return &v }

// LevelFunc selects the value a record is placed at.
type LevelFunc func(Record) float64

// CurrentLevel places a record at its current level.
func CurrentLevel(r Record) float64 { return r.Level }

// TargetLevel places a record at its target level. Records without a target
// fall back to the current level; [TargetView] removes them beforehand.
func TargetLevel(r Record) float64 {
	if r.Target == nil {
		return r.Level
	}
	return *r.Target
}

// Mode selects which view of the catalog is displayed.
type Mode string

// Display modes.
const (
	ModeCurrent Mode = "current"
	ModeTarget  Mode = "target"
)

// ParseMode parses a mode name. The empty string means [ModeCurrent].
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeCurrent:
		return ModeCurrent, nil
	case ModeTarget:
		return ModeTarget, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidMode, "invalid mode: %q (must be one of: current, target)", s)
	}
}

// ModeFromToggle maps the dashboard's "skills marked for growth only" switch
// to a mode.
func ModeFromToggle(showTarget bool) Mode {
	if showTarget {
		return ModeTarget
	}
	return ModeCurrent
}

// FormatLevel renders a level the way labels and tables show it.
func FormatLevel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// growthLabel returns "<skill>: +<|target-level|>".
func growthLabel(r Record) string {
	return r.Skill + ": +" + FormatLevel(math.Abs(r.Delta()))
}
