package cache

import "fmt"

// Keyer builds cache keys for pipeline results.
type Keyer interface {
	// LayoutKey identifies a layout run over the data with hash dataHash.
	LayoutKey(dataHash string, opts LayoutKeyOpts) string
	// ArtifactKey identifies a rendered output of the layout with hash layoutHash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the options that change a layout result.
type LayoutKeyOpts struct {
	Mode       string   `json:"mode"`
	Categories []string `json:"categories,omitempty"`
	Step       float64  `json:"step"`
	MaxRounds  int      `json:"max_rounds"`
}

// ArtifactKeyOpts are the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format      string            `json:"format"`
	Style       string            `json:"style,omitempty"`
	Seed        uint64            `json:"seed,omitempty"`
	Width       float64           `json:"width,omitempty"`
	Height      float64           `json:"height,omitempty"`
	Title       string            `json:"title,omitempty"`
	Palette     map[string]string `json:"palette,omitempty"`
	ShowSummary bool              `json:"show_summary,omitempty"`
	ShowRaw     bool              `json:"show_raw,omitempty"`
	Version     string            `json:"version,omitempty"`
}

// DefaultKeyer hashes key options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) LayoutKey(dataHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", dataHash, opts)
}

func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey(fmt.Sprintf("artifact:%s", opts.Format), layoutHash, opts)
}
