// Package config loads tshape settings.
//
// Settings are layered: built-in defaults, then a TOML file, then a .env
// file in the working directory, then the process environment. The result
// is validated before use.
//
//	[data]
//	skills = "data/t_shape_content.csv"
//	shape  = "data/t_shape_shape.csv"
//
//	[layout]
//	categories = ["Domain", "Technical", "Personal"]
//
//	[render.palette]
//	Domain = "#821e7d"
//
// Environment overrides: TSHAPE_SKILLS, TSHAPE_SHAPE, TSHAPE_ADDR,
// TSHAPE_REDIS_URL and TSHAPE_CACHE_DIR.
package config

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/matzehuels/tshape/pkg/errors"
	"github.com/matzehuels/tshape/pkg/layout"
	"github.com/matzehuels/tshape/pkg/pipeline"
	"github.com/matzehuels/tshape/pkg/render/chart"
	"github.com/matzehuels/tshape/pkg/skills"
)

// DefaultPath is read when no config file is given and it exists.
const DefaultPath = "tshape.toml"

// Environment variables that override file settings.
const (
	EnvSkills   = "TSHAPE_SKILLS"
	EnvShape    = "TSHAPE_SHAPE"
	EnvAddr     = "TSHAPE_ADDR"
	EnvRedisURL = "TSHAPE_REDIS_URL"
	EnvCacheDir = "TSHAPE_CACHE_DIR"
)

// Config is the complete tshape configuration.
type Config struct {
	Data   DataConfig   `toml:"data"`
	Layout LayoutConfig `toml:"layout"`
	Render RenderConfig `toml:"render"`
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
}

// DataConfig names the dataset files. Leaving both empty selects the
// sample dataset.
type DataConfig struct {
	Skills string `toml:"skills" validate:"required_with=Shape"`
	Shape  string `toml:"shape" validate:"required_with=Skills"`
}

// LayoutConfig tunes the label layout.
type LayoutConfig struct {
	Categories []string `toml:"categories" validate:"min=1,unique,dive,required"`
	Step       float64  `toml:"step" validate:"gt=0"`
	MaxRounds  int      `toml:"max_rounds" validate:"min=1"`
}

// RenderConfig controls chart output.
type RenderConfig struct {
	Width    float64           `toml:"width" validate:"gt=0"`
	Height   float64           `toml:"height" validate:"gt=0"`
	Style    string            `toml:"style" validate:"oneof=simple handdrawn"`
	Seed     uint64            `toml:"seed"`
	Renderer string            `toml:"renderer" validate:"oneof=native graphviz browser"`
	Title    string            `toml:"title" validate:"required"`
	Palette  map[string]string `toml:"palette" validate:"omitempty,dive,keys,required,endkeys,hexcolor"`
}

// ServerConfig configures the dashboard server.
type ServerConfig struct {
	Addr     string `toml:"addr" validate:"required"`
	RedisURL string `toml:"redis_url" validate:"omitempty,url"`
}

// CacheConfig configures the local result cache.
type CacheConfig struct {
	Dir      string `toml:"dir"` // empty selects the user cache directory
	Disabled bool   `toml:"disabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Layout: LayoutConfig{
			Categories: slices.Clone(skills.DefaultCategoryOrder),
			Step:       layout.DefaultStep,
			MaxRounds:  layout.DefaultMaxRounds,
		},
		Render: RenderConfig{
			Width:    chart.DefaultWidth,
			Height:   chart.DefaultHeight,
			Style:    chart.StyleSimple,
			Seed:     pipeline.DefaultSeed,
			Renderer: pipeline.RendererNative,
			Title:    chart.DefaultTitle,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load builds the configuration from path. An empty path reads
// [DefaultPath] if it exists and the defaults otherwise.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultPath); err == nil {
			path = DefaultPath
		}
	}
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	// A missing .env file is fine; variables already set win.
	_ = godotenv.Load()
	cfg.applyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode reads TOML settings from r on top of the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return checkUndecoded(md)
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	set := func(dst *string, key string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(&c.Data.Skills, EnvSkills)
	set(&c.Data.Shape, EnvShape)
	set(&c.Server.Addr, EnvAddr)
	set(&c.Server.RedisURL, EnvRedisURL)
	set(&c.Cache.Dir, EnvCacheDir)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the configuration. Failures are INVALID_CONFIG errors
// naming the offending keys.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return c.validateCategories()
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "validate config")
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = describe(fe)
	}
	return errors.New(errors.ErrCodeInvalidConfig, "invalid config: %s", strings.Join(msgs, "; "))
}

func (c Config) validateCategories() error {
	if err := errors.ValidateCategoryOrder(c.Layout.Categories); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "layout.categories")
	}
	return nil
}

// describe renders one field error as "<key>: <rule>".
func describe(fe validator.FieldError) string {
	_, key, _ := strings.Cut(fe.Namespace(), ".")
	switch fe.Tag() {
	case "required", "required_with":
		return key + ": is required"
	case "oneof":
		return fmt.Sprintf("%s: %q is not one of %s", key, fe.Value(), fe.Param())
	case "hexcolor":
		return fmt.Sprintf("%s: %q is not a hex color", key, fe.Value())
	case "url":
		return fmt.Sprintf("%s: %q is not a URL", key, fe.Value())
	case "unique":
		return key + ": contains duplicates"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: must be %s %s", key, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s: failed %s", key, fe.Tag())
	}
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// UsesSample reports whether no dataset files are configured.
func (c Config) UsesSample() bool {
	return c.Data.Skills == "" && c.Data.Shape == ""
}

// PipelineOptions returns pipeline options for the configured dataset,
// layout and rendering settings.
func (c Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		SkillsPath: c.Data.Skills,
		ShapePath:  c.Data.Shape,
		Categories: slices.Clone(c.Layout.Categories),
		Step:       c.Layout.Step,
		MaxRounds:  c.Layout.MaxRounds,
		Width:      c.Render.Width,
		Height:     c.Render.Height,
		Style:      c.Render.Style,
		Seed:       c.Render.Seed,
		Renderer:   c.Render.Renderer,
		Title:      c.Render.Title,
		Palette:    c.Render.Palette,
	}
}
