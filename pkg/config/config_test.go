package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tshape/pkg/errors"
	"github.com/matzehuels/tshape/pkg/pipeline"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.UsesSample())
	assert.Equal(t, []string{"Domain", "Technical", "Personal"}, cfg.Layout.Categories)
	assert.Equal(t, 0.25, cfg.Layout.Step)
	assert.Equal(t, 10, cfg.Layout.MaxRounds)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
[data]
skills = "data/t_shape_content.csv"
shape  = "data/t_shape_shape.csv"

[layout]
categories = ["Technical", "Domain", "Personal", "Leadership"]
max_rounds = 4

[render]
style = "handdrawn"
[render.palette]
Leadership = "#ff8800"

[server]
redis_url = "redis://localhost:6379/0"
`))
	require.NoError(t, err)

	assert.False(t, cfg.UsesSample())
	assert.Equal(t, "data/t_shape_content.csv", cfg.Data.Skills)
	assert.Equal(t, []string{"Technical", "Domain", "Personal", "Leadership"}, cfg.Layout.Categories)
	assert.Equal(t, 4, cfg.Layout.MaxRounds)
	assert.Equal(t, 0.25, cfg.Layout.Step, "unset keys keep their default")
	assert.Equal(t, "handdrawn", cfg.Render.Style)
	assert.Equal(t, "#ff8800", cfg.Render.Palette["Leadership"])
	assert.Equal(t, "redis://localhost:6379/0", cfg.Server.RedisURL)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want string
	}{
		{"syntax", "[layout\n", "parse config"},
		{"unknown key", "[layout]\nrows = 3\n", "layout.rows"},
		{"bad style", "[render]\nstyle = \"sketchy\"\n", "render.style"},
		{"bad step", "[layout]\nstep = 0.0\n", "layout.step"},
		{"duplicate category", "[layout]\ncategories = [\"Domain\", \"Domain\"]\n", "layout.categories"},
		{"bad color", "[render.palette]\nDomain = \"purple\"\n", "render.palette[Domain]"},
		{"skills without shape", "[data]\nskills = \"a.csv\"\n", "data.shape"},
		{"bad redis url", "[server]\nredis_url = \"not a url\"\n", "server.redis_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.toml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "code = %s", errors.GetCode(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tshape.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\naddr = \":9000\"\n"), 0o644))

	t.Setenv(EnvSkills, "env/skills.csv")
	t.Setenv(EnvShape, "env/shape.csv")
	t.Setenv(EnvRedisURL, "redis://cache:6379")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "env/skills.csv", cfg.Data.Skills)
	assert.Equal(t, "env/shape.csv", cfg.Data.Shape)
	assert.Equal(t, "redis://cache:6379", cfg.Server.RedisURL)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tshape.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\naddr = \":9000\"\n"), 0o644))
	t.Setenv(EnvAddr, ":7000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Render.Palette = map[string]string{"Domain": "#123456"}

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestPipelineOptions(t *testing.T) {
	cfg := Default()
	cfg.Data.Skills, cfg.Data.Shape = "s.csv", "t.csv"
	cfg.Render.Style = "handdrawn"

	opts := cfg.PipelineOptions()
	assert.Equal(t, "s.csv", opts.SkillsPath)
	assert.Equal(t, "t.csv", opts.ShapePath)
	assert.Equal(t, "handdrawn", opts.Style)
	assert.Equal(t, pipeline.RendererNative, opts.Renderer)
	assert.Equal(t, cfg.Layout.Categories, opts.Categories)

	opts.Categories[0] = "changed"
	assert.Equal(t, "Domain", cfg.Layout.Categories[0], "options must not alias the config")
}
