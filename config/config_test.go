package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latgen/config"
	"github.com/katalvlaran/latgen/geo"
)

var topologies = []string{"fcon", "fully-connected", "star"}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 0, cfg.Nodes)
	assert.Equal(t, 37.5, cfg.MeanBandwidth)
	assert.Equal(t, "fcon", cfg.Topology)
	assert.Equal(t, "ogpage.html", cfg.LatencyPage)
	assert.Equal(t, "longlat", cfg.Coordinates)
	assert.NoError(t, cfg.Validate(topologies))
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "run.yaml", `
nodes: 4
topology: star
seed: 42
label_edges: true
log:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Nodes)
	assert.Equal(t, "star", cfg.Topology)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.LabelEdges)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Untouched fields keep defaults.
	assert.Equal(t, 37.5, cfg.MeanBandwidth)
	assert.Equal(t, 100, cfg.Log.MaxSizeMB)
	assert.NoError(t, cfg.Validate(topologies))
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "run.toml", `
nodes = 6
mean_bandwidth = 12.5
latency_page = "pages/og.html"

[geocoder]
user_agent = "tests"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Nodes)
	assert.Equal(t, 12.5, cfg.MeanBandwidth)
	assert.Equal(t, "pages/og.html", cfg.LatencyPage)
	assert.Equal(t, "tests", cfg.Geocoder.UserAgent)
	assert.Equal(t, geo.DefaultNominatimURL, cfg.Geocoder.URL)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(writeFile(t, "run.json", `{}`))
	assert.ErrorIs(t, err, config.ErrUnsupportedFile)

	_, err = config.Load(writeFile(t, "bad.yaml", "nodes: [1"))
	assert.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"negative nodes", func(c *config.Config) { c.Nodes = -1 }},
		{"unknown topology", func(c *config.Config) { c.Topology = "ring" }},
		{"empty topology", func(c *config.Config) { c.Topology = "" }},
		{"bad level", func(c *config.Config) { c.Log.Level = "loud" }},
		{"bad geocoder url", func(c *config.Config) { c.Geocoder.URL = "not a url" }},
		{"no page", func(c *config.Config) { c.LatencyPage = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(topologies), config.ErrInvalid)
		})
	}

	cfg := config.Default()
	cfg.Topology = "ring"
	assert.NoError(t, cfg.Validate(nil))
}

func TestResolveNodes(t *testing.T) {
	cfg := config.Default()
	n, err := cfg.ResolveNodes()
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	cfg.WorkloadFile = writeFile(t, "wl.txt", "node_count: 4, duration: 5\njoin 0\n")
	n, err = cfg.ResolveNodes()
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	cfg.Nodes = 7
	n, err = cfg.ResolveNodes()
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	cfg.Nodes = 0
	cfg.WorkloadFile = filepath.Join(t.TempDir(), "missing.txt")
	_, err = cfg.ResolveNodes()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
