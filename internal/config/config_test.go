package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	err := os.WriteFile(path, []byte(`{
  "zone_file": "zones.yaml",
  "zone_encoding": "windows-1252",
  "render_size": 128,
  "slice_z": 30.5,
  "format": "tga"
}`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.BaseDir)
	assert.Equal(t, "zones.yaml", cfg.ZoneFile)
	assert.Equal(t, 128, cfg.RenderSize)
	assert.InDelta(t, 30.5, cfg.SliceZ, 1e-6)

	cfg.Resolve(Flags{})
	assert.Equal(t, filepath.Join(dir, "zones.yaml"), cfg.ZoneFile)
	assert.Equal(t, "windows-1252", cfg.ZoneEncoding)
	assert.Equal(t, filepath.Join(".", "zones.tga"), cfg.ImageFile)
	assert.Equal(t, 128, cfg.RenderSize)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "config: read")

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "config: parse")
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "webp", cfg.Format)
	assert.Equal(t, filepath.Join(".", "report.json"), cfg.ReportFile)
	assert.Equal(t, filepath.Join(".", "zones.webp"), cfg.ImageFile)
	assert.Equal(t, 512, cfg.RenderSize)
	assert.Equal(t, 2, cfg.Supersample)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Config{
		BaseDir:    "/srv/zones",
		ZoneFile:   "city.yaml",
		OutputDir:  "out",
		RenderSize: 64,
		Workers:    2,
	}
	cfg.Resolve(Flags{
		ZoneFile:   "other.json",
		RenderSize: 256,
		SliceZ:     12,
	})

	assert.Equal(t, "other.json", cfg.ZoneFile, "flag paths are used as given")
	assert.Equal(t, filepath.Join("/srv/zones", "out"), cfg.OutputDir)
	assert.Equal(t, filepath.Join("/srv/zones", "out", "report.json"), cfg.ReportFile)
	assert.Equal(t, 256, cfg.RenderSize)
	assert.Equal(t, 2, cfg.Workers)
	assert.InDelta(t, 12, cfg.SliceZ, 1e-6)
}
