package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/FiveMP/FiveMP-API/pkg/mathutil"
)

// Config holds zone tool paths and render settings.
type Config struct {
	// Paths
	BaseDir      string `json:"base_dir"`
	ZoneFile     string `json:"zone_file"`
	ZoneEncoding string `json:"zone_encoding"`
	PointsFile   string `json:"points_file"`
	OutputDir    string `json:"output_dir"`
	ReportFile   string `json:"report_file"`
	ImageFile    string `json:"image_file"`

	// Render settings
	RenderSize  int            `json:"render_size"`
	Supersample int            `json:"supersample"`
	SliceZ      mathutil.Float `json:"slice_z"`
	Padding     mathutil.Float `json:"padding"`
	Format      string         `json:"format"`
	Workers     int            `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values, except BaseDir which
// defaults to the directory holding the file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	ZoneFile     string
	ZoneEncoding string
	PointsFile   string
	OutputDir    string
	ReportFile   string
	ImageFile    string
	RenderSize   int
	Supersample  int
	SliceZ       mathutil.Float
	Padding      mathutil.Float
	Workers      int
}

// Resolve applies flags and fills in defaults.
// CLI flags take priority when non-zero/non-empty. Paths from flags are used
// as given; paths from the config file are relative to BaseDir.
func (c *Config) Resolve(flags Flags) {
	c.ZoneFile = c.path(c.ZoneFile)
	c.PointsFile = c.path(c.PointsFile)
	c.OutputDir = c.path(c.OutputDir)
	c.ReportFile = c.path(c.ReportFile)
	c.ImageFile = c.path(c.ImageFile)

	override(&c.ZoneFile, flags.ZoneFile)
	override(&c.ZoneEncoding, flags.ZoneEncoding)
	override(&c.PointsFile, flags.PointsFile)
	override(&c.OutputDir, flags.OutputDir)
	override(&c.ReportFile, flags.ReportFile)
	override(&c.ImageFile, flags.ImageFile)
	override(&c.RenderSize, flags.RenderSize)
	override(&c.Supersample, flags.Supersample)
	override(&c.SliceZ, flags.SliceZ)
	override(&c.Padding, flags.Padding)
	override(&c.Workers, flags.Workers)

	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.ReportFile == "" {
		c.ReportFile = filepath.Join(c.OutputDir, "report.json")
	}
	if c.ImageFile == "" {
		c.ImageFile = filepath.Join(c.OutputDir, "zones."+c.Format)
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

func (c *Config) path(p string) string {
	if p == "" || c.BaseDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

func override[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}
