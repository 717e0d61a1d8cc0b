package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/FiveMP/FiveMP-API/internal/check"
	"github.com/FiveMP/FiveMP-API/internal/config"
	"github.com/FiveMP/FiveMP-API/internal/plot"
	"github.com/FiveMP/FiveMP-API/internal/zone"
	"github.com/FiveMP/FiveMP-API/pkg/mathutil"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Debug    bool   `help:"Whether to enable debug logging."`
	Config   string `help:"Path to config.json file." type:"path"`
	Encoding string `help:"Text encoding of the zone file (e.g. windows-1252)."`
	Workers  int    `help:"Number of worker goroutines (default: NumCPU)."`

	Check struct {
		Zones  string `arg:"" name:"zones" help:"Zone file (.yaml, .yml or .json)." type:"path"`
		Points string `arg:"" optional:"" name:"points" help:"CSV of id,x,y,z rows. Reads stdin when omitted." type:"path"`
		Report string `help:"Where to write the JSON report." type:"path"`
	} `cmd:"" help:"Report which zones contain each point."`

	Plot struct {
		Zones       string  `arg:"" name:"zones" help:"Zone file (.yaml, .yml or .json)." type:"path"`
		Output      string  `help:"Output image (.webp, .tga or .png)." short:"o" type:"path"`
		Size        int     `help:"Image edge length in pixels."`
		Supersample int     `help:"Samples per pixel along each axis."`
		Z           float64 `help:"Height of the horizontal slice."`
		Padding     float64 `help:"World units of margin around the zones."`
	} `cmd:"" help:"Render a top-down map of the zones."`
}

func writeError(err error) {
	log.Error().Err(err).Msg("zonetool failed")
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("zonetool"),
		kong.Description("classify and plot FiveMP zones"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("debug logging enabled")
	}

	cfg, err := loadConfig()
	if err != nil {
		writeError(err)
	}

	switch ctx.Command() {
	case "check <zones>", "check <zones> <points>":
		err = checkCommand(cfg)
	case "plot <zones>":
		err = plotCommand(cfg)
	default:
		err = fmt.Errorf("unknown command %q", ctx.Command())
	}
	if err != nil {
		writeError(err)
	}
}

func loadConfig() (config.Config, error) {
	var cfg config.Config
	if CLI.Config != "" {
		var err error
		cfg, err = config.Load(CLI.Config)
		if err != nil {
			return cfg, err
		}
	}

	flags := config.Flags{
		ZoneEncoding: CLI.Encoding,
		Workers:      CLI.Workers,
	}
	if CLI.Check.Zones != "" {
		flags.ZoneFile = CLI.Check.Zones
		flags.PointsFile = CLI.Check.Points
		flags.ReportFile = CLI.Check.Report
	}
	if CLI.Plot.Zones != "" {
		flags.ZoneFile = CLI.Plot.Zones
		flags.ImageFile = CLI.Plot.Output
		flags.RenderSize = CLI.Plot.Size
		flags.Supersample = CLI.Plot.Supersample
		flags.SliceZ = mathutil.Float(CLI.Plot.Z)
		flags.Padding = mathutil.Float(CLI.Plot.Padding)
	}
	cfg.Resolve(flags)
	return cfg, nil
}

func loadZones(cfg config.Config) (*zone.Set, error) {
	set, err := zone.Load(cfg.ZoneFile, cfg.ZoneEncoding)
	if err != nil {
		return nil, err
	}
	fp, err := set.Fingerprint()
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("file", cfg.ZoneFile).
		Int("zones", len(set.Zones)).
		Str("fingerprint", fmt.Sprintf("%016x", fp)).
		Msg("zones loaded")
	return set, nil
}

func checkCommand(cfg config.Config) error {
	set, err := loadZones(cfg)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if cfg.PointsFile != "" {
		f, err := os.Open(cfg.PointsFile)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	points, err := check.ReadPoints(in)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := check.Run(ctx, check.Config{
		Workers:  cfg.Workers,
		Progress: 2 * time.Second,
	}, set, points)
	if err != nil {
		return err
	}

	summary := check.Summarize(results)
	log.Info().
		Int("points", summary.Total).
		Int("matched", summary.Matched).
		Int("outside", summary.Outside).
		Int("failed", summary.Failed).
		Dur("elapsed", time.Since(start)).
		Msg("check done")

	if err := check.WriteReport(cfg.ReportFile, results); err != nil {
		return err
	}
	log.Info().Str("report", cfg.ReportFile).Msg("report written")

	if summary.Failed > 0 {
		return fmt.Errorf("%d points could not be classified", summary.Failed)
	}
	return nil
}

func plotCommand(cfg config.Config) error {
	set, err := loadZones(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	img, err := plot.Render(set, plot.Options{
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
		Z:           cfg.SliceZ,
		Padding:     cfg.Padding,
		Workers:     cfg.Workers,
	})
	if err != nil {
		return err
	}

	if err := plot.WriteFile(cfg.ImageFile, img); err != nil {
		return err
	}
	log.Info().
		Str("image", cfg.ImageFile).
		Int("size", cfg.RenderSize).
		Dur("elapsed", time.Since(start)).
		Msg("plot written")
	return nil
}
