// Tech radar entrypoint.
//
// Renders the hardcoded radar once. Without -out the chart opens in a window (File >
// Export PNG… saves it); with -out it is written headlessly as PNG or SVG and the
// program exits. Every error is fatal: it is logged and the process exits 1.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/Sant1agoAm1go/OAIT/cmd/techradar/uihelpers"
	"github.com/Sant1agoAm1go/OAIT/src/logging"
	"github.com/Sant1agoAm1go/OAIT/src/radar"
	"github.com/Sant1agoAm1go/OAIT/src/render"
)

type config struct {
	out      string
	format   string
	width    int
	height   int
	hint     bool
	logLevel string
}

func parseFlags(fs *flag.FlagSet, args []string) (config, error) {
	var cfg config
	def := render.DefaultOptions()
	fs.StringVar(&cfg.out, "out", "", "Write the chart to this file instead of opening a window")
	fs.StringVar(&cfg.format, "format", "", "Output format for --out (png|svg); defaults to the file extension")
	fs.IntVar(&cfg.width, "width", def.Width, "Figure width in pixels")
	fs.IntVar(&cfg.height, "height", def.Height, "Figure height in pixels (0 = derive from width)")
	fs.BoolVar(&cfg.hint, "hint", false, "Stamp a summary caption onto the chart (PNG only)")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, nil
}

// displayFunc shows a rendered chart; the window implementation blocks until closed.
type displayFunc func(img image.Image, opts render.Options) error

func run(cfg config, display displayFunc) error {
	if lvl, err := logging.ParseLevel(cfg.logLevel); err != nil {
		logging.Warnf("%v, keeping %s", err, logging.CurrentLevel())
	} else {
		logging.SetLevel(lvl)
	}
	ds := radar.Default()
	w, h := uihelpers.ComputeFigureDimensions(cfg.width, cfg.height)
	if w != cfg.width || h != cfg.height {
		logging.Debugf("figure size %dx%d clamped to %dx%d", cfg.width, cfg.height, w, h)
	}
	opts := render.DefaultOptions()
	opts.Width, opts.Height = w, h
	if cfg.hint {
		opts.Hint = hintText(ds)
	}
	rd, err := render.New(ds, opts)
	if err != nil {
		return err
	}
	logging.Debugf("radar: %d rings, %d quadrants, %d legend rows", len(ds.Rings), len(ds.Quadrants), len(ds.Legend()))

	if cfg.out != "" {
		return rd.Export(cfg.out, cfg.format)
	}
	img, err := rd.Image()
	if err != nil {
		return err
	}
	return display(img, rd.Options())
}

func hintText(ds radar.Dataset) string {
	return fmt.Sprintf("%d quadrants, %d rings, %d technologies", len(ds.Quadrants), len(ds.Rings), ds.TechnologyCount())
}

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if err := run(cfg, showWindow); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

