// Command sketchdemo runs the built-in sketches, in a window or headless.
//
//	sketchdemo -list
//	sketchdemo -sketch clock
//	sketchdemo -sketch cardioid -frames 60 -output cardioid.gif
//	sketchdemo -sketch life -frames 10 -output life.png
//	sketchdemo -sketch waves -config ~/.config/sketch.toml
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/integration/ebitenhost"
	"github.com/gogpu/sketch/internal/sketches"
)

func main() {
	var (
		name    = flag.String("sketch", "clock", "sketch to run")
		list    = flag.Bool("list", false, "list sketches and exit")
		frames  = flag.Int("frames", 0, "render this many frames headless instead of opening a window")
		output  = flag.String("output", "sketch.gif", "headless output file (.gif or .png)")
		config  = flag.String("config", "", "TOML or YAML file overriding the sketch options")
		seed    = flag.Uint64("seed", 0, "random seed (0 picks one)")
		stats   = flag.Bool("stats", false, "show the stats overlay")
		verbose = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	if *list {
		for _, s := range sketches.All() {
			fmt.Printf("%-10s %s\n", s.Name, s.About)
		}
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	s, ok := sketches.Lookup(*name)
	if !ok {
		log.Fatalf("unknown sketch %q (see -list)", *name)
	}

	opts := s.Options()
	if *config != "" {
		cfg, err := sketch.LoadConfig(*config)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		extra, err := cfg.Options()
		if err != nil {
			log.Fatalf("Invalid config: %v", err)
		}
		opts = append(opts, extra...)
	}
	if *seed != 0 {
		opts = append(opts, sketch.WithSeed(*seed))
	}
	if *stats {
		opts = append(opts, sketch.WithStats(true))
	}

	app, err := sketch.New(opts...)
	if err != nil {
		log.Fatalf("Failed to create sketch: %v", err)
	}

	if *frames <= 0 {
		if err := ebitenhost.Run(app); err != nil {
			log.Fatalf("Window: %v", err)
		}
		return
	}

	if err := renderHeadless(app, *frames, *output); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	log.Printf("%s: %d frames saved to %s", s.Name, *frames, *output)
}

// renderHeadless draws n frames and writes them as an animated GIF, or the
// last one as a PNG. An app with an export path already records every
// frame in Step, so it is not exported twice.
func renderHeadless(app *sketch.App, n int, output string) error {
	c := app.Canvas()
	gif := strings.EqualFold(filepath.Ext(output), ".gif")
	recorded := app.Options().ExportPath != ""

	for range n {
		app.Step()
		if gif && !recorded {
			if err := c.ExportFrame(); err != nil {
				return err
			}
		}
	}

	var err error
	if gif {
		err = c.SaveFrames(output, app.Options().IntervalMs())
	} else {
		err = c.SaveFrame(output)
	}
	if err != nil {
		return err
	}
	return app.Close()
}
