// Command shaperender renders a diagram file to SVG or PNG.
//
// Usage:
//
//	shaperender -in diagram.yaml -out diagram.svg
//	shaperender -in diagram.toml -out diagram.png -scale 2
//	shaperender -in diagram.yaml -out diagram.svg -watch
//
// The output format follows the extension of -out unless -format is set.
// The formats are those registered by the imported recording backends.
// With -watch the diagram and its stylesheet are rendered again whenever
// either file changes, until the process is interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"

	"github.com/gogpu/shape"
	"github.com/gogpu/shape/recording"
	_ "github.com/gogpu/shape/recording/backends/raster"
	_ "github.com/gogpu/shape/recording/backends/svg"
	"github.com/gogpu/shape/scene"
)

type config struct {
	in      string
	out     string
	format  string
	scale   float64
	outline bool
	watch   bool
	verbose bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.in, "in", "", "diagram file (.yaml, .yml or .toml)")
	flag.StringVar(&cfg.out, "out", "diagram.svg", "output file")
	flag.StringVar(&cfg.format, "format", "", "output format: svg or png (default: from -out)")
	flag.Float64Var(&cfg.scale, "scale", 1, "scale factor")
	flag.BoolVar(&cfg.outline, "outline", false, "paint shape outlines only")
	flag.BoolVar(&cfg.watch, "watch", false, "render again when the input changes")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	shape.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("shaperender failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, logger *slog.Logger) error {
	if cfg.in == "" {
		return errors.New("missing -in")
	}
	if cfg.scale <= 0 || math.IsNaN(cfg.scale) || math.IsInf(cfg.scale, 0) {
		return fmt.Errorf("invalid -scale %v", cfg.scale)
	}
	format, err := outputFormat(cfg)
	if err != nil {
		return err
	}
	cfg.format = format

	d, err := render(cfg)
	if err != nil {
		return err
	}
	logger.Info("rendered", "in", cfg.in, "out", cfg.out, "cells", len(d.Cells))
	if !cfg.watch {
		return nil
	}
	return watch(ctx, cfg, d, logger)
}

// outputFormat returns the name of the output format: -format when set,
// else the one registered for the extension of -out.
func outputFormat(cfg config) (string, error) {
	var (
		f   recording.Format
		err error
	)
	if cfg.format != "" {
		f, err = recording.LookupFormat(cfg.format)
	} else {
		f, err = recording.FormatForFile(cfg.out)
	}
	if err != nil {
		return "", fmt.Errorf("unsupported output: %w", err)
	}
	return f.Name, nil
}

// render loads the diagram, paints it and writes the output file.
func render(cfg config) (*scene.Diagram, error) {
	d, err := scene.Load(cfg.in)
	if err != nil {
		return nil, err
	}
	sheet, err := d.LoadStylesheet()
	if err != nil {
		return nil, err
	}

	w := int(math.Ceil(float64(d.Width) * cfg.scale))
	h := int(math.Ceil(float64(d.Height) * cfg.scale))
	var opts []recording.DocumentOption
	if d.Background != "" {
		opts = append(opts, recording.WithBackground(d.Background))
	}
	doc := recording.NewDocument(w, h, opts...)

	r := scene.NewRenderer(doc, sheet, scene.WithScale(cfg.scale), scene.WithOutline(cfg.outline))
	defer r.Close()
	if err := r.Sync(d); err != nil {
		return nil, err
	}

	if err := recording.RenderFile(doc, cfg.out, cfg.format); err != nil {
		return nil, err
	}
	return d, nil
}
