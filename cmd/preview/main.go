package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"

	"appshot/internal/catalog"
	"appshot/internal/project"
	"appshot/internal/render"
)

// Renders a single frame of a project to a PNG for quick inspection.
func main() {
	var (
		projectPath = flag.String("project", "", "path to the project JSON file (required)")
		index       = flag.Int("index", 0, "screenshot index within the project")
		locale      = flag.String("locale", "en", "locale to render")
		deviceID    = flag.String("device", "iphone-6.9", "target device identifier")
		outPath     = flag.String("out", "preview.png", "output PNG path")
	)
	flag.Parse()

	if *projectPath == "" {
		log.Fatal("missing required flag: --project")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	p, err := project.Load(*projectPath)
	if err != nil {
		log.Fatalf("load project: %v", err)
	}
	if *index < 0 || *index >= len(p.Screenshots) {
		log.Fatalf("screenshot index %d out of range (project has %d)", *index, len(p.Screenshots))
	}

	spec, ok := catalog.Device(*deviceID)
	if !ok {
		log.Fatalf("unknown device %q", *deviceID)
	}

	frame, err := render.NewAssembler(logger).Render(p.Screenshots[*index], *locale, spec.Width, spec.Height)
	if err != nil {
		log.Fatalf("render frame: %v", err)
	}

	if err := imaging.Save(frame, *outPath); err != nil {
		log.Fatalf("save preview: %v", err)
	}
	logger.Info("preview written", slog.String("path", *outPath))
}
