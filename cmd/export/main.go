package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"appshot/internal/config"
	"appshot/internal/export"
	"appshot/internal/project"
	"appshot/internal/render"
	"appshot/internal/storage"
)

func main() {
	var (
		projectPath = flag.String("project", "", "path to the project JSON file (required)")
		outputDir   = flag.String("output", "", "archive output directory (overrides EXPORT_OUTPUT_DIR)")
	)
	flag.Parse()

	if *projectPath == "" {
		log.Fatal("missing required flag: --project")
	}

	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	p, err := project.Load(*projectPath)
	if err != nil {
		log.Fatalf("load project: %v", err)
	}

	exportCfg := project.ExportConfig{
		Devices:       cfg.Export.DeviceList(),
		Locales:       cfg.Export.LocaleList(),
		Format:        project.ExportFormat(cfg.Export.Format),
		Quality:       cfg.Export.Quality,
		NamingPattern: cfg.Export.NamingPattern,
	}
	if len(exportCfg.Locales) == 0 {
		exportCfg.Locales = p.Locales
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Enabled() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: cfg.Metrics.Addr, Handler: mux}
		go func() {
			logger.Info("metrics endpoint listening", slog.String("addr", cfg.Metrics.Addr))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Warn("metrics endpoint failed", slog.Any("error", err))
			}
		}()
		defer srv.Close()
	}

	exporter := export.NewExporter(render.NewAssembler(logger), logger)

	archive, report, err := exporter.ExportAll(ctx, p, exportCfg, func(done, total int) {
		logger.Info("export progress", slog.Int("done", done), slog.Int("total", total))
	})
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	logger.Info("export complete",
		slog.Int("rendered", report.Rendered),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)

	dir := cfg.Export.OutputDir
	if *outputDir != "" {
		dir = *outputDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	archiveName := uuid.NewString() + ".zip"
	archivePath := filepath.Join(dir, archiveName)
	if err := os.WriteFile(archivePath, archive, 0o644); err != nil {
		log.Fatalf("write archive: %v", err)
	}
	logger.Info("archive written", slog.String("path", archivePath))

	if cfg.MinIO.Enabled() {
		storageClient, err := storage.NewClient(cfg.MinIO)
		if err != nil {
			log.Fatalf("init storage client: %v", err)
		}
		if err := storageClient.UploadArchive(ctx, archiveName, archive); err != nil {
			log.Fatalf("upload archive: %v", err)
		}
		downloadURL, err := storageClient.PresignedURL(ctx, archiveName)
		if err != nil {
			log.Fatalf("presign archive: %v", err)
		}
		logger.Info("archive uploaded", slog.String("download_url", downloadURL))
	}
}
