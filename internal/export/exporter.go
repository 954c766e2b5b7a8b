package export

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"sort"

	"github.com/disintegration/imaging"

	"appshot/internal/catalog"
	"appshot/internal/errcode"
	"appshot/internal/metrics"
	"appshot/internal/project"
)

const (
	defaultQuality = 95
	minQuality     = 1
	maxQuality     = 100
)

// Renderer produces one complete frame. *render.Assembler satisfies it.
type Renderer interface {
	Render(shot project.ScreenshotConfig, locale string, targetW, targetH int) (image.Image, error)
}

// ProgressFunc observes batch progress. done counts attempted items,
// including skips and failures, so it reaches total exactly once per run.
type ProgressFunc func(done, total int)

// Exporter drives batch exports: it enumerates locale x device x
// screenshot, renders each frame, and packs everything into one zip
// archive. Frames are rendered sequentially in a stable order.
type Exporter struct {
	renderer Renderer
	logger   *slog.Logger
}

// NewExporter builds an exporter. A nil logger falls back to the default.
func NewExporter(renderer Renderer, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{renderer: renderer, logger: logger}
}

// ExportAll renders every selected frame of the project and returns the
// zip archive bytes plus a per-item report. Unknown device identifiers
// are logged and skipped; a frame that fails to render or encode is
// recorded and the batch continues. Only archive assembly errors and
// context cancellation abort the run.
func (e *Exporter) ExportAll(ctx context.Context, p *project.Project, cfg project.ExportConfig, progress ProgressFunc) ([]byte, *Report, error) {
	done := metrics.ExportStarted()
	defer done()

	format := cfg.Format
	if format == "" {
		format = project.FormatPNG
	}
	quality := cfg.Quality
	if quality == 0 {
		quality = defaultQuality
	}
	if quality < minQuality {
		quality = minQuality
	}
	if quality > maxQuality {
		quality = maxQuality
	}

	shots := make([]project.ScreenshotConfig, len(p.Screenshots))
	copy(shots, p.Screenshots)
	sort.SliceStable(shots, func(i, j int) bool { return shots[i].Order < shots[j].Order })

	// An empty selection is not an error: it produces an empty archive
	// and zero progress calls.
	total := len(cfg.Locales) * len(cfg.Devices) * len(shots)
	report := &Report{Total: total}
	if total == 0 {
		e.logger.Warn("nothing selected to export",
			slog.Int("devices", len(cfg.Devices)),
			slog.Int("locales", len(cfg.Locales)),
			slog.Int("screenshots", len(shots)),
		)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	attempted := 0

	for _, locale := range cfg.Locales {
		for _, deviceID := range cfg.Devices {
			spec, ok := catalog.Device(deviceID)
			for i, shot := range shots {
				if err := ctx.Err(); err != nil {
					_ = zw.Close()
					return nil, report, fmt.Errorf("export canceled: %w", err)
				}
				index := i + 1
				name := SubstituteName(cfg.NamingPattern, locale, deviceID, index) + "." + string(format)
				attempted++

				item := ItemResult{Name: name, Locale: locale, Device: deviceID, Index: index}

				if !ok {
					e.logger.Warn("unknown device skipped", slog.String("device", deviceID))
					metrics.FrameFailed("unknown_device")
					item.Code = errcode.DeviceUnknown
					report.add(item)
					e.step(progress, attempted, total)
					continue
				}

				frame, err := e.renderer.Render(shot, locale, spec.Width, spec.Height)
				if err != nil {
					e.logger.Error("frame render failed",
						slog.String("name", name),
						slog.String("error", err.Error()),
					)
					metrics.FrameFailed("render")
					item.Code = errcode.RenderFailed
					item.Err = err.Error()
					report.add(item)
					e.step(progress, attempted, total)
					continue
				}

				// Encode into a scratch buffer first: a failed item must
				// leave no entry (not even a partial one) in the archive.
				var encoded bytes.Buffer
				if err := encodeFrame(&encoded, frame, format, quality); err != nil {
					e.logger.Error("frame encode failed",
						slog.String("name", name),
						slog.String("error", err.Error()),
					)
					metrics.FrameFailed("encode")
					item.Code = errcode.EncodeFailed
					item.Err = err.Error()
					report.add(item)
					e.step(progress, attempted, total)
					continue
				}

				w, err := zw.Create(name)
				if err != nil {
					_ = zw.Close()
					return nil, report, fmt.Errorf("create archive entry %q: %w", name, err)
				}
				if _, err := w.Write(encoded.Bytes()); err != nil {
					_ = zw.Close()
					return nil, report, fmt.Errorf("write archive entry %q: %w", name, err)
				}

				metrics.FrameRendered(string(format))
				item.Code = errcode.OK
				report.add(item)
				e.step(progress, attempted, total)
			}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, report, fmt.Errorf("finalize archive: %w", err)
	}

	e.logger.Info("export finished",
		slog.Int("total", report.Total),
		slog.Int("rendered", report.Rendered),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)
	return buf.Bytes(), report, nil
}

func (e *Exporter) step(progress ProgressFunc, done, total int) {
	if progress != nil {
		progress(done, total)
	}
}

func encodeFrame(w io.Writer, img image.Image, format project.ExportFormat, quality int) error {
	switch format {
	case project.FormatJPEG:
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
	default:
		return imaging.Encode(w, img, imaging.PNG)
	}
}
