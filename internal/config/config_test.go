package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Export.Format != "png" {
		t.Fatalf("format = %q, want png", cfg.Export.Format)
	}
	if cfg.Export.Quality != 95 {
		t.Fatalf("quality = %d, want 95", cfg.Export.Quality)
	}
	if cfg.Export.NamingPattern != "{locale}/{device}/{index}" {
		t.Fatalf("naming pattern = %q", cfg.Export.NamingPattern)
	}
	if cfg.MinIO.Enabled() {
		t.Fatal("minio enabled without an endpoint")
	}
	if cfg.Metrics.Enabled() {
		t.Fatal("metrics enabled without an address")
	}
}

func TestLoadMetricsAddr(t *testing.T) {
	t.Setenv("METRICS_ADDR", ":9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Metrics.Enabled() || cfg.Metrics.Addr != ":9090" {
		t.Fatalf("metrics = %+v", cfg.Metrics)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("EXPORT_FORMAT", "jpeg")
	t.Setenv("EXPORT_QUALITY", "80")
	t.Setenv("EXPORT_DEVICES", "iphone-6.9, ipad-13 ,")
	t.Setenv("EXPORT_LOCALES", "en,de")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Export.Format != "jpeg" || cfg.Export.Quality != 80 {
		t.Fatalf("export = %+v", cfg.Export)
	}

	devices := cfg.Export.DeviceList()
	if len(devices) != 2 || devices[0] != "iphone-6.9" || devices[1] != "ipad-13" {
		t.Fatalf("devices = %v", devices)
	}
	locales := cfg.Export.LocaleList()
	if len(locales) != 2 || locales[1] != "de" {
		t.Fatalf("locales = %v", locales)
	}
}

func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "bad format",
			env:  map[string]string{"EXPORT_FORMAT": "webp"},
		},
		{
			name: "quality out of range",
			env:  map[string]string{"EXPORT_QUALITY": "101"},
		},
		{
			name: "minio endpoint without credentials",
			env:  map[string]string{"MINIO_ENDPOINT": "localhost:9000"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestMinIOEnabledRequiresCredentials(t *testing.T) {
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_ACCESS_KEY_ID", "minio")
	t.Setenv("MINIO_SECRET_ACCESS_KEY", "minio123")
	t.Setenv("MINIO_BUCKET", "exports")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.MinIO.Enabled() || cfg.MinIO.Bucket != "exports" {
		t.Fatalf("minio = %+v", cfg.MinIO)
	}
}
