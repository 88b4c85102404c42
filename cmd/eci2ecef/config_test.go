package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eci2ecef.toml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestApplyFileConfig(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     outputConfig
		wantErr  bool
	}{
		{
			name:     "all keys",
			contents: "format = \"json\"\nprecision = 3\ngeodetic = true\n",
			want:     outputConfig{Format: formatJSON, Precision: 3, Geodetic: true},
		},
		{
			name:     "partial overlay keeps defaults",
			contents: "precision = 9\n",
			want:     outputConfig{Format: formatPlain, Precision: 9},
		},
		{
			name:     "unknown format",
			contents: "format = \"xml\"\n",
			wantErr:  true,
		},
		{
			name:     "precision out of range",
			contents: "precision = 40\n",
			wantErr:  true,
		},
		{
			name:     "malformed toml",
			contents: "format = \n",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.contents)

			got, err := applyFileConfig(path, defaultOutputConfig())
			if tt.wantErr {
				if err == nil {
					t.Fatal("applyFileConfig() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("applyFileConfig() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("applyFileConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadOutputConfigEnvOverridesFile(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	path := writeConfigFile(t, "format = \"json\"\nprecision = 3\n")
	t.Setenv("ECI2ECEF_CONFIG", path)
	t.Setenv("ECI2ECEF_PRECISION", "12")
	t.Setenv("ECI2ECEF_GEODETIC", "true")

	cfg := loadOutputConfig(logger)

	if cfg.Format != formatJSON {
		t.Errorf("Format = %q, want %q from config file", cfg.Format, formatJSON)
	}
	if cfg.Precision != 12 {
		t.Errorf("Precision = %d, want 12 from environment override", cfg.Precision)
	}
	if !cfg.Geodetic {
		t.Error("Geodetic = false, want true from environment")
	}
}

func TestLoadOutputConfigInvalidEnvFallsBack(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Setenv("ECI2ECEF_CONFIG", "")
	t.Setenv("ECI2ECEF_FORMAT", "yaml")
	t.Setenv("ECI2ECEF_PRECISION", "-1")
	t.Setenv("ECI2ECEF_GEODETIC", "maybe")

	cfg := loadOutputConfig(logger)

	if cfg != defaultOutputConfig() {
		t.Errorf("loadOutputConfig() = %+v, want defaults %+v", cfg, defaultOutputConfig())
	}
}

func TestLoadOutputConfigMissingFileFallsBack(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Setenv("ECI2ECEF_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	cfg := loadOutputConfig(logger)

	if cfg != defaultOutputConfig() {
		t.Errorf("loadOutputConfig() = %+v, want defaults %+v", cfg, defaultOutputConfig())
	}
}
