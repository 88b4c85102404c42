package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	formatPlain = "plain"
	formatJSON  = "json"
)

// outputConfig controls how the converted position is printed.
type outputConfig struct {
	Format    string // "plain" or "json"
	Precision int    // decimal places for plain output
	Geodetic  bool   // also emit geodetic coordinates
}

func defaultOutputConfig() outputConfig {
	return outputConfig{Format: formatPlain, Precision: 6}
}

type fileConfig struct {
	Format    string `toml:"format"`
	Precision int    `toml:"precision"`
	Geodetic  bool   `toml:"geodetic"`
}

// loadOutputConfig layers an optional TOML config file (ECI2ECEF_CONFIG)
// under per-key environment variables. Invalid values are logged and fall
// back to the previous layer.
func loadOutputConfig(logger *slog.Logger) outputConfig {
	cfg := defaultOutputConfig()

	if path := os.Getenv("ECI2ECEF_CONFIG"); path != "" {
		loaded, err := applyFileConfig(path, cfg)
		if err != nil {
			logger.Warn("failed to load config file, using defaults", "path", path, "error", err)
		} else {
			cfg = loaded
		}
	}

	if v := os.Getenv("ECI2ECEF_FORMAT"); v != "" {
		f := strings.ToLower(strings.TrimSpace(v))
		if f != formatPlain && f != formatJSON {
			logger.Warn("invalid ECI2ECEF_FORMAT value, using default", "value", v, "default", cfg.Format)
		} else {
			cfg.Format = f
		}
	}

	if v := os.Getenv("ECI2ECEF_PRECISION"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 17 {
			logger.Warn("invalid ECI2ECEF_PRECISION value, using default", "value", v, "default", cfg.Precision)
		} else {
			cfg.Precision = n
		}
	}

	if v := os.Getenv("ECI2ECEF_GEODETIC"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid ECI2ECEF_GEODETIC value, using default", "value", v, "default", cfg.Geodetic)
		} else {
			cfg.Geodetic = b
		}
	}

	return cfg
}

// applyFileConfig reads a TOML file and overlays only the keys it defines.
func applyFileConfig(path string, cfg outputConfig) (outputConfig, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cfg, fmt.Errorf("load output config: %w", err)
	}

	if meta.IsDefined("format") {
		f := strings.ToLower(strings.TrimSpace(raw.Format))
		if f != formatPlain && f != formatJSON {
			return cfg, fmt.Errorf("load output config: unknown format %q", raw.Format)
		}
		cfg.Format = f
	}

	if meta.IsDefined("precision") {
		if raw.Precision < 0 || raw.Precision > 17 {
			return cfg, fmt.Errorf("load output config: precision %d out of range", raw.Precision)
		}
		cfg.Precision = raw.Precision
	}

	if meta.IsDefined("geodetic") {
		cfg.Geodetic = raw.Geodetic
	}

	return cfg, nil
}
