package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/skyward/eci2ecef/internal/transform"
)

const usage = "Usage: eci2ecef year month day hour minute second eci_x_km eci_y_km eci_z_km"

var errArgCount = errors.New("expected exactly 9 arguments")

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	cfg := loadOutputConfig(logger)
	os.Exit(run(os.Args[1:], cfg, os.Stdout, os.Stderr, logger))
}

// run executes one conversion and returns the process exit code. Stdout
// carries only the result; diagnostics go to the logger on stderr.
func run(args []string, cfg outputConfig, stdout, stderr io.Writer, logger *slog.Logger) int {
	civil, eci, err := parseArgs(args)
	if err != nil {
		if errors.Is(err, errArgCount) {
			fmt.Fprintln(stderr, usage)
			return 2
		}
		logger.Error("invalid argument", "error", err)
		return 1
	}

	ecef := transform.ECIToECEFAt(civil, eci)

	if !transform.ValidatePosition(ecef) {
		logger.Warn("position outside typical Earth-orbit range", "magnitude_km", ecef.Magnitude())
	}

	if err := writeResult(stdout, cfg, ecef); err != nil {
		logger.Error("failed to write result", "error", err)
		return 1
	}

	return 0
}

// parseArgs converts the nine positional arguments into pipeline inputs.
// Calendar field ranges are not validated; out-of-range values flow through
// the Julian Date formula unchecked.
func parseArgs(args []string) (transform.CivilDateTime, transform.Vector3, error) {
	var civil transform.CivilDateTime
	var eci transform.Vector3

	if len(args) != 9 {
		return civil, eci, errArgCount
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"year", &civil.Year},
		{"month", &civil.Month},
		{"day", &civil.Day},
		{"hour", &civil.Hour},
		{"minute", &civil.Minute},
	}
	for i, f := range ints {
		n, err := strconv.Atoi(args[i])
		if err != nil {
			return civil, eci, fmt.Errorf("parse %s %q: %w", f.name, args[i], err)
		}
		*f.dst = n
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"second", &civil.Second},
		{"eci_x_km", &eci.X},
		{"eci_y_km", &eci.Y},
		{"eci_z_km", &eci.Z},
	}
	for i, f := range floats {
		v, err := strconv.ParseFloat(args[i+5], 64)
		if err != nil {
			return civil, eci, fmt.Errorf("parse %s %q: %w", f.name, args[i+5], err)
		}
		*f.dst = v
	}

	return civil, eci, nil
}

// result is the JSON output shape. Geodetic fields are present only when
// geodetic output is enabled.
type result struct {
	EcefXKm      float64  `json:"ecef_x_km"`
	EcefYKm      float64  `json:"ecef_y_km"`
	EcefZKm      float64  `json:"ecef_z_km"`
	LatitudeDeg  *float64 `json:"latitude_deg,omitempty"`
	LongitudeDeg *float64 `json:"longitude_deg,omitempty"`
	AltitudeKm   *float64 `json:"altitude_km,omitempty"`
}

// writeResult prints the ECEF position (and optionally its geodetic
// equivalent) in the configured format. Plain output is one value per line,
// X, Y, Z order.
func writeResult(w io.Writer, cfg outputConfig, ecef transform.Vector3) error {
	switch cfg.Format {
	case formatJSON:
		res := result{
			EcefXKm: ecef.X,
			EcefYKm: ecef.Y,
			EcefZKm: ecef.Z,
		}
		if cfg.Geodetic {
			g := transform.ECEFToGeodetic(ecef)
			res.LatitudeDeg = &g.LatDeg
			res.LongitudeDeg = &g.LonDeg
			res.AltitudeKm = &g.AltKm
		}
		return json.NewEncoder(w).Encode(res)

	default:
		for _, v := range []float64{ecef.X, ecef.Y, ecef.Z} {
			if _, err := fmt.Fprintf(w, "%.*f\n", cfg.Precision, v); err != nil {
				return err
			}
		}
		if cfg.Geodetic {
			g := transform.ECEFToGeodetic(ecef)
			for _, v := range []float64{g.LatDeg, g.LonDeg, g.AltKm} {
				if _, err := fmt.Fprintf(w, "%.*f\n", cfg.Precision, v); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
