package scene

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	src := `aspect_ratio: 1.5
raster_width: 300
raster_height: 200
samples_per_pixel: 100
recursive_depth: 50
num_threads: 4
background_color: "#87ceeb"
camera:
  from: [13, 2, 3]
  to: [0, 0, 0]
  vup: [0, 1, 0]
  vertical_fov_deg: 20
  aperture: 0.1
  focus_dist: 10
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.RasterWidth != 300 || cfg.RasterHeight != 200 {
		t.Errorf("raster size = %dx%d, want 300x200", cfg.RasterWidth, cfg.RasterHeight)
	}
	if cfg.Camera.From != [3]float64{13, 2, 3} {
		t.Errorf("camera.from = %v, want [13 2 3]", cfg.Camera.From)
	}
	if cfg.Camera.VerticalFovDeg != 20 {
		t.Errorf("camera.vertical_fov_deg = %v, want 20", cfg.Camera.VerticalFovDeg)
	}
}

func TestLoadConfigMissingFileErrors(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestParseHexColorWhiteAndBlack(t *testing.T) {
	white, err := ParseHexColor("#ffffff")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	if math.Abs(white.R-1) > 1e-9 || math.Abs(white.G-1) > 1e-9 || math.Abs(white.B-1) > 1e-9 {
		t.Errorf("white = %v, want (1,1,1)", white)
	}

	black, err := ParseHexColor("000000")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	if black.R != 0 || black.G != 0 || black.B != 0 {
		t.Errorf("black = %v, want (0,0,0)", black)
	}
}

func TestParseHexColorInvalidErrors(t *testing.T) {
	if _, err := ParseHexColor("not-a-color"); err == nil {
		t.Fatal("expected an error for an invalid hex color")
	}
}
