package scene

import (
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	rtcolor "github.com/droidkid/ray-tracing-weekend-go/pkg/color"
)

// CameraConfig mirrors the camera parameters of SPEC_FULL's configuration
// section, using plain [3]float64 triples for points/directions so the
// YAML stays readable without a custom Vec3 unmarshaler.
type CameraConfig struct {
	From          [3]float64 `yaml:"from"`
	To            [3]float64 `yaml:"to"`
	Vup           [3]float64 `yaml:"vup"`
	VerticalFovDeg float64   `yaml:"vertical_fov_deg"`
	Aperture      float64    `yaml:"aperture"`
	FocusDist     float64    `yaml:"focus_dist"`
}

// Config is a render invocation's full parameter set, loadable from a YAML
// document.
type Config struct {
	AspectRatio      float64      `yaml:"aspect_ratio"`
	RasterWidth      int          `yaml:"raster_width"`
	RasterHeight     int          `yaml:"raster_height"`
	SamplesPerPixel  int          `yaml:"samples_per_pixel"`
	RecursiveDepth   int          `yaml:"recursive_depth"`
	NumThreads       int          `yaml:"num_threads"`
	BackgroundColor  string       `yaml:"background_color"` // hex, e.g. "#87ceeb"
	Camera           CameraConfig `yaml:"camera"`
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "scene: read config %q", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "scene: parse config %q", path)
	}
	return cfg, nil
}

// ParseHexColor parses a "#rrggbb" (or "rrggbb") string into a linear-RGB
// Color via go-colorful's sRGB hex parser, which also handles gamma
// decoding from the 8-bit hex representation.
func ParseHexColor(hex string) (rtcolor.Color, error) {
	c, err := colorful.Hex(normalizeHex(hex))
	if err != nil {
		return rtcolor.Color{}, errors.Wrapf(err, "scene: parse color %q", hex)
	}
	r, g, b := c.LinearRgb()
	return rtcolor.New(r, g, b), nil
}

func normalizeHex(hex string) string {
	if len(hex) > 0 && hex[0] != '#' {
		return "#" + hex
	}
	return hex
}
