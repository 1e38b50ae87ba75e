// pathtracer renders offline Monte Carlo path-traced scenes to PNG.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/droidkid/ray-tracing-weekend-go/pkg/camera"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/renderer"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/scene"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"
)

var opts struct {
	sceneName  string
	objPath    string
	configPath string
	outPath    string
	width      int
	height     int
	samples    int
	depth      int
	threads    int
	bg         string
	seed       int64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pathtracer: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pathtracer",
		Short: "Offline Monte Carlo path tracer",
	}
	root.AddCommand(newRenderCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to a PNG file",
		RunE:  runRender,
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.sceneName, "scene", "cornell", "scene to render: cornell, spheres, die, obj, gltf")
	flags.StringVar(&opts.objPath, "obj", "", "mesh/texture path required by the spheres (texture directory), die, obj, and gltf scenes")
	flags.StringVar(&opts.configPath, "config", "", "optional YAML config overriding render parameters")
	flags.StringVar(&opts.outPath, "out", "render.png", "output PNG path")
	flags.IntVar(&opts.width, "width", 0, "raster width (0 uses the scene's default)")
	flags.IntVar(&opts.height, "height", 0, "raster height (0 uses the scene's default)")
	flags.IntVar(&opts.samples, "samples", 50, "samples per pixel")
	flags.IntVar(&opts.depth, "depth", 50, "maximum recursive scatter depth")
	flags.IntVar(&opts.threads, "threads", 8, "number of rendering worker goroutines")
	flags.StringVar(&opts.bg, "bg", "", "background color override, as a hex string (e.g. #87ceeb)")
	flags.Int64Var(&opts.seed, "seed", 0, "RNG seed (0 selects a time-derived seed)")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewSource(seedOrTime(opts.seed)))

	built, err := buildScene(opts.sceneName, rng)
	if err != nil {
		return fmt.Errorf("build scene %q: %w", opts.sceneName, err)
	}

	if opts.configPath != "" {
		cfg, err := scene.LoadConfig(opts.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if cfg.Camera.VerticalFovDeg > 0 {
			built.Camera = applyConfigCamera(built.Camera, cfg)
		}
		if cfg.BackgroundColor != "" {
			bg, err := scene.ParseHexColor(cfg.BackgroundColor)
			if err != nil {
				return fmt.Errorf("config background_color: %w", err)
			}
			built.Background = bg
		}
		flags := cmd.Flags()
		if cfg.SamplesPerPixel > 0 && !flags.Changed("samples") {
			opts.samples = cfg.SamplesPerPixel
		}
		if cfg.RecursiveDepth > 0 && !flags.Changed("depth") {
			opts.depth = cfg.RecursiveDepth
		}
		if cfg.NumThreads > 0 && !flags.Changed("threads") {
			opts.threads = cfg.NumThreads
		}
	}

	if opts.bg != "" {
		bg, err := scene.ParseHexColor(opts.bg)
		if err != nil {
			return fmt.Errorf("parse --bg: %w", err)
		}
		built.Background = bg
	}

	cam := built.Camera
	if opts.width > 0 {
		cam.RasterWidth = opts.width
	}
	if opts.height > 0 {
		cam.RasterHeight = opts.height
	}

	fb := renderer.NewFramebuffer(cam.RasterWidth, cam.RasterHeight)

	progress := renderer.NewProgressReporter(os.Stderr, 10)
	progress.Start()
	defer progress.Stop()

	renderer.Render(built.Scene, cam, fb, renderer.Config{
		SamplesPerPixel: opts.samples,
		RecursiveDepth:  opts.depth,
		NumThreads:      opts.threads,
		Background:      built.Background,
		Seed:            opts.seed,
		OnProgress:      progress.Callback(),
	})
	progress.Stop()
	fmt.Fprintln(os.Stderr)

	if err := fb.SavePNG(opts.outPath); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", opts.outPath)
	return nil
}

func buildScene(name string, rng *rand.Rand) (scene.Built, error) {
	switch name {
	case "cornell":
		return scene.CornellBox(rng), nil
	case "spheres":
		if opts.objPath == "" {
			return scene.Built{}, fmt.Errorf("--obj must name a directory containing earthmap.jpg and mars.jpg")
		}
		return scene.SpheresAndCubes(opts.objPath+"/earthmap.jpg", opts.objPath+"/mars.jpg", rng)
	case "die":
		if opts.objPath == "" {
			return scene.Built{}, fmt.Errorf("--obj must name the die face texture image")
		}
		return scene.DieBox(opts.objPath, rng)
	case "obj":
		if opts.objPath == "" {
			return scene.Built{}, fmt.Errorf("--obj must name a .obj file")
		}
		return scene.FromOBJ(opts.objPath, rng)
	case "gltf":
		if opts.objPath == "" {
			return scene.Built{}, fmt.Errorf("--obj must name a .glb/.gltf file")
		}
		return scene.FromGLTF(opts.objPath, rng)
	default:
		return scene.Built{}, fmt.Errorf("unknown scene %q", name)
	}
}

func applyConfigCamera(cam camera.Camera, cfg scene.Config) camera.Camera {
	c := cfg.Camera
	from, to, vup := vecOf(c.From), vecOf(c.To), vecOf(c.Vup)
	width, height := cam.RasterWidth, cam.RasterHeight
	if cfg.RasterWidth > 0 {
		width = cfg.RasterWidth
	}
	if cfg.RasterHeight > 0 {
		height = cfg.RasterHeight
	}
	aspectRatio := cam.AspectRatio
	if cfg.AspectRatio > 0 {
		aspectRatio = cfg.AspectRatio
	}
	return camera.New(from, to, vup, c.VerticalFovDeg, aspectRatio, c.FocusDist, c.Aperture, width, height)
}

func vecOf(a [3]float64) vec3.Vec3 {
	return vec3.V3(a[0], a[1], a[2])
}

func seedOrTime(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
