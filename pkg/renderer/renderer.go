package renderer

import (
	"math/rand"
	"sync"
	"time"

	rtcolor "github.com/droidkid/ray-tracing-weekend-go/pkg/color"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/camera"
)

// Config collects the parameters of a single render invocation.
type Config struct {
	SamplesPerPixel int
	RecursiveDepth  int
	NumThreads      int
	Background      rtcolor.Color
	// Seed drives both the camera's sample-ray jitter and each worker's
	// scatter RNG. Zero selects a time-derived seed (nondeterministic runs).
	Seed int64
	// OnProgress, if set, is invoked after every completed pixel with the
	// number of pixels completed so far and the total pixel count.
	OnProgress func(done, total int)
}

// Render runs the parallel work-queue renderer described by the project:
// the full list of per-pixel ray bundles is precomputed once (so sampling
// is deterministic given a fixed seed), wrapped in a mutex-guarded LIFO
// stack, and drained by Config.NumThreads workers. Each worker pops one
// bundle, computes its color with its own independent RNG stream, then
// writes exactly that pixel into fb under fb's own lock.
func Render(scene Scene, cam camera.Camera, fb *Framebuffer, cfg Config) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	samplingRNG := rand.New(rand.NewSource(seed))
	bundles := cam.GetRays(cfg.SamplesPerPixel, samplingRNG)

	queue := make([]int, len(bundles))
	for i := range queue {
		queue[i] = i
	}
	var queueMu sync.Mutex

	numThreads := cfg.NumThreads
	if numThreads < 1 {
		numThreads = 1
	}

	var completed int
	var progressMu sync.Mutex
	total := len(bundles)

	var wg sync.WaitGroup
	for worker := 0; worker < numThreads; worker++ {
		workerRNG := rand.New(rand.NewSource(seed + 1 + int64(worker)))
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()
			for {
				queueMu.Lock()
				if len(queue) == 0 {
					queueMu.Unlock()
					return
				}
				idx := queue[len(queue)-1]
				queue = queue[:len(queue)-1]
				queueMu.Unlock()

				bundle := bundles[idx]
				color := PixelColor(scene, bundle.Rays, cfg.RecursiveDepth, cfg.Background, rng)
				fb.SetPixel(bundle.X, bundle.Y, color)

				if cfg.OnProgress != nil {
					progressMu.Lock()
					completed++
					cfg.OnProgress(completed, total)
					progressMu.Unlock()
				}
			}
		}(workerRNG)
	}
	wg.Wait()
}
