// Package renderer drives the pixel-parallel worker pool: it owns the
// pixel buffer, hands out row-chunks to workers via an atomic
// work-stealing counter, and exposes the start/stop/wait lifecycle a
// viewer or CLI drives the render loop through.
package renderer

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kestrelrender/raytracer/pkg/color"
	"github.com/kestrelrender/raytracer/pkg/integrator"
	"github.com/kestrelrender/raytracer/pkg/renderlog"
	"github.com/kestrelrender/raytracer/pkg/rterr"
	"github.com/kestrelrender/raytracer/pkg/scene"
)

// chunkRows is the number of rows a worker claims per fetch-add; the
// compile-time tunable the work-stealing loop is built around.
const chunkRows = 10

// Renderer owns the pixel buffer and the worker pool that fills it.
// A Renderer is safe for concurrent Pixels() reads while a render is
// in progress; every other method must be called from a single
// controlling goroutine.
type Renderer struct {
	width, height int
	pixels        []uint32
	scene         *scene.Scene
	integrator    *integrator.PathIntegrator
	logger        renderlog.Logger
	workers       int
	coarsePreview bool
	seed          int64 // 0 means entropy-seeded

	nextRow        atomic.Int64
	cancelFlag     atomic.Bool
	runningWorkers atomic.Int64

	startTime     time.Time
	lastDuration  time.Duration
	mu            sync.Mutex // guards startTime/lastDuration bookkeeping
	renderWG      sync.WaitGroup
	renderStarted bool
}

// Option configures a Renderer at construction.
type Option func(*Renderer)

// WithWorkers overrides the worker count (default: runtime.NumCPU()).
func WithWorkers(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithLogger overrides the progress logger (default: renderlog.Discard).
func WithLogger(l renderlog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithSeed fixes every worker's PRNG to a deterministic, seed-derived
// sequence instead of entropy, for reproducible test renders.
func WithSeed(seed int64) Option {
	return func(r *Renderer) {
		r.seed = seed
	}
}

// WithCoarsePreview overrides the scene's samples-per-pixel and
// max-ray-depth to 1 for a fast draft pass, independent of the
// worker-scheduling contract.
func WithCoarsePreview(enabled bool) Option {
	return func(r *Renderer) {
		r.coarsePreview = enabled
	}
}

// New creates a Renderer for a width x height image. The scene can be
// nil and supplied later via SetScene.
func New(width, height int, s *scene.Scene, opts ...Option) *Renderer {
	r := &Renderer{
		width:      width,
		height:     height,
		pixels:     make([]uint32, width*height),
		scene:      s,
		integrator: integrator.New(),
		logger:     renderlog.Discard,
		workers:    runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.Clear()
	return r
}

// SetScene replaces the active scene. Only valid when not rendering.
func (r *Renderer) SetScene(s *scene.Scene) error {
	if r.IsRendering() {
		return fmt.Errorf("renderer: set_scene called while rendering: %w", rterr.ErrInvalidState)
	}
	r.scene = s
	return nil
}

// Clear fills the pixel buffer with opaque black.
func (r *Renderer) Clear() {
	opaqueBlack := color.Black.Pack()
	for i := range r.pixels {
		r.pixels[i] = opaqueBlack
	}
}

// Width and Height report the image dimensions.
func (r *Renderer) Width() int  { return r.width }
func (r *Renderer) Height() int { return r.height }

// Pixels returns the raw RGBA8 buffer, row-major from the top-left.
// Safe to read concurrently with an in-progress render; individual
// 32-bit entries are written atomically by the target architecture,
// but there is no ordering guarantee across rows written by
// different workers.
func (r *Renderer) Pixels() []uint32 {
	return r.pixels
}

// IsRendering reports whether any worker is still active.
func (r *Renderer) IsRendering() bool {
	return r.runningWorkers.Load() > 0
}

// RenderPercentage returns the share of rows claimed so far, in [0, 100].
func (r *Renderer) RenderPercentage() float64 {
	pct := 100 * float64(r.nextRow.Load()) / float64(r.height)
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// LastRenderDuration returns how long the most recently completed
// render took. Zero until a render has finished.
func (r *Renderer) LastRenderDuration() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastDuration
}

// Stats is a point-in-time snapshot of render progress, the reduced
// form of the teacher's RenderStats/PixelStats this engine needs: a
// single-pass renderer has no per-pixel variance to report, only
// elapsed time and how many rows have been claimed.
type Stats struct {
	RowsCompleted int
	TotalRows     int
	Elapsed       time.Duration
	Rendering     bool
}

// Stats returns a snapshot of the current (or most recently finished)
// render's progress.
func (r *Renderer) Stats() Stats {
	rendering := r.IsRendering()
	rowsCompleted := int(r.nextRow.Load())
	if rowsCompleted > r.height {
		rowsCompleted = r.height
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	elapsed := r.lastDuration
	if rendering {
		elapsed = time.Since(r.startTime)
	}

	return Stats{
		RowsCompleted: rowsCompleted,
		TotalRows:     r.height,
		Elapsed:       elapsed,
		Rendering:     rendering,
	}
}

// StartRender spawns the worker pool and returns immediately; use
// WaitForRenderCompletion or poll IsRendering to observe progress.
// Requires no workers already running and a scene to be set.
func (r *Renderer) StartRender() error {
	if r.IsRendering() {
		return fmt.Errorf("renderer: start_render called while workers are running: %w", rterr.ErrInvalidState)
	}
	if r.scene == nil {
		return fmt.Errorf("renderer: start_render called with no scene set: %w", rterr.ErrInvalidState)
	}

	r.nextRow.Store(0)
	r.cancelFlag.Store(false)

	activeScene := r.scene
	depth := activeScene.Config.MaxRayDepth
	samples := activeScene.Config.SamplesPerPixel
	if r.coarsePreview {
		depth, samples = 1, 1
	}

	r.mu.Lock()
	r.startTime = time.Now()
	r.mu.Unlock()

	r.renderWG.Add(r.workers)
	r.runningWorkers.Store(int64(r.workers))
	r.renderStarted = true

	r.logger.Printf("starting render: %dx%d, %d workers, depth=%d, samples=%d\n", r.width, r.height, r.workers, depth, samples)

	for i := 0; i < r.workers; i++ {
		workerRNG := r.newWorkerRand(i)
		go r.runWorker(activeScene, depth, samples, workerRNG)
	}

	go func() {
		r.renderWG.Wait()
		r.mu.Lock()
		r.lastDuration = time.Since(r.startTime)
		r.mu.Unlock()
		r.logger.Printf("render complete in %v\n", r.lastDuration)
	}()

	return nil
}

// newWorkerRand returns the PRNG a worker should use: deterministic
// and seed-derived in test mode, entropy-seeded otherwise.
func (r *Renderer) newWorkerRand(workerIndex int) *rand.Rand {
	if r.seed != 0 {
		return rand.New(rand.NewSource(r.seed + int64(workerIndex)))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano() + int64(workerIndex)))
}

// runWorker claims row-chunks via fetch-add until the image is
// exhausted or cancellation is observed, checking for cancellation
// before each row it renders.
func (r *Renderer) runWorker(s *scene.Scene, depth, samples int, rng *rand.Rand) {
	defer r.renderWG.Done()
	defer r.runningWorkers.Add(-1)

	effectiveScene := s
	if depth != s.Config.MaxRayDepth || samples != s.Config.SamplesPerPixel {
		overridden := *s
		overridden.Config.MaxRayDepth = depth
		overridden.Config.SamplesPerPixel = samples
		effectiveScene = &overridden
	}

	for {
		if r.cancelFlag.Load() {
			return
		}
		start := int(r.nextRow.Add(chunkRows) - chunkRows)
		if start >= r.height {
			return
		}
		end := start + chunkRows
		if end > r.height {
			end = r.height
		}

		for y := start; y < end; y++ {
			if r.cancelFlag.Load() {
				return
			}
			row := y * r.width
			for x := 0; x < r.width; x++ {
				c := r.integrator.RenderPixel(effectiveScene, x, y, r.width, r.height, rng)
				r.pixels[row+x] = c.Pack()
			}
		}
	}
}

// StopRender raises the cancel flag and blocks until every worker has
// returned.
func (r *Renderer) StopRender() {
	r.cancelFlag.Store(true)
	r.WaitForRenderCompletion()
}

// WaitForRenderCompletion blocks until every worker has returned,
// without requesting cancellation.
func (r *Renderer) WaitForRenderCompletion() {
	if !r.renderStarted {
		return
	}
	r.renderWG.Wait()
}
