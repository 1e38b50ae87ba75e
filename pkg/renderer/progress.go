package renderer

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/harmonica"
)

// ProgressReporter prints a periodically-updated progress bar to an
// io.Writer (typically stderr). Its displayed fraction is smoothed toward
// the true completion ratio with a critically-damped harmonica.Spring so
// bursts of fast-completing pixels (small, cheap background regions) don't
// make the bar visibly jump.
type ProgressReporter struct {
	w                   io.Writer
	refreshFPS          int
	spring              harmonica.Spring
	displayed, velocity float64

	mu                      sync.Mutex
	targetDone, targetTotal int

	stop chan struct{}
	done chan struct{}
}

// NewProgressReporter builds a reporter that redraws at refreshFPS.
func NewProgressReporter(w io.Writer, refreshFPS int) *ProgressReporter {
	if refreshFPS < 1 {
		refreshFPS = 10
	}
	return &ProgressReporter{
		w:          w,
		refreshFPS: refreshFPS,
		spring:     harmonica.NewSpring(harmonica.FPS(refreshFPS), 6.0, 1.0),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Start launches the redraw loop; Callback returns a func(done,total int)
// suitable for renderer.Config.OnProgress, which only updates the target
// ratio — the loop itself drives the smoothed redraw.
func (p *ProgressReporter) Start() {
	interval := time.Second / time.Duration(p.refreshFPS)

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				p.render(p.target())
				return
			case <-ticker.C:
				p.tick()
			}
		}
	}()
}

// Stop halts the redraw loop and blocks until its final frame is drawn.
func (p *ProgressReporter) Stop() {
	close(p.stop)
	<-p.done
}

// Callback returns the OnProgress hook that records the latest completion
// ratio; the redraw loop smooths toward it independently.
func (p *ProgressReporter) Callback() func(done, total int) {
	return func(done, total int) {
		p.mu.Lock()
		p.targetDone, p.targetTotal = done, total
		p.mu.Unlock()
	}
}

func (p *ProgressReporter) target() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.targetTotal == 0 {
		return 0
	}
	return float64(p.targetDone) / float64(p.targetTotal)
}

func (p *ProgressReporter) tick() {
	target := p.target()
	p.mu.Lock()
	p.displayed, p.velocity = p.spring.Update(p.displayed, p.velocity, target)
	displayed := p.displayed
	p.mu.Unlock()
	p.render(displayed)
}

func (p *ProgressReporter) render(ratio float64) {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	const width = 30
	filled := int(ratio * width)
	bar := make([]byte, width)
	for i := range bar {
		if i < filled {
			bar[i] = '='
		} else {
			bar[i] = ' '
		}
	}
	fmt.Fprintf(p.w, "\r[%s] %5.1f%%", bar, ratio*100)
}
