package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler captures a CPU profile and execution trace when a tick runs over budget
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	budget          time.Duration
	profilesDir     string
	logger          *slog.Logger
}

// NewProfiler creates a profiler that writes into dir
func NewProfiler(dir string, logger *slog.Logger) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profiles dir: %w", err)
	}
	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		budget:          slowTickBudgetMs * time.Millisecond,
		profilesDir:     dir,
		logger:          logger,
	}, nil
}

// Observe records how long a tick took and starts a capture if it was too slow
func (p *Profiler) Observe(tick uint64, elapsed time.Duration) {
	if p == nil || elapsed <= p.budget {
		return
	}
	p.logger.Warn("slow tick", "tick", tick, "elapsed", elapsed)
	if err := p.CaptureProfile(fmt.Sprintf("tick%d", tick)); err != nil {
		p.logger.Debug("profile capture skipped", "error", err)
	}
}

// CaptureProfile captures CPU profile and trace in the background
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", time.Since(p.lastCaptureTime))
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("slow-%s-%s", time.Now().Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.capture(baseName+".cpu.prof", pprof.StartCPUProfile, pprof.StopCPUProfile); err != nil {
				p.logger.Error("cpu profile failed", "error", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.capture(baseName+".trace", trace.Start, trace.Stop); err != nil {
				p.logger.Error("trace failed", "error", err)
			}
		}()
		wg.Wait()

		p.summarize(baseName)
	}()
	return nil
}

// capture runs start/stop around captureDuration, writing into a new file
func (p *Profiler) capture(name string, start func(io.Writer) error, stop func()) error {
	path := filepath.Join(p.profilesDir, name)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := start(file); err != nil {
		return fmt.Errorf("failed to start capture: %w", err)
	}
	time.Sleep(p.captureDuration)
	stop()

	p.logger.Info("capture saved", "path", path)
	return nil
}

func (p *Profiler) summarize(baseName string) {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	info, err := os.Stat(profilePath)
	if err != nil {
		p.logger.Warn("could not analyze profile", "error", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.logger.Info("profile captured",
		"path", profilePath,
		"size_kb", info.Size()/1024,
		"alloc_kb", m.Alloc/1024,
		"sys_kb", m.Sys/1024,
		"num_gc", m.NumGC,
		"heap_objects", m.HeapObjects,
		"view", "go tool pprof -http=:8080 "+profilePath,
	)
}
