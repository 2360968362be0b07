// Package perf tracks frame rate and system resource usage for the
// performance overlay. Frame timing is sampled on the render thread;
// CPU and memory are sampled on a background goroutine because the
// system probes block.
package perf

import (
	"os"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

const (
	// fpsSmoothing is the exponential moving average weight on the previous
	// FPS estimate; the instantaneous value gets the remainder.
	fpsSmoothing = 0.9

	// DefaultSampleInterval is how often the background sampler refreshes
	// CPU and memory statistics.
	DefaultSampleInterval = 500 * time.Millisecond

	// historySize is the number of recent FPS samples kept for the overlay
	// graph.
	historySize = 120
)

// Stats is a point-in-time snapshot of performance data.
type Stats struct {
	// FPS is the smoothed frames-per-second estimate.
	FPS float64

	// FrameMillis is the duration of the most recent frame in milliseconds.
	FrameMillis float64

	// FrameCount is the total number of frames recorded since startup.
	FrameCount uint64

	// CPUPercent is system-wide CPU utilization across all cores, 0-100.
	CPUPercent float64

	// MemUsedPercent is system memory utilization, 0-100.
	MemUsedPercent float64

	// MemUsedMB and MemTotalMB are system memory usage in megabytes.
	MemUsedMB  float64
	MemTotalMB float64

	// ProcessMemMB is this process's resident set size in megabytes.
	ProcessMemMB float64

	// FPSHistory holds recent smoothed FPS samples, oldest first.
	FPSHistory []float64
}

// Monitor aggregates frame timing with background system sampling.
type Monitor struct {
	mu sync.Mutex

	lastFrame       time.Time
	lastFrameMillis float64
	frameCount      uint64
	fps             float64
	history         []float64

	cpuPercent     float64
	memUsedPercent float64
	memUsedMB      float64
	memTotalMB     float64
	processMemMB   float64

	interval time.Duration
	proc     *process.Process
	stop     chan struct{}
	done     chan struct{}
}

// NewMonitor creates a Monitor with the default sample interval.
// Call Start to begin background sampling.
//
// Returns:
//   - *Monitor: the newly created monitor
func NewMonitor() *Monitor {
	m := &Monitor{
		interval: DefaultSampleInterval,
		history:  make([]float64, 0, historySize),
	}
	// Process probe failures leave proc nil; RSS then reads as zero.
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		m.proc = p
	}
	return m
}

// Start launches the background sampler. Safe to call once per monitor.
func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stop != nil {
		return
	}
	m.stop = make(chan struct{})
	m.done = make(chan struct{})
	go m.sampleLoop(m.stop, m.done)
}

// Stop halts the background sampler and waits for it to exit.
func (m *Monitor) Stop() {
	m.mu.Lock()
	stop, done := m.stop, m.done
	m.stop = nil
	m.done = nil
	m.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// FrameTick records a frame boundary and updates the smoothed FPS estimate.
// Call once per presented frame on the render thread.
func (m *Monitor) FrameTick() {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.frameCount++
	if m.lastFrame.IsZero() {
		m.lastFrame = now
		return
	}
	dt := now.Sub(m.lastFrame).Seconds()
	m.lastFrame = now
	if dt <= 0 {
		return
	}
	m.lastFrameMillis = dt * 1000.0

	instant := 1.0 / dt
	if m.fps == 0 {
		m.fps = instant
	} else {
		m.fps = fpsSmoothing*m.fps + (1-fpsSmoothing)*instant
	}

	m.history = append(m.history, m.fps)
	if len(m.history) > historySize {
		m.history = m.history[len(m.history)-historySize:]
	}
}

// Stats returns a snapshot of the current performance data.
//
// Returns:
//   - Stats: the snapshot; FPSHistory is a copy safe to retain
func (m *Monitor) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	history := make([]float64, len(m.history))
	copy(history, m.history)

	return Stats{
		FPS:            m.fps,
		FrameMillis:    m.lastFrameMillis,
		FrameCount:     m.frameCount,
		CPUPercent:     m.cpuPercent,
		MemUsedPercent: m.memUsedPercent,
		MemUsedMB:      m.memUsedMB,
		MemTotalMB:     m.memTotalMB,
		ProcessMemMB:   m.processMemMB,
		FPSHistory:     history,
	}
}

// sampleLoop refreshes CPU and memory statistics until stopped.
func (m *Monitor) sampleLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m.sample()
		}
	}
}

// sample probes gopsutil once and publishes the results.
func (m *Monitor) sample() {
	var cpuPct, memPct, memUsedMB, memTotalMB, procMB float64

	// A zero interval returns utilization since the previous call, which is
	// exactly the ticker period.
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		cpuPct = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		memPct = vm.UsedPercent
		memUsedMB = float64(vm.Used) / 1024 / 1024
		memTotalMB = float64(vm.Total) / 1024 / 1024
	}
	if m.proc != nil {
		if info, err := m.proc.MemoryInfo(); err == nil && info != nil {
			procMB = float64(info.RSS) / 1024 / 1024
		}
	}

	m.mu.Lock()
	m.cpuPercent = cpuPct
	m.memUsedPercent = memPct
	m.memUsedMB = memUsedMB
	m.memTotalMB = memTotalMB
	m.processMemMB = procMB
	m.mu.Unlock()
}
