package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/codegithubka/boids-interactive/pkg/boids"
)

// fpsSmoothing is the weight of the newest inter-step interval in the
// exponentially weighted frame-rate estimate.
const fpsSmoothing = 0.1

// FrameData is what a session hands to its client after each step: the full
// world snapshot plus session-level state. Metrics is nil while the flock has
// no predators.
type FrameData struct {
	Snapshot boids.Snapshot      `json:"snapshot"`
	Metrics  *boids.FrameMetrics `json:"metrics,omitempty"`
	Mode     string              `json:"mode"`
	Paused   bool                `json:"paused"`
	FPS      float64             `json:"fps"`
}

// Manager owns one client's simulation: the flock, its mode, pause state and
// frame-rate bookkeeping. A manager is driven by a single goroutine; the
// Registry is the concurrency boundary between sessions.
type Manager struct {
	id     string
	mode   string
	seed   uint64
	sim    Simulation
	paused bool

	lastStep time.Time
	fps      float64

	log *zap.Logger
}

// NewManager creates a session with a freshly spawned flock.
func NewManager(id, mode string, params boids.Params, seed uint64, log *zap.Logger) (*Manager, error) {
	if log == nil {
		log = zap.NewNop()
	}
	sim, err := newSimulation(mode, params, seed)
	if err != nil {
		return nil, err
	}
	log.Info("session created",
		zap.String("session", id),
		zap.String("mode", mode),
		zap.Uint64("seed", seed),
		zap.Int("boids", params.NumBoids),
	)
	return &Manager{id: id, mode: mode, seed: seed, sim: sim, log: log}, nil
}

// ID returns the session identifier.
func (m *Manager) ID() string { return m.id }

// Mode returns "2d" or "3d".
func (m *Manager) Mode() string { return m.mode }

// Params returns the simulation's active parameters.
func (m *Manager) Params() boids.Params { return m.sim.Params() }

// Frame returns the simulation's frame counter.
func (m *Manager) Frame() uint64 { return m.sim.Frame() }

// Paused reports whether stepping is suspended.
func (m *Manager) Paused() bool { return m.paused }

// Pause suspends stepping. Step becomes a no-op until Resume.
func (m *Manager) Pause() {
	m.paused = true
	m.log.Debug("session paused", zap.String("session", m.id), zap.Uint64("frame", m.sim.Frame()))
}

// Resume re-enables stepping.
func (m *Manager) Resume() {
	m.paused = false
	m.lastStep = time.Time{}
	m.log.Debug("session resumed", zap.String("session", m.id))
}

// TogglePause flips the pause state and returns the new value.
func (m *Manager) TogglePause() bool {
	if m.paused {
		m.Resume()
	} else {
		m.Pause()
	}
	return m.paused
}

// Step advances the simulation one tick unless paused, then returns the
// frame data either way.
func (m *Manager) Step() FrameData {
	if !m.paused {
		m.trackRate(time.Now())
		m.sim.Step()
	}
	return m.FrameData()
}

func (m *Manager) trackRate(now time.Time) {
	if !m.lastStep.IsZero() {
		if dt := now.Sub(m.lastStep).Seconds(); dt > 0 {
			inst := 1 / dt
			if m.fps == 0 {
				m.fps = inst
			} else {
				m.fps += fpsSmoothing * (inst - m.fps)
			}
		}
	}
	m.lastStep = now
}

// FrameData returns the current state without advancing the simulation.
func (m *Manager) FrameData() FrameData {
	fd := FrameData{
		Snapshot: m.sim.Snapshot(),
		Mode:     m.mode,
		Paused:   m.paused,
		FPS:      m.fps,
	}
	if metrics, ok := m.sim.Metrics(); ok {
		fd.Metrics = &metrics
	}
	return fd
}

// Reset respawns the flock from its original seed and clears the rate
// estimate.
func (m *Manager) Reset() {
	m.sim.Reset()
	m.lastStep = time.Time{}
	m.fps = 0
	m.log.Info("session reset", zap.String("session", m.id))
}

// SetParams applies a parameter update with the session-level semantics:
// population or world-size changes respawn the flock from the original seed,
// predator toggles resize the predator set in place, and every other knob
// updates the running flock without disturbing it.
func (m *Manager) SetParams(p boids.Params) error {
	p = p.Clamped()
	old := m.sim.Params()

	if structuralChange(old, p) {
		sim, err := newSimulation(m.mode, p, m.seed)
		if err != nil {
			return err
		}
		m.sim = sim
		m.fps = 0
		m.lastStep = time.Time{}
		m.log.Info("session respawned",
			zap.String("session", m.id),
			zap.Int("boids", p.NumBoids),
		)
		return nil
	}

	m.sim.SetParams(p)
	if old.PredatorEnabled != p.PredatorEnabled || old.NumPredators != p.NumPredators {
		count := 0
		if p.PredatorEnabled {
			count = p.NumPredators
			if count < 1 {
				count = 1
			}
		}
		m.sim.SetPredatorCount(count)
		m.log.Debug("predator count updated",
			zap.String("session", m.id),
			zap.Int("predators", count),
		)
	}
	return nil
}

func structuralChange(old, p boids.Params) bool {
	return old.NumBoids != p.NumBoids ||
		old.Width != p.Width ||
		old.Height != p.Height ||
		old.Depth != p.Depth
}

// SetMode switches between 2D and 3D, respawning the flock from the original
// seed with the current parameters.
func (m *Manager) SetMode(mode string) error {
	if mode == m.mode {
		return nil
	}
	sim, err := newSimulation(mode, m.sim.Params(), m.seed)
	if err != nil {
		return err
	}
	m.mode = mode
	m.sim = sim
	m.fps = 0
	m.lastStep = time.Time{}
	m.log.Info("session mode switched", zap.String("session", m.id), zap.String("mode", mode))
	return nil
}

// AddBoids grows the population and returns the new size.
func (m *Manager) AddBoids(n int) (int, error) { return m.sim.AddBoids(n) }

// AddObstacle places an obstacle from client coordinates.
func (m *Manager) AddObstacle(coords []float64, radius float64) (int, error) {
	return m.sim.AddObstacle(coords, radius)
}

// RemoveObstacle deletes the obstacle at index i.
func (m *Manager) RemoveObstacle(i int) error { return m.sim.RemoveObstacle(i) }

// ClearObstacles removes all obstacles and returns how many were removed.
func (m *Manager) ClearObstacles() int { return m.sim.ClearObstacles() }

// AddPredator spawns one predator and returns its index.
func (m *Manager) AddPredator() (int, error) { return m.sim.AddPredator() }

// RemovePredator deletes the predator at index i.
func (m *Manager) RemovePredator(i int) error { return m.sim.RemovePredator(i) }
