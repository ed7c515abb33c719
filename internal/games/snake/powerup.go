package snake

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

const (
	slowMotionModifier = 1.5
	speedBoostModifier = 0.7
)

// ActivePowerUp is a running effect as seen by callers.
type ActivePowerUp struct {
	PowerUp
	StartTime time.Time
	EndTime   time.Time
	Remaining time.Duration
	Progress  float64
}

type activeEffect struct {
	def       PowerUp
	startTime time.Time
	endTime   time.Time
	remaining time.Duration // set while paused
	timer     *core.Timer
}

// PowerUpManager keeps at most one running instance per power-up id and
// expires them through the shared timer queue.
type PowerUpManager struct {
	catalog   *Catalog
	timers    *core.TimerQueue
	logger    *log.Logger
	active    map[PowerUpID]*activeEffect
	order     []PowerUpID // activation order
	paused    bool
	onExpired func(PowerUpID)
}

// NewPowerUpManager creates a manager using timers for expiry.
func NewPowerUpManager(catalog *Catalog, timers *core.TimerQueue, logger *log.Logger) *PowerUpManager {
	return &PowerUpManager{
		catalog: catalog,
		timers:  timers,
		logger:  orDiscard(logger),
		active:  make(map[PowerUpID]*activeEffect),
	}
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}

// OnExpired registers the callback run once per deactivation.
// ClearAll does not call it.
func (m *PowerUpManager) OnExpired(fn func(PowerUpID)) {
	m.onExpired = fn
}

func (m *PowerUpManager) now() time.Time {
	return m.timers.Clock().Now()
}

// Activate starts the power-up with its full duration. An already running
// instance is deactivated first, so durations never stack. Unknown ids are
// logged and ignored, returning ok=false.
func (m *PowerUpManager) Activate(id PowerUpID) (ActivePowerUp, bool) {
	def, ok := m.catalog.PowerUp(id)
	if !ok {
		m.logger.Warn("unknown power-up", "id", id)
		return ActivePowerUp{}, false
	}

	if _, running := m.active[id]; running {
		m.Deactivate(id)
	}

	now := m.now()
	e := &activeEffect{
		def:       def,
		startTime: now,
		endTime:   now.Add(def.Duration),
		remaining: def.Duration,
	}
	if !m.paused {
		e.timer = m.timers.AfterFunc(def.Duration, func() { m.Deactivate(id) })
	}
	m.active[id] = e
	m.order = append(m.order, id)

	m.logger.Debug("power-up activated", "id", id, "duration", def.Duration)
	return m.view(e, now), true
}

// Deactivate ends the power-up and notifies OnExpired. It is a no-op when
// the power-up is not running.
func (m *PowerUpManager) Deactivate(id PowerUpID) bool {
	if !m.remove(id) {
		return false
	}
	m.logger.Debug("power-up expired", "id", id)
	if m.onExpired != nil {
		m.onExpired(id)
	}
	return true
}

func (m *PowerUpManager) remove(id PowerUpID) bool {
	e, ok := m.active[id]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(m.active, id)
	for i, o := range m.order {
		if o == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// ClearAll removes every power-up without notifying OnExpired.
func (m *PowerUpManager) ClearAll() {
	for _, id := range append([]PowerUpID(nil), m.order...) {
		m.remove(id)
	}
	m.paused = false
}

// Pause cancels every expiry timer and freezes the remaining times.
func (m *PowerUpManager) Pause() {
	if m.paused {
		return
	}
	m.paused = true
	now := m.now()
	for _, e := range m.active {
		e.timer.Stop()
		e.timer = nil
		e.remaining = max(e.endTime.Sub(now), 0)
	}
}

// Resume restarts the expiry timers from the frozen remaining times.
// Start times shift by the paused duration so progress continues where
// it stopped.
func (m *PowerUpManager) Resume() {
	if !m.paused {
		return
	}
	m.paused = false
	now := m.now()
	for _, id := range m.order {
		e := m.active[id]
		e.endTime = now.Add(e.remaining)
		e.startTime = e.endTime.Add(-e.def.Duration)
		e.timer = m.timers.AfterFunc(e.remaining, func() { m.Deactivate(id) })
	}
}

// IsPaused reports whether the timers are frozen.
func (m *PowerUpManager) IsPaused() bool {
	return m.paused
}

// IsActive reports whether the power-up is running.
func (m *PowerUpManager) IsActive(id PowerUpID) bool {
	_, ok := m.active[id]
	return ok
}

// TimeRemaining returns how long the power-up still runs, or 0.
func (m *PowerUpManager) TimeRemaining(id PowerUpID) time.Duration {
	e, ok := m.active[id]
	if !ok {
		return 0
	}
	return m.remainingOf(e, m.now())
}

// Progress returns the elapsed fraction of the power-up's duration in
// [0,1], or 0 when it is not running.
func (m *PowerUpManager) Progress(id PowerUpID) float64 {
	e, ok := m.active[id]
	if !ok {
		return 0
	}
	return m.progressOf(e, m.now())
}

func (m *PowerUpManager) remainingOf(e *activeEffect, now time.Time) time.Duration {
	if m.paused {
		return e.remaining
	}
	return max(e.endTime.Sub(now), 0)
}

func (m *PowerUpManager) progressOf(e *activeEffect, now time.Time) float64 {
	elapsed := e.def.Duration - m.remainingOf(e, now)
	return core.ClampF(float64(elapsed)/float64(e.def.Duration), 0, 1)
}

func (m *PowerUpManager) view(e *activeEffect, now time.Time) ActivePowerUp {
	return ActivePowerUp{
		PowerUp:   e.def,
		StartTime: e.startTime,
		EndTime:   e.endTime,
		Remaining: m.remainingOf(e, now),
		Progress:  m.progressOf(e, now),
	}
}

// ActivePowerUps lists running power-ups in activation order.
func (m *PowerUpManager) ActivePowerUps() []ActivePowerUp {
	now := m.now()
	out := make([]ActivePowerUp, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.view(m.active[id], now))
	}
	return out
}

// HasShield reports whether collisions are currently ignored.
func (m *PowerUpManager) HasShield() bool { return m.IsActive(PowerUpShield) }

// HasDoublePoints reports whether food points are doubled.
func (m *PowerUpManager) HasDoublePoints() bool { return m.IsActive(PowerUpDoublePoints) }

// HasSlowMotion reports whether the tick interval is stretched.
func (m *PowerUpManager) HasSlowMotion() bool { return m.IsActive(PowerUpSlowMotion) }

// HasSpeedBoost reports whether the tick interval is shortened.
func (m *PowerUpManager) HasSpeedBoost() bool { return m.IsActive(PowerUpSpeedBoost) }

// SpeedModifier returns the factor applied to the tick interval.
// Slow motion wins if both speed effects are somehow running.
func (m *PowerUpManager) SpeedModifier() float64 {
	switch {
	case m.HasSlowMotion():
		return slowMotionModifier
	case m.HasSpeedBoost():
		return speedBoostModifier
	default:
		return 1
	}
}

// AffectsSpeed reports whether the power-up changes the tick interval.
func AffectsSpeed(id PowerUpID) bool {
	return id == PowerUpSlowMotion || id == PowerUpSpeedBoost
}
