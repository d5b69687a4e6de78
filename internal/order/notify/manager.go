package notify

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"rompefaja/internal/metrics"
)

type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

const DefaultTTL = 5 * time.Second

type Notification struct {
	ID        string
	Message   string
	Type      Type
	Timestamp time.Time
}

// SoundPlayer plays the fixed notification sound. Playback is fire-and-
// forget; a failure is logged by the manager and never propagated.
type SoundPlayer interface {
	Play(ctx context.Context) error
}

// Manager produces, stores and expires short-lived notifications. Each
// notification removes itself after the TTL regardless of user interaction.
type Manager struct {
	mu            sync.Mutex
	notifications []Notification
	soundEnabled  bool
	seq           uint64

	ttl    time.Duration
	player SoundPlayer
	logger *zap.Logger
	now    func() time.Time
}

func NewManager(ttl time.Duration, player SoundPlayer, logger *zap.Logger) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		ttl:    ttl,
		player: player,
		logger: logger,
		now:    time.Now,
	}
}

func (m *Manager) Notify(message string, typ Type) Notification {
	m.mu.Lock()

	now := m.now()
	m.seq++
	// The sequence keeps ids unique even when two notifications land on
	// the same clock tick; the timestamp alone would let one expiry timer
	// remove both.
	notification := Notification{
		ID:        strconv.FormatInt(now.UnixNano(), 10) + "-" + strconv.FormatUint(m.seq, 10),
		Message:   message,
		Type:      typ,
		Timestamp: now,
	}
	m.notifications = append(m.notifications, notification)
	soundEnabled := m.soundEnabled
	m.mu.Unlock()

	metrics.NotificationsRaised.Inc()
	m.logger.Info("notification raised", zap.String("notificationId", notification.ID), zap.String("type", string(typ)), zap.String("message", message))

	if soundEnabled && m.player != nil {
		go m.playSound()
	}

	time.AfterFunc(m.ttl, func() {
		m.Remove(notification.ID)
	})

	return notification
}

func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.notifications[:0]
	for _, n := range m.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	m.notifications = kept
}

func (m *Manager) Notifications() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Notification, len(m.notifications))
	copy(out, m.notifications)
	return out
}

// ToggleSound flips the audio-cue preference and returns the new value. The
// preference is not persisted; every process start begins with sound off.
func (m *Manager) ToggleSound() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.soundEnabled = !m.soundEnabled
	return m.soundEnabled
}

func (m *Manager) SoundEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.soundEnabled
}

func (m *Manager) playSound() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := m.player.Play(ctx); err != nil {
		m.logger.Warn("notification sound playback failed", zap.Error(err))
	}
}
