package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Tech-T1tans/StudyBuddy-version-control/internal/kv"
	"github.com/Tech-T1tans/StudyBuddy-version-control/internal/model"
)

const soundPrefKey = "notification_sound"

// Tone is a single oscillator step of a notification cue.
type Tone struct {
	Frequency float64 // Hz
	At        time.Duration
}

// Player renders a tone sequence. Implementations are best-effort; a
// failing player never breaks notification delivery.
type Player interface {
	Play(tones []Tone) error
}

// SoundService owns the global sound-enabled preference and maps
// notification types to their cue.
type SoundService struct {
	mu      sync.Mutex
	kv      kv.Store
	player  Player
	logger  *zap.Logger
	enabled bool
}

func NewSoundService(kvs kv.Store, player Player, logger *zap.Logger) *SoundService {
	s := &SoundService{
		kv:     kvs,
		player: player,
		logger: logger,
	}
	s.enabled = s.loadPreference()
	return s
}

// loadPreference 读取声音开关，默认开启
func (s *SoundService) loadPreference() bool {
	value, err := s.kv.Get(context.Background(), kv.NamespacePrefs, soundPrefKey)
	if err != nil {
		return true
	}
	return value != "false"
}

func (s *SoundService) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

func (s *SoundService) SetEnabled(ctx context.Context, enabled bool) {
	s.mu.Lock()
	s.enabled = enabled
	s.mu.Unlock()

	value := "true"
	if !enabled {
		value = "false"
	}
	if err := s.kv.Set(ctx, kv.NamespacePrefs, soundPrefKey, value); err != nil {
		s.logger.Warn("Failed to persist sound preference", zap.Error(err))
	}
}

// Toggle flips the preference and returns the new state.
func (s *SoundService) Toggle(ctx context.Context) bool {
	enabled := !s.Enabled()
	s.SetEnabled(ctx, enabled)
	return enabled
}

// Cue plays the tone sequence for a notification type. Failures are
// swallowed.
func (s *SoundService) Cue(notificationType string) {
	if !s.Enabled() || s.player == nil {
		return
	}
	if err := s.player.Play(tonesFor(notificationType)); err != nil {
		s.logger.Debug("Notification sound failed", zap.Error(err))
	}
}

// tonesFor returns the cue for a type. Frequencies follow the C5/E5/G5
// chord the web app used.
func tonesFor(notificationType string) []Tone {
	switch notificationType {
	case model.TypeSuccess:
		// ascending C5 E5 G5
		return []Tone{
			{Frequency: 523.25, At: 0},
			{Frequency: 659.25, At: 100 * time.Millisecond},
			{Frequency: 783.99, At: 200 * time.Millisecond},
		}
	case model.TypeWarning:
		// two quick beeps on A4
		return []Tone{
			{Frequency: 440, At: 0},
			{Frequency: 440, At: 150 * time.Millisecond},
		}
	case model.TypeMotivational:
		return []Tone{
			{Frequency: 523.25, At: 0},
			{Frequency: 659.25, At: 80 * time.Millisecond},
			{Frequency: 783.99, At: 160 * time.Millisecond},
		}
	default:
		return []Tone{{Frequency: 800, At: 0}}
	}
}
