// Package audio plays procedural sound effects for game events.
// Everything is synthesized with beep streamers; no assets are loaded.
package audio

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-scroller/internal/games/scroller"
)

// Sound identifies an effect.
type Sound int

const (
	SoundNone Sound = iota
	SoundJump
	SoundHit
	SoundLevelUp
	SoundGameOver
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundHit:
		return "hit"
	case SoundLevelUp:
		return "level_up"
	case SoundGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// Config holds output settings.
type Config struct {
	SampleRate int
	Volume     float64 // Master volume in [0, 1]
}

// DefaultConfig returns 44.1kHz at 70% volume.
func DefaultConfig() Config {
	return Config{SampleRate: 44100, Volume: 0.7}
}

// ErrInvalidConfig is returned by NewSoundManager for unusable settings.
var ErrInvalidConfig = errors.New("audio: invalid config")

// SoundFor maps a game event to its effect.
func SoundFor(e scroller.Event) Sound {
	switch e {
	case scroller.EventJumped:
		return SoundJump
	case scroller.EventLifeLost:
		return SoundHit
	case scroller.EventLevelUp:
		return SoundLevelUp
	case scroller.EventGameOver:
		return SoundGameOver
	default:
		return SoundNone
	}
}

// SoundManager mixes effects onto the speaker.
// All methods are safe to call before Initialize and after Cleanup; they do nothing then.
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	played      map[Sound]int
}

// NewSoundManager creates a sound manager.
func NewSoundManager(cfg Config) (*SoundManager, error) {
	if cfg.SampleRate <= 0 || cfg.Volume < 0 || cfg.Volume > 1 {
		return nil, ErrInvalidConfig
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		played: make(map[Sound]int),
	}, nil
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the device.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play queues an effect.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := GetSoundEffect(s, sm.cfg)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[s]++
}

// HandleEvents plays the effect of every event from one tick.
func (sm *SoundManager) HandleEvents(events []scroller.Event) {
	for _, e := range events {
		if s := SoundFor(e); s != SoundNone {
			sm.Play(s)
		}
	}
}

// Played returns how many times s was queued.
func (sm *SoundManager) Played(s Sound) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[s]
}
