package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Effect durations
const (
	jumpDuration     = 90 * time.Millisecond
	hitDuration      = 250 * time.Millisecond
	levelNoteLength  = 80 * time.Millisecond
	gameOverDuration = 600 * time.Millisecond
	attack           = 5 * time.Millisecond
)

// oscillator generates raw audio waves, optionally sweeping in frequency
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	sweep := 0.0
	if duration > 0 {
		sweep = (to - from) / duration.Seconds()
	}
	return &oscillator{
		freq:     from,
		sweep:    sweep,
		duration: samples,
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(from*1000) + int64(samples))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		freq := o.freq + o.sweep*t
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over a stream
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = math.Max(0, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume control.
// math.Log2(0) is -Inf, so zero volume is silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateJumpSound is a short upward square chirp
func CreateJumpSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewSweep(330, 660, jumpDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, jumpDuration, attack, 40*time.Millisecond, rate)
	return newVolume(shaped, 0.25*cfg.Volume)
}

// CreateHitSound is a falling saw with a noise burst for a lost life
func CreateHitSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	saw := NewEnvelope(NewSweep(220, 70, hitDuration, WaveSaw, rate), hitDuration, attack, 150*time.Millisecond, rate)
	noise := NewEnvelope(NewOscillator(0, hitDuration, WaveNoise, rate), hitDuration, attack, 200*time.Millisecond, rate)

	mixed := beep.Mix(newVolume(saw, 0.6), newVolume(noise, 0.3))
	return newVolume(mixed, cfg.Volume)
}

// CreateLevelUpSound is a rising C major arpeggio
func CreateLevelUpSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, levelNoteLength, WaveSine, rate)
		parts = append(parts, NewEnvelope(osc, levelNoteLength, attack, 30*time.Millisecond, rate))
	}
	return newVolume(beep.Seq(parts...), 0.4*cfg.Volume)
}

// CreateGameOverSound is a slow descending square glide
func CreateGameOverSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewSweep(392, 98, gameOverDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, gameOverDuration, attack, 300*time.Millisecond, rate)
	return newVolume(shaped, 0.3*cfg.Volume)
}

// GetSoundEffect returns the effect streamer for the given sound
func GetSoundEffect(sound Sound, cfg Config) beep.Streamer {
	switch sound {
	case SoundJump:
		return CreateJumpSound(cfg)
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundLevelUp:
		return CreateLevelUpSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
