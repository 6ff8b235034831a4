// Package audio plays the game's sound cues. The Speaker player drives the
// local sound card through beep; Silent is used where there is no local
// listener, such as SSH sessions, or when sound is muted.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-whack/internal/engine"
)

const sampleRate = beep.SampleRate(44100)

const (
	hitFreq       = 880.0
	hitLength     = 50 * time.Millisecond
	buzzFreq      = 120.0
	buzzLength    = 400 * time.Millisecond
	buzzAttack    = 20 * time.Millisecond
	buzzAmplitude = 0.2
)

// Player plays engine cues.
type Player interface {
	Play(c engine.Cue)
	Close()
}

// Silent discards every cue.
type Silent struct{}

func (Silent) Play(engine.Cue) {}
func (Silent) Close()          {}

// Speaker plays cues on the default output device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

var (
	initOnce sync.Once
	initErr  error
)

// NewSpeaker initializes the output device. The device is opened once per
// process; later calls share it.
func NewSpeaker() (*Speaker, error) {
	initOnce.Do(func() {
		initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	if initErr != nil {
		return nil, initErr
	}

	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues the sound for c. Unknown cues are ignored.
func (s *Speaker) Play(c engine.Cue) {
	st := Streamer(c)
	if st == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences pending sounds.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

// Streamer returns a finite streamer for c, or nil for an unknown cue.
func Streamer(c engine.Cue) beep.Streamer {
	switch c {
	case engine.CueHit:
		sine, err := generators.SineTone(sampleRate, hitFreq)
		if err != nil {
			return nil
		}
		return beep.Take(sampleRate.N(hitLength), sine)
	case engine.CueGameOver:
		return beep.Take(sampleRate.N(buzzLength), buzz(sampleRate, buzzFreq))
	default:
		return nil
	}
}

// buzz is a low tone with two harmonics and a short fade-in.
func buzz(sr beep.SampleRate, freq float64) beep.Streamer {
	pos := 0
	attack := float64(sr.N(buzzAttack))
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(sr)
			v := 0.3*math.Sin(2*math.Pi*freq*t) +
				0.15*math.Sin(2*math.Pi*freq*2*t) +
				0.075*math.Sin(2*math.Pi*freq*3*t)
			v *= math.Min(float64(pos)/attack, 1) * buzzAmplitude

			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}
