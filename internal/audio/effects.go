// Package audio turns simulation cues into short synthesized sound effects
// played through beep.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-munchkin/internal/games/munchkin/sim"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a wave whose frequency slides linearly from freq to
// endFreq over its duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(from*1000 + to))),
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
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with the given attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero becomes
// silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is one shaped note.
func tone(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	attack := d / 10
	release := d / 3
	return NewEnvelope(NewSweep(from, to, d, wave, rate), d, attack, release, rate)
}

// Effect returns the sound for a cue, or nil for an unknown cue.
func Effect(c sim.Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case sim.CueEatPickup:
		return newVolume(tone(660, 990, 60*time.Millisecond, WaveSquare, rate), 0.25)
	case sim.CueEatPowerPickup:
		return newVolume(beep.Seq(
			tone(523.25, 523.25, 70*time.Millisecond, WaveSquare, rate),
			tone(783.99, 783.99, 70*time.Millisecond, WaveSquare, rate),
			tone(1046.5, 1046.5, 90*time.Millisecond, WaveSquare, rate),
		), 0.25)
	case sim.CueEatPursuer:
		return newVolume(tone(880, 220, 220*time.Millisecond, WaveSaw, rate), 0.3)
	case sim.CueGulpPursuer:
		return newVolume(tone(140, 70, 90*time.Millisecond, WaveSine, rate), 0.5)
	case sim.CueDyingShort:
		return newVolume(tone(0, 0, 150*time.Millisecond, WaveNoise, rate), 0.2)
	case sim.CueDying:
		return newVolume(tone(800, 90, 700*time.Millisecond, WaveSquare, rate), 0.25)
	case sim.CueMove:
		return newVolume(tone(90, 70, 18*time.Millisecond, WaveSquare, rate), 0.12)
	case sim.CueMazeComplete:
		return newVolume(tone(1318.5, 1318.5, 45*time.Millisecond, WaveSine, rate), 0.3)
	default:
		return nil
	}
}

// Duration returns how long a cue's sound lasts.
func Duration(c sim.Cue, rate beep.SampleRate) time.Duration {
	s := Effect(c, rate)
	if s == nil {
		return 0
	}
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok || n < len(buf) {
			break
		}
	}
	return rate.D(total)
}
