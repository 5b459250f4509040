package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-munchkin/internal/games/munchkin/sim"
)

// SampleRate is the output rate of the speaker.
const SampleRate = beep.SampleRate(44100)

// maxVoices bounds the number of overlapping effects.
const maxVoices = 8

// Player implements sim.AudioCue. Until Start succeeds every cue is dropped,
// so a machine without an audio device plays silently.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	started bool
	logger  *log.Logger
	play    func(beep.Streamer)
}

// NewPlayer creates a player with a master volume between 0 and 1.
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	p := &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
	p.play = p.addToMixer
	return p
}

// Start opens the speaker. A failure is logged and leaves the player silent.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		p.logger.Warn("audio disabled", "err", err)
		return err
	}
	speaker.Play(p.mixer)
	p.started = true
	p.logger.Debug("audio started", "rate", int(SampleRate))
	return nil
}

// Play queues the sound for a cue without blocking.
func (p *Player) Play(c sim.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started || p.volume == 0 {
		return
	}
	s := Effect(c, SampleRate)
	if s == nil {
		return
	}
	p.play(newVolume(s, p.volume))
}

func (p *Player) addToMixer(s beep.Streamer) {
	speaker.Lock()
	defer speaker.Unlock()
	if p.mixer.Len() >= maxVoices {
		return
	}
	p.mixer.Add(s)
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.started = false
}

var _ sim.AudioCue = (*Player)(nil)
