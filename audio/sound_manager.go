package audio

import (
	"sync"
	"time"

	"grid-snake/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const (
	sampleRate = beep.SampleRate(44100)

	eatDuration   = 80 * time.Millisecond
	deathDuration = 400 * time.Millisecond
)

// SoundManager plays short cues for game events. It satisfies game.Listener.
// Until Initialize succeeds every cue is dropped.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	log         zerolog.Logger

	// play hands a cue to the output; replaced in tests.
	play func(beep.Streamer)
}

func NewSoundManager(log zerolog.Logger) *SoundManager {
	sm := &SoundManager{
		mixer: &beep.Mixer{},
		log:   log,
	}
	sm.play = sm.addToMixer
	return sm
}

// Initialize opens the audio device and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still queued
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) FoodEaten(s game.Snapshot) {
	// Pitch climbs a little with every point.
	base := 660.0 + float64(s.Score)*10
	sm.cue(NewTone(base, base*1.5, eatDuration, WaveSine, sampleRate), -1)
}

func (sm *SoundManager) PlayerDied(s game.Snapshot) {
	sm.log.Debug().Stringer("cause", s.Cause).Msg("death cue")
	sm.cue(NewTone(220, 55, deathDuration, WaveSquare, sampleRate), -2)
}

func (sm *SoundManager) cue(s beep.Streamer, volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.play(&effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   volume,
	})
}

func (sm *SoundManager) addToMixer(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
