// Package audio plays the game's sound effects through the system speaker.
// Every method is safe to call when the speaker could not be opened; the
// game then simply runs silent.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	speakerBuffer = 100 * time.Millisecond
	chirpDuration = 90 * time.Millisecond
	crashDuration = 400 * time.Millisecond
)

// SoundManager owns the speaker and a mixer that effects are queued on.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a silent sound manager. Call Initialize to open the speaker.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether the speaker is open.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayEat queues the short rising chirp played when food is eaten.
func (sm *SoundManager) PlayEat() {
	sm.play(beep.Take(sampleRate.N(chirpDuration), NewChirpGenerator(sampleRate)))
}

// PlayCrash queues the noise burst played when the snake hits something.
func (sm *SoundManager) PlayCrash() {
	sm.play(beep.Take(sampleRate.N(crashDuration), NewCrashGenerator(sampleRate, time.Now().UnixNano())))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// The mixer is read on the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup drops queued sounds and stops feeding the speaker.
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
