package audio

import (
	"math"

	"github.com/gopxl/beep"
)

const (
	chirpStartHz   = 440.0
	chirpEndHz     = 880.0
	chirpAmplitude = 0.25

	crashRumbleHz        = 70.0
	crashNoiseAmplitude  = 0.3
	crashRumbleAmplitude = 0.25
	crashDecayRate       = 9.0
)

// ChirpGenerator produces a sine sweep that rises over chirpDuration.
// It streams forever; wrap it in beep.Take.
type ChirpGenerator struct {
	sr    beep.SampleRate
	span  int
	pos   int
	phase float64
}

// NewChirpGenerator creates a chirp generator.
func NewChirpGenerator(sr beep.SampleRate) *ChirpGenerator {
	return &ChirpGenerator{
		sr:   sr,
		span: sr.N(chirpDuration),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.span), 1)
		freq := chirpStartHz + (chirpEndHz-chirpStartHz)*progress

		// Integrate phase so the sweep has no clicks
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Fade out towards the end of the sweep
		sample := chirpAmplitude * (1 - progress) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// CrashGenerator produces decaying noise over a low rumble.
type CrashGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewCrashGenerator creates a crash generator. The seed drives its noise.
func NewCrashGenerator(sr beep.SampleRate, seed int64) *CrashGenerator {
	return &CrashGenerator{
		sr:   sr,
		seed: seed & 0x7fffffff,
	}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * crashDecayRate)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := math.Sin(2 * math.Pi * crashRumbleHz * t)
		sample := envelope * (crashNoiseAmplitude*noise + crashRumbleAmplitude*rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}
