// Package audio plays short synthesized cues for simulation events.
// The core never imports this; the front-end maps events to cues.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cues manages the speaker and a small set of event blips
type Cues struct {
	mu          sync.Mutex
	initialized bool
}

func NewCues() *Cues {
	return &Cues{}
}

// Initialize opens the speaker. Failure is non-fatal for callers; the demo
// runs silent without audio hardware.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// Close shuts the speaker down
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Close()
	c.initialized = false
}

// blip plays a sine tone for the given duration
func (c *Cues) blip(freq float64, d time.Duration) {
	c.mu.Lock()
	ok := c.initialized
	c.mu.Unlock()
	if !ok {
		return
	}

	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Multiply is the gate multiplication ding
func (c *Cues) Multiply() {
	c.blip(880, 60*time.Millisecond)
}

// Score is the goal gate coin tone
func (c *Cues) Score() {
	c.blip(1320, 90*time.Millisecond)
}

// Drop is the user drop tick
func (c *Cues) Drop() {
	c.blip(440, 30*time.Millisecond)
}
