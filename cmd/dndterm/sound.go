package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// tones plays short sine tones for accepted and rejected drops.
type tones struct{}

func newTones() (*tones, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &tones{}, nil
}

func (t *tones) accept() { t.play(880, 60*time.Millisecond) }
func (t *tones) reject() { t.play(220, 120*time.Millisecond) }

func (t *tones) play(freq float64, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (t *tones) close() {
	speaker.Close()
}
