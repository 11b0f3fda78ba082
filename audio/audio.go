// Package audio synthesizes and plays the game's beep sounds.
//
// Every sound is a short sine burst generated at startup, so the game
// ships no audio assets. When no audio device is available (headless
// runs, CI) the bank is nil and every method is a no-op.
package audio

import (
	"encoding/binary"
	"log/slog"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/widdershins/config"
)

// Kind identifies one of the synthesized sounds.
type Kind uint8

const (
	SoundPickup Kind = iota
	SoundTurn
	SoundGameOver
	SoundBoost
	SoundShield
	SoundMenu
	SoundPause
	SoundLap
	numSounds
)

// beepSpec describes a synthesized sine burst.
type beepSpec struct {
	freq     float64
	duration float64
	volume   float32
}

var beeps = [numSounds]beepSpec{
	SoundPickup:   {800, 0.15, 1.0},
	SoundTurn:     {300, 0.05, 0.3},
	SoundGameOver: {200, 0.5, 1.0},
	SoundBoost:    {1000, 0.2, 1.0},
	SoundShield:   {600, 0.25, 1.0},
	SoundMenu:     {700, 0.1, 0.8},
	SoundPause:    {400, 0.15, 0.8},
	SoundLap:      {1200, 0.3, 1.0},
}

// Bank owns the generated sounds. A nil bank plays nothing.
type Bank struct {
	sounds   [numSounds]rl.Sound
	Enabled  bool
	lastTurn float32
}

// NewBank opens the audio device and synthesizes all sounds. Returns
// nil when no device is available.
func NewBank() *Bank {
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		slog.Warn("audio device unavailable, sound disabled")
		return nil
	}

	cfg := config.Cfg()
	b := &Bank{Enabled: true}
	for k := Kind(0); k < numSounds; k++ {
		spec := beeps[k]
		b.sounds[k] = synthBeep(spec.freq, spec.duration, cfg.Audio.SampleRate)
		rl.SetSoundVolume(b.sounds[k], spec.volume)
	}
	rl.SetMasterVolume(float32(cfg.Audio.MasterVolume))

	slog.Info("audio ready", "sounds", int(numSounds), "sample_rate", cfg.Audio.SampleRate)
	return b
}

// synthBeep builds a 16-bit mono sine wave with a linear attack and
// release over the first and last tenth of the sample.
func synthBeep(freq, duration float64, sampleRate int) rl.Sound {
	frames := int(duration * float64(sampleRate))
	ramp := frames / 10

	data := make([]byte, frames*2)
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		sample := math.Sin(2 * math.Pi * freq * t)

		envelope := 1.0
		if i < ramp {
			envelope = float64(i) / float64(ramp)
		} else if i > frames*9/10 {
			envelope = float64(frames-i) / float64(ramp)
		}

		binary.LittleEndian.PutUint16(data[i*2:], uint16(int16(sample*envelope*30000)))
	}

	wave := rl.NewWave(uint32(frames), uint32(sampleRate), 16, 1, data)
	sound := rl.LoadSoundFromWave(wave)
	rl.UnloadWave(wave)
	return sound
}

// Play plays a sound if the bank exists and sound is enabled.
func (b *Bank) Play(k Kind) {
	if b == nil || !b.Enabled {
		return
	}
	rl.PlaySound(b.sounds[k])
}

// PlayTurn plays the turn tick, rate limited so holding the turn does
// not buzz every frame. A gameTime below the last mark means the clock
// was reset for a new round, which also clears the limiter.
func (b *Bank) PlayTurn(gameTime float32) {
	if b == nil || !b.Enabled {
		return
	}
	if gameTime >= b.lastTurn && gameTime-b.lastTurn <= float32(config.Cfg().Audio.TurnCooldown) {
		return
	}
	b.lastTurn = gameTime
	rl.PlaySound(b.sounds[SoundTurn])
}

// Toggle flips sound on or off and reports the new state.
func (b *Bank) Toggle() bool {
	if b == nil {
		return false
	}
	b.Enabled = !b.Enabled
	return b.Enabled
}

// Unload releases all sounds and closes the audio device.
func (b *Bank) Unload() {
	if b == nil {
		return
	}
	for k := Kind(0); k < numSounds; k++ {
		rl.UnloadSound(b.sounds[k])
	}
	rl.CloseAudioDevice()
}
