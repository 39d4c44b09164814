package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundCastle
	SoundCheck
	SoundPromote
	SoundInvalid
	SoundGameEnd
)

const sampleRate = 44100

// envelope shapes the amplitude of a note over its normalised progress 0..1.
type envelope func(t, progress float64) float64

var (
	// percussive decays fast, like wood on wood
	percussive envelope = func(t, _ float64) float64 { return math.Exp(-t * 30) }
	swell      envelope = func(_, p float64) float64 {
		if p < 0.1 {
			return p / 0.1
		}
		return 1 - (p-0.1)/0.9
	}
	linearFade envelope = func(_, p float64) float64 { return 1 - p }
	sustained  envelope = func(_, p float64) float64 {
		switch {
		case p < 0.1:
			return p / 0.1
		case p > 0.7:
			return (1 - p) / 0.3
		}
		return 1
	}
)

// note is one synthesised segment of a sound.
type note struct {
	freqs     []float64 // played together
	duration  float64   // seconds
	amplitude float64
	shape     envelope
	grain     bool    // add a little noise for texture
	harmonic  float64 // weight of the second harmonic
	gap       float64 // silence after the note, seconds
}

// soundBank describes every sound effect as a sequence of notes.
var soundBank = map[SoundType][]note{
	SoundMove:    {{freqs: []float64{440}, duration: 0.08, amplitude: 0.3, shape: percussive, grain: true}},
	SoundCapture: {{freqs: []float64{330}, duration: 0.12, amplitude: 0.5, shape: percussive, grain: true}},
	SoundCastle: {
		{freqs: []float64{400}, duration: 0.06, amplitude: 0.3, shape: percussive, grain: true, gap: 0.05},
		{freqs: []float64{440}, duration: 0.06, amplitude: 0.24, shape: percussive, grain: true},
	},
	SoundCheck: {{freqs: []float64{880}, duration: 0.15, amplitude: 0.4, shape: swell}},
	SoundPromote: {
		{freqs: []float64{523.25}, duration: 0.09, amplitude: 0.35, shape: swell},
		{freqs: []float64{659.25}, duration: 0.09, amplitude: 0.35, shape: swell},
		{freqs: []float64{783.99}, duration: 0.14, amplitude: 0.35, shape: swell},
	},
	SoundInvalid: {{freqs: []float64{150}, duration: 0.1, amplitude: 0.15, shape: linearFade, harmonic: 0.3}},
	SoundGameEnd: {{freqs: []float64{261.63, 329.63, 392.00}, duration: 0.4, amplitude: 0.5, shape: sustained}},
}

// AudioManager handles sound effect playback.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager with every sound pre-rendered.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte, len(soundBank)),
		enabled: true,
		volume:  0.5,
	}
	for st, notes := range soundBank {
		am.sounds[st] = synthesize(notes)
	}
	return am
}

// synthesize renders notes as 16-bit little-endian stereo PCM.
func synthesize(notes []note) []byte {
	var out []byte
	for _, n := range notes {
		samples := int(sampleRate * n.duration)
		for i := 0; i < samples; i++ {
			t := float64(i) / sampleRate
			v := 0.0
			for _, f := range n.freqs {
				v += math.Sin(2*math.Pi*f*t) + n.harmonic*math.Sin(4*math.Pi*f*t)
			}
			v /= float64(len(n.freqs))
			if n.grain {
				v += (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
			}
			out = appendSample(out, v*n.shape(t, t/n.duration)*n.amplitude)
		}
		out = append(out, make([]byte, int(sampleRate*n.gap)*4)...)
	}
	return out
}

func appendSample(buf []byte, v float64) []byte {
	v = math.Max(-1, math.Min(1, v))
	s := int16(v * 32767)
	return append(buf, byte(s), byte(s>>8), byte(s), byte(s>>8))
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}
	data, ok := am.sounds[sound]
	if !ok {
		return
	}
	// a fresh player per call lets sounds overlap
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
