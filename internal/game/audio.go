package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	sfxVolume = 0.5
)

// SoundKind identifies the feedback blips.
type SoundKind int

const (
	SoundPlace SoundKind = iota
	SoundRemove
	SoundRefuse
)

// AudioSystem holds the oto context. Audio is best-effort: a failed init
// leaves globalAudio nil and every PlaySound becomes a no-op.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated feedback blip.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundPlace:
		// Rising ping.
		return genSweep(520, 880, 0.09, 10)
	case SoundRemove:
		// Falling thud.
		return genSweep(320, 140, 0.14, 8)
	case SoundRefuse:
		// Flat low buzz.
		return genBuzz(150, 0.08)
	}
	return nil
}

// genSweep synthesizes a sine sweep from f0 to f1 Hz over dur seconds
// with an exponential amplitude decay.
func genSweep(f0, f1, dur, decay float64) []byte {
	n := int(dur * SampleRate)
	buf := make([]byte, n*8)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := f0 + (f1-f0)*t
		phase += 2 * math.Pi * freq / SampleRate
		env := math.Exp(-decay * t)
		putStereoF32(buf, i, math.Sin(phase)*env)
	}
	return buf
}

// genBuzz synthesizes a clipped low sine, quiet and short.
func genBuzz(freq, dur float64) []byte {
	n := int(dur * SampleRate)
	buf := make([]byte, n*8)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		s := math.Sin(2 * math.Pi * freq * float64(i) / SampleRate)
		s = clampF(s*2.2, -0.6, 0.6) // soft clip for the buzzy edge
		putStereoF32(buf, i, s*(1-t)*0.6)
	}
	return buf
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}
