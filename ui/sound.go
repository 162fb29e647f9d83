package ui

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// Audio wraps the process-wide audio context.
type Audio struct {
	ctx *audio.Context
}

func NewAudio() *Audio {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &Audio{ctx: ctx}
}

// Sound is a clip that plays at most once per clip length: asking to
// play again while the previous playback could still be audible is
// ignored, keyed off elapsed time against the clip duration.
type Sound struct {
	player    *audio.Player
	length    time.Duration
	startedAt time.Time
}

// NewTone synthesizes a fading sine clip. The game ships no sound
// files; the ace-of-spades cue is generated here.
func (a *Audio) NewTone(freq float64, length time.Duration) *Sound {
	n := int(float64(sampleRate) * length.Seconds())
	pcm := make([]byte, n*4)
	for i := 0; i < n; i++ {
		fade := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * 0.3 * fade * math.MaxInt16)
		binary.LittleEndian.PutUint16(pcm[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(pcm[i*4+2:], uint16(v))
	}
	return &Sound{player: a.ctx.NewPlayerFromBytes(pcm), length: length}
}

// PlayIfNotPlaying starts the clip unless it is still within its own
// duration from the last start.
func (s *Sound) PlayIfNotPlaying() {
	if s == nil {
		return
	}
	if !s.startedAt.IsZero() && time.Since(s.startedAt) < s.length {
		return
	}
	s.startedAt = time.Now()
	s.player.Rewind()
	s.player.Play()
}
