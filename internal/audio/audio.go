package audio

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"blockpong/internal/game"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundPaddle SoundKind = iota
	SoundWall
	SoundBlock
	SoundScore
	SoundSplit
	SoundShrink
	SoundExpand
	soundKindCount
)

func (k SoundKind) String() string {
	switch k {
	case SoundPaddle:
		return "paddle"
	case SoundWall:
		return "wall"
	case SoundBlock:
		return "block"
	case SoundScore:
		return "score"
	case SoundSplit:
		return "split"
	case SoundShrink:
		return "shrink"
	case SoundExpand:
		return "expand"
	}
	return "unknown"
}

// maxVoices caps concurrent players; a split cascade can fire dozens of
// paddle hits in one frame.
const maxVoices = 8

// System plays procedurally generated effects through oto. A nil
// *System is valid and silent.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	muted  bool
	voices int32

	cache [soundKindCount][]byte
}

// New opens the audio device. Samples are rendered once up front so
// playback only copies bytes.
func New(volume float64, muted bool) (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	s := &System{ctx: ctx, ready: ready, volume: clamp01(volume), muted: muted}
	for k := SoundKind(0); k < soundKindCount; k++ {
		s.cache[k] = generateSound(k)
	}
	return s, nil
}

func (s *System) SetVolume(vol float64) {
	if s == nil {
		return
	}
	s.volume = clamp01(vol)
}

func (s *System) Volume() float64 {
	if s == nil {
		return 0
	}
	return s.volume
}

func (s *System) SetMuted(m bool) {
	if s == nil {
		return
	}
	s.muted = m
}

func (s *System) Muted() bool { return s == nil || s.muted }

// Play starts kind on its own player and returns immediately.
func (s *System) Play(kind SoundKind) {
	if s == nil || s.muted || s.volume <= 0 {
		return
	}
	if kind < 0 || kind >= soundKindCount {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	if atomic.AddInt32(&s.voices, 1) > maxVoices {
		atomic.AddInt32(&s.voices, -1)
		return
	}
	samples := s.cache[kind]
	vol := s.volume
	go func() {
		defer atomic.AddInt32(&s.voices, -1)
		player := s.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(vol)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// Subscribe wires simulation events to sound effects.
func (s *System) Subscribe(bus *game.EventBus) {
	for t, kind := range map[game.EventType]SoundKind{
		game.EventPaddleHit:   SoundPaddle,
		game.EventWallBounce:  SoundWall,
		game.EventScore:       SoundScore,
		game.EventCourtShrink: SoundShrink,
	} {
		kind := kind
		bus.Subscribe(t, func(game.Event) { s.Play(kind) })
	}
	bus.Subscribe(game.EventBlockHit, func(e game.Event) {
		s.Play(soundForBlock(game.BlockKind(e.Data)))
	})
}

func soundForBlock(kind game.BlockKind) SoundKind {
	switch kind {
	case game.BlockSplit:
		return SoundSplit
	case game.BlockShrink:
		return SoundShrink
	case game.BlockExpand:
		return SoundExpand
	}
	// Score blocks also raise EventScore, which carries the score sound.
	return SoundBlock
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

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
