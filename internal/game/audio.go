package game

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

type sound int

const (
	soundShot sound = iota
	soundKill
	soundHurt
	soundDeath
)

// tone is the stand-in played when a sound file is missing.
type tone struct {
	file string
	ms   int
	freq float64
}

var sounds = map[sound]tone{
	soundShot:  {"shot.wav", 40, 1200},
	soundKill:  {"kill.wav", 120, 330},
	soundHurt:  {"hurt.wav", 150, 180},
	soundDeath: {"death.wav", 500, 110},
}

// AudioManager plays the game's sound effects. A disabled manager keeps
// its clips but plays nothing.
type AudioManager struct {
	ctx   *audio.Context
	clips map[sound][]byte
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

// sharedContext returns the process-wide audio context; ebiten allows
// only one.
func sharedContext() *audio.Context {
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

func NewAudioManager(soundsDir string, enabled bool) *AudioManager {
	if soundsDir == "" {
		soundsDir = "assets/sounds"
	}
	am := &AudioManager{clips: make(map[sound][]byte, len(sounds))}
	if enabled {
		am.ctx = sharedContext()
	}
	for s, t := range sounds {
		b, err := os.ReadFile(filepath.Join(soundsDir, t.file))
		if err != nil || len(b) == 0 {
			b = beepWAV(sampleRate, t.ms, t.freq)
		}
		am.clips[s] = b
	}
	return am
}

func (am *AudioManager) play(s sound) {
	if am == nil || am.ctx == nil {
		return
	}
	clip := am.clips[s]
	if len(clip) == 0 {
		return
	}
	// A fresh stream per play lets effects overlap
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(clip))
	if err != nil {
		return
	}
	p, err := am.ctx.NewPlayer(stream)
	if err != nil {
		return
	}
	p.Play()
}

func (am *AudioManager) PlayShot()  { am.play(soundShot) }
func (am *AudioManager) PlayKill()  { am.play(soundKill) }
func (am *AudioManager) PlayHurt()  { am.play(soundHurt) }
func (am *AudioManager) PlayDeath() { am.play(soundDeath) }

type wavHeader struct {
	Riff          [4]byte
	ChunkSize     uint32
	Wave          [4]byte
	Fmt           [4]byte
	FmtSize       uint32
	Format        uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Data          [4]byte
	DataSize      uint32
}

// beepWAV renders a fading sine as 16-bit mono PCM.
func beepWAV(rate, ms int, freq float64) []byte {
	n := rate * ms / 1000
	h := wavHeader{
		Riff:          [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     uint32(36 + n*2),
		Wave:          [4]byte{'W', 'A', 'V', 'E'},
		Fmt:           [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		Format:        1,
		Channels:      1,
		SampleRate:    uint32(rate),
		ByteRate:      uint32(rate * 2),
		BlockAlign:    2,
		BitsPerSample: 16,
		Data:          [4]byte{'d', 'a', 't', 'a'},
		DataSize:      uint32(n * 2),
	}
	samples := make([]int16, n)
	for i := range samples {
		fade := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(rate)) * fade
		samples[i] = int16(v * 0.25 * math.MaxInt16)
	}
	var buf bytes.Buffer
	buf.Grow(44 + n*2)
	// Writes to a bytes.Buffer cannot fail
	_ = binary.Write(&buf, binary.LittleEndian, h)
	_ = binary.Write(&buf, binary.LittleEndian, samples)
	return buf.Bytes()
}
