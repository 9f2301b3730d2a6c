package window

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"

	"github.com/vovakirdan/flappybird/internal/assets"
	"github.com/vovakirdan/flappybird/internal/config"
	"github.com/vovakirdan/flappybird/internal/flappy"
)

// mixer plays cue clips. Clips are decoded to PCM once; every cue gets its
// own player so overlapping cues do not cut each other off.
type mixer struct {
	ctx     *audio.Context
	pcm     map[string][]byte
	players []*audio.Player
	muted   bool
}

func newMixer(store *assets.Store, cfg config.AudioConfig) (*mixer, error) {
	pcm, err := DecodeSounds(store, cfg.SampleRate)
	if err != nil {
		return nil, err
	}

	m := &mixer{pcm: pcm, muted: cfg.Muted}
	if !m.muted {
		m.ctx = audio.NewContext(cfg.SampleRate)
	}
	return m, nil
}

// DecodeSounds decodes every Ogg Vorbis clip in the store to PCM at the
// given sample rate. The first clip that does not decode aborts with an
// error wrapping assets.ErrDecode.
func DecodeSounds(store *assets.Store, sampleRate int) (map[string][]byte, error) {
	pcm := make(map[string][]byte, len(assets.Sounds()))
	for _, name := range assets.Sounds() {
		stream, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(store.Sound(name)))
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %v", name, assets.ErrDecode, err)
		}
		data, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %v", name, assets.ErrDecode, err)
		}
		pcm[name] = data
	}
	return pcm, nil
}

// Play starts the clip for a cue.
func (m *mixer) Play(c flappy.Cue) {
	if m.muted {
		return
	}
	data, ok := m.pcm[assets.SoundFor(c)]
	if !ok {
		return
	}
	p := m.ctx.NewPlayerFromBytes(data)
	p.Play()
	m.players = append(m.players, p)
}

// Cleanup closes players that have finished.
func (m *mixer) Cleanup() {
	kept := m.players[:0]
	for _, p := range m.players {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		_ = p.Close()
	}
	m.players = kept
}

// Close stops and releases every player.
func (m *mixer) Close() {
	for _, p := range m.players {
		_ = p.Close()
	}
	m.players = nil
}
