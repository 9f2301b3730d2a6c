package window

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flappybird/internal/assets"
	"github.com/vovakirdan/flappybird/internal/config"
	"github.com/vovakirdan/flappybird/internal/flappy"
)

// storeWithClips loads a store whose sound files hold the given bytes.
func storeWithClips(t *testing.T, clip []byte) *assets.Store {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 4, 4))))

	fsys := fstest.MapFS{}
	for _, name := range assets.Images() {
		fsys[name] = &fstest.MapFile{Data: buf.Bytes()}
	}
	for _, name := range assets.Sounds() {
		fsys[name] = &fstest.MapFile{Data: clip}
	}

	store, err := assets.Load(fsys, assets.Options{})
	require.NoError(t, err)
	return store
}

func TestDecodeSoundsRejectsCorruptClip(t *testing.T) {
	store := storeWithClips(t, []byte("not vorbis"))

	pcm, err := DecodeSounds(store, 44100)
	require.Error(t, err)
	assert.Nil(t, pcm)
	assert.ErrorIs(t, err, assets.ErrDecode)
	assert.Contains(t, err.Error(), assets.SoundWing)
}

func TestMutedMixerStillChecksClips(t *testing.T) {
	store := storeWithClips(t, []byte("not vorbis"))

	m, err := newMixer(store, config.AudioConfig{Muted: true, SampleRate: 44100})
	assert.Nil(t, m)
	assert.ErrorIs(t, err, assets.ErrDecode)
}

func TestMutedMixerIsSilent(t *testing.T) {
	m := &mixer{muted: true}

	m.Play(flappy.CueFlap)
	m.Cleanup()
	assert.Empty(t, m.players)
	m.Close()
}
