// Package assets loads the sprites and sound clips the game draws and plays.
// Everything is loaded once at startup; a missing or broken file aborts the
// whole load so the game never starts with a partial set.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/flappybird/internal/config"
	"github.com/vovakirdan/flappybird/internal/flappy"
)

var (
	// ErrMissingAsset is wrapped when a manifest entry cannot be read.
	ErrMissingAsset = errors.New("missing asset")
	// ErrDecode is wrapped when an image does not decode.
	ErrDecode = errors.New("cannot decode asset")
)

// Image names.
const (
	BackgroundDay   = "background-day.png"
	BackgroundNight = "background-night.png"
	BirdUpflap      = "yellowbird-upflap.png"
	BirdMidflap     = "yellowbird-midflap.png"
	BirdDownflap    = "yellowbird-downflap.png"
	Pipe            = "pipe-green.png"
	Base            = "base.png"
	GameOver        = "gameover.png"
	Message         = "message.png"
	ConfirmButton   = "ok_button.png"
)

// Sound names.
const (
	SoundWing   = "wing.ogg"
	SoundHit    = "hit.ogg"
	SoundPoint  = "point.ogg"
	SoundDie    = "die.ogg"
	SoundSwoosh = "swoosh.ogg"
)

// Images lists every image the store requires, in load order.
func Images() []string {
	names := make([]string, 0, 20)
	for d := 0; d <= 9; d++ {
		names = append(names, digitName(d))
	}
	return append(names,
		BackgroundDay, BackgroundNight,
		BirdUpflap, BirdMidflap, BirdDownflap,
		Pipe, Base, GameOver, Message, ConfirmButton,
	)
}

// Sounds lists every sound clip the store requires, in load order.
func Sounds() []string {
	return []string{SoundWing, SoundHit, SoundPoint, SoundDie, SoundSwoosh}
}

// SoundFor maps a gameplay cue to its clip.
func SoundFor(c flappy.Cue) string {
	switch c {
	case flappy.CueFlap:
		return SoundWing
	case flappy.CueHit:
		return SoundHit
	case flappy.CuePoint:
		return SoundPoint
	case flappy.CueDie:
		return SoundDie
	case flappy.CueSwoosh:
		return SoundSwoosh
	default:
		return ""
	}
}

func digitName(d int) string {
	return fmt.Sprintf("%d.png", d)
}

// Options controls post-processing done at load time.
type Options struct {
	ButtonWidth  int // Confirm button is scaled to this size when both are positive
	ButtonHeight int
}

// OptionsFromConfig derives load options from the game configuration.
func OptionsFromConfig(cfg config.FlappyConfig) Options {
	return Options{
		ButtonWidth:  cfg.HUD.ConfirmButton.Width,
		ButtonHeight: cfg.HUD.ConfirmButton.Height,
	}
}

// Store holds the decoded images and raw sound clips. It is read-only once
// loaded.
type Store struct {
	images map[string]image.Image
	sounds map[string][]byte
}

// Load reads and decodes every manifest entry from fsys.
func Load(fsys fs.FS, opts Options) (*Store, error) {
	s := &Store{
		images: make(map[string]image.Image, 20),
		sounds: make(map[string][]byte, 5),
	}

	for _, name := range Images() {
		img, err := loadImage(fsys, name)
		if err != nil {
			return nil, err
		}
		s.images[name] = img
	}

	if opts.ButtonWidth > 0 && opts.ButtonHeight > 0 {
		s.images[ConfirmButton] = scale(s.images[ConfirmButton], opts.ButtonWidth, opts.ButtonHeight)
	}

	for _, name := range Sounds() {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("assets: %s: %w: %v", name, ErrMissingAsset, err)
		}
		s.sounds[name] = data
	}

	return s, nil
}

func loadImage(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w: %v", name, ErrMissingAsset, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w: %v", name, ErrDecode, err)
	}
	return img, nil
}

// scale resamples src to exactly w x h.
func scale(src image.Image, w, h int) image.Image {
	if b := src.Bounds(); b.Dx() == w && b.Dy() == h {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Image returns a named image, or nil when the name is not in the manifest.
func (s *Store) Image(name string) image.Image {
	return s.images[name]
}

// Digit returns the sprite for a decimal digit.
func (s *Store) Digit(d int) image.Image {
	if d < 0 || d > 9 {
		return nil
	}
	return s.images[digitName(d)]
}

// DigitWidth returns the pixel width of a digit sprite, for flappy.DigitLayout.
func (s *Store) DigitWidth(d int) int {
	img := s.Digit(d)
	if img == nil {
		return 0
	}
	return img.Bounds().Dx()
}

// BirdFrame returns one of the flappy.BirdFrames wing frames.
func (s *Store) BirdFrame(i int) image.Image {
	switch i % flappy.BirdFrames {
	case 0:
		return s.images[BirdUpflap]
	case 1:
		return s.images[BirdMidflap]
	default:
		return s.images[BirdDownflap]
	}
}

// Background returns the backdrop for the configured variant.
func (s *Store) Background(variant string) image.Image {
	if variant == config.BackgroundNight {
		return s.images[BackgroundNight]
	}
	return s.images[BackgroundDay]
}

// Sound returns a copy of the encoded clip.
func (s *Store) Sound(name string) []byte {
	data, ok := s.sounds[name]
	if !ok {
		return nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out
}

// Stats reports how many images and sounds are loaded.
func (s *Store) Stats() (images, sounds int) {
	return len(s.images), len(s.sounds)
}
