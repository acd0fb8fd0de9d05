package render

import (
	"bytes"
	"hash/fnv"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const placeholderSize = 16

type texture struct {
	loaded atomic.Bool
	pixels image.Image
	image  *ebiten.Image
}

// TextureRegistry resolves texture source ids to images. Sources are loaded
// off the frame goroutine; until a source has loaded, Image reports nil and
// callers draw untextured.
type TextureRegistry struct {
	log     *zap.Logger
	sources []fs.FS

	mu       sync.Mutex
	textures map[string]*texture
	wg       sync.WaitGroup
}

// NewTextureRegistry looks sources up in each file system in turn. Ids no
// file system has get a placeholder.
func NewTextureRegistry(log *zap.Logger, sources ...fs.FS) *TextureRegistry {
	if log == nil {
		log = zap.NewNop()
	}
	return &TextureRegistry{
		log:      log.Named("textures"),
		sources:  sources,
		textures: make(map[string]*texture),
	}
}

// Request starts loading source if it has not been requested before.
func (r *TextureRegistry) Request(source string) {
	if source == "" {
		return
	}
	r.mu.Lock()
	if _, ok := r.textures[source]; ok {
		r.mu.Unlock()
		return
	}
	tex := &texture{}
	r.textures[source] = tex
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		tex.pixels = r.decode(source)
		tex.loaded.Store(true)
	}()
}

// Loaded reports whether source has finished loading.
func (r *TextureRegistry) Loaded(source string) bool {
	r.mu.Lock()
	tex, ok := r.textures[source]
	r.mu.Unlock()
	return ok && tex.loaded.Load()
}

// Image returns the GPU image for source, uploading it on first use after it
// has loaded. It must be called from the frame goroutine.
func (r *TextureRegistry) Image(source string) *ebiten.Image {
	r.mu.Lock()
	tex, ok := r.textures[source]
	r.mu.Unlock()
	if !ok {
		r.Request(source)
		return nil
	}
	if !tex.loaded.Load() {
		return nil
	}
	if tex.image == nil {
		tex.image = ebiten.NewImageFromImage(tex.pixels)
	}
	return tex.image
}

// Wait blocks until every requested source has loaded.
func (r *TextureRegistry) Wait() {
	r.wg.Wait()
}

func (r *TextureRegistry) decode(source string) image.Image {
	for _, fsys := range r.sources {
		data, err := fs.ReadFile(fsys, source)
		if err != nil {
			continue
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			r.log.Warn("decode failed, using placeholder", zap.String("source", source), zap.Error(err))
			return Placeholder(source)
		}
		return img
	}
	r.log.Debug("texture not found, using placeholder", zap.String("source", source))
	return Placeholder(source)
}

// Placeholder returns a checkerboard whose tint is derived from source, so
// each texture id gets a stable, distinct look.
func Placeholder(source string) *image.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(source))
	sum := h.Sum32()
	base := color.RGBA{R: uint8(sum), G: uint8(sum >> 8), B: uint8(sum >> 16), A: 0xff}
	dark := color.RGBA{R: base.R / 2, G: base.G / 2, B: base.B / 2, A: 0xff}

	img := image.NewRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	for y := 0; y < placeholderSize; y++ {
		for x := 0; x < placeholderSize; x++ {
			if (x/4+y/4)%2 == 0 {
				img.SetRGBA(x, y, base)
			} else {
				img.SetRGBA(x, y, dark)
			}
		}
	}
	return img
}
