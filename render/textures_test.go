package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func encodePNG(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestPlaceholderStableAndDistinct(t *testing.T) {
	a := Placeholder("textures/ground.png")
	b := Placeholder("textures/ground.png")
	c := Placeholder("textures/pipe.png")

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("placeholder not deterministic")
	}
	if bytes.Equal(a.Pix, c.Pix) {
		t.Fatal("different sources produced the same placeholder")
	}
	if got := a.Bounds().Dx(); got != placeholderSize {
		t.Fatalf("expected width %d, got %d", placeholderSize, got)
	}
	if a.RGBAAt(0, 0) == a.RGBAAt(4, 0) {
		t.Fatal("expected a checkerboard")
	}
}

func TestTextureRegistryLoads(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	fsys := fstest.MapFS{
		"textures/red.png": {Data: encodePNG(t, 2, 3, red)},
		"textures/bad.png": {Data: []byte("not a png")},
	}
	reg := NewTextureRegistry(nil, fstest.MapFS{}, fsys)

	tests := []struct {
		name   string
		source string
		check  func(t *testing.T, img image.Image)
	}{
		{
			name:   "found in later source",
			source: "textures/red.png",
			check: func(t *testing.T, img image.Image) {
				if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 3 {
					t.Fatalf("unexpected bounds %v", img.Bounds())
				}
				r, g, b, a := img.At(1, 2).RGBA()
				if r>>8 != 0xff || g != 0 || b != 0 || a>>8 != 0xff {
					t.Fatalf("unexpected pixel %v %v %v %v", r, g, b, a)
				}
			},
		},
		{
			name:   "missing falls back to placeholder",
			source: "textures/missing.png",
			check: func(t *testing.T, img image.Image) {
				want := Placeholder("textures/missing.png")
				got, ok := img.(*image.RGBA)
				if !ok || !bytes.Equal(got.Pix, want.Pix) {
					t.Fatal("expected the placeholder")
				}
			},
		},
		{
			name:   "undecodable falls back to placeholder",
			source: "textures/bad.png",
			check: func(t *testing.T, img image.Image) {
				if img.Bounds().Dx() != placeholderSize {
					t.Fatalf("expected placeholder size, got %v", img.Bounds())
				}
			},
		},
	}

	for _, tt := range tests {
		reg.Request(tt.source)
	}
	reg.Wait()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reg.Loaded(tt.source) {
				t.Fatalf("%s not loaded", tt.source)
			}
			reg.mu.Lock()
			tex := reg.textures[tt.source]
			reg.mu.Unlock()
			tt.check(t, tex.pixels)
		})
	}
}

func TestTextureRegistryRequestOnce(t *testing.T) {
	reg := NewTextureRegistry(nil)
	reg.Request("")
	reg.Request("a")
	reg.Request("a")
	reg.Wait()

	if reg.Loaded("") {
		t.Fatal("empty source should be ignored")
	}
	if !reg.Loaded("a") {
		t.Fatal("a not loaded")
	}
	if reg.Loaded("b") {
		t.Fatal("b was never requested")
	}
	if n := len(reg.textures); n != 1 {
		t.Fatalf("expected 1 texture entry, got %d", n)
	}
}
