package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flappycube/ecs/system"
	"go.uber.org/zap"
)

// Backend is an ebiten implementation of system.Renderer. Uniforms and draw
// calls are collected during Update and rasterised in Flush: vertices are
// projected on the CPU, lit per face and drawn as depth-sorted triangles.
type Backend struct {
	log      *zap.Logger
	uniforms map[string]any
	calls    []system.DrawCall
	textures *TextureRegistry

	white *ebiten.Image
	tris  []triangle
}

type triangle struct {
	depth float64
	verts [3]ebiten.Vertex
	img   *ebiten.Image
}

var _ system.Renderer = (*Backend)(nil)

func NewBackend(textures *TextureRegistry, log *zap.Logger) *Backend {
	if log == nil {
		log = zap.NewNop()
	}
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Backend{
		log:      log.Named("render"),
		uniforms: make(map[string]any),
		textures: textures,
		white:    white,
	}
}

// BeginFrame drops the previous frame's draw calls. Uniforms persist.
func (b *Backend) BeginFrame() {
	b.calls = b.calls[:0]
}

func (b *Backend) SetUniform(name string, value any) {
	b.uniforms[name] = value
}

func (b *Backend) Draw(call system.DrawCall) {
	if call.Texture != "" && b.textures != nil {
		b.textures.Request(call.Texture)
	}
	b.calls = append(b.calls, call)
}

// DrawCalls returns the calls queued this frame.
func (b *Backend) DrawCalls() []system.DrawCall {
	return b.calls
}

func (b *Backend) Uniform(name string) (any, bool) {
	v, ok := b.uniforms[name]
	return v, ok
}

func (b *Backend) mat4(name string) mgl64.Mat4 {
	if m, ok := b.uniforms[name].(mgl64.Mat4); ok {
		return m
	}
	return mgl64.Ident4()
}

func (b *Backend) vec4(name string) mgl64.Vec4 {
	v, _ := b.uniforms[name].(mgl64.Vec4)
	return v
}

func (b *Backend) float(name string) float64 {
	f, _ := b.uniforms[name].(float64)
	return f
}

type light struct {
	dir     mgl64.Vec3
	ambient mgl64.Vec3
	diffuse mgl64.Vec3
	on      bool
}

func (b *Backend) lights() [2]light {
	global := light{
		dir:     direction(b.vec4(system.UniformGlobalLightPosition)),
		ambient: b.vec4(system.UniformGlobalLightAmbient).Vec3(),
		diffuse: b.vec4(system.UniformGlobalLightDiffuse).Vec3(),
		on:      true,
	}
	player := light{
		dir:     direction(b.vec4(system.UniformPlayerLightPosition)),
		ambient: b.vec4(system.UniformPlayerLightAmbient).Vec3(),
		diffuse: b.vec4(system.UniformPlayerLightDiffuse).Vec3(),
		on:      b.float(system.UniformPlayerLightOn) != 0,
	}
	return [2]light{global, player}
}

func direction(pos mgl64.Vec4) mgl64.Vec3 {
	v := pos.Vec3()
	if v.Len() < 1e-9 {
		return mgl64.Vec3{}
	}
	return v.Normalize()
}

// Flush rasterises the queued draw calls onto screen.
func (b *Backend) Flush(screen *ebiten.Image) {
	bounds := screen.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())
	viewProj := b.mat4(system.UniformProjection).Mul4(b.mat4(system.UniformView))
	lights := b.lights()

	b.tris = b.tris[:0]
	for _, call := range b.calls {
		b.project(call, viewProj, lights, width, height)
	}

	// painter's order: farthest first
	sort.SliceStable(b.tris, func(i, j int) bool {
		return b.tris[i].depth > b.tris[j].depth
	})

	indices := []uint16{0, 1, 2}
	for i := range b.tris {
		t := &b.tris[i]
		screen.DrawTriangles(t.verts[:], indices, t.img, &ebiten.DrawTrianglesOptions{})
	}
}

func (b *Backend) project(call system.DrawCall, viewProj mgl64.Mat4, lights [2]light, width, height float64) {
	img := b.white
	var texW, texH float64
	if call.Texture != "" && b.textures != nil {
		if tex := b.textures.Image(call.Texture); tex != nil && len(call.UVs) == len(call.Vertices) {
			img = tex
			texW = float64(tex.Bounds().Dx())
			texH = float64(tex.Bounds().Dy())
		}
	}
	mvp := viewProj.Mul4(call.Transform)
	normalMat := call.Transform.Mat3()

	for i := 0; i+2 < len(call.Vertices); i += 3 {
		var tri triangle
		tri.img = img
		visible := true
		for k := 0; k < 3; k++ {
			clip := mvp.Mul4x1(call.Vertices[i+k])
			if clip.W() <= 1e-6 {
				visible = false
				break
			}
			ndc := clip.Vec3().Mul(1 / clip.W())
			tri.depth += ndc.Z() / 3
			v := &tri.verts[k]
			v.DstX = float32((ndc.X() + 1) / 2 * width)
			v.DstY = float32((1 - ndc.Y()) / 2 * height)
			if img == b.white {
				v.SrcX, v.SrcY = 1.5, 1.5
			} else {
				uv := call.UVs[i+k]
				v.SrcX = float32(uv.X() * texW)
				v.SrcY = float32((1 - uv.Y()) * texH)
			}
		}
		if !visible {
			continue
		}

		shade := mgl64.Vec3{1, 1, 1}
		if call.Material != nil && i < len(call.Normals) {
			// mesh normals face into the cube
			n := normalMat.Mul3x1(call.Normals[i]).Mul(-1)
			if n.Len() > 1e-9 {
				n = n.Normalize()
			}
			shade = shadeFace(n, call.Material, lights)
		}
		for k := range tri.verts {
			tri.verts[k].ColorR = float32(shade.X())
			tri.verts[k].ColorG = float32(shade.Y())
			tri.verts[k].ColorB = float32(shade.Z())
			tri.verts[k].ColorA = 1
		}
		b.tris = append(b.tris, tri)
	}
}

// shadeFace is a per-face ambient + Lambert term over both lights.
func shadeFace(n mgl64.Vec3, m *system.Material, lights [2]light) mgl64.Vec3 {
	var ambient, diffuse mgl64.Vec3
	for _, l := range lights {
		if !l.on {
			continue
		}
		ambient = ambient.Add(l.ambient)
		lambert := math.Max(0, n.Dot(l.dir))
		diffuse = diffuse.Add(l.diffuse.Mul(lambert))
	}
	c := mulElem(m.Ambient.Vec3(), ambient).Add(mulElem(m.Diffuse.Vec3(), diffuse))
	return mgl64.Vec3{clamp01(c.X()), clamp01(c.Y()), clamp01(c.Z())}
}

func mulElem(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
