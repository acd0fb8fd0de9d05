package entity

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/flappycube/ecs"
	"github.com/milk9111/flappycube/ecs/component"
	"github.com/milk9111/flappycube/mesh"
	"github.com/milk9111/flappycube/settings"
)

func TestPipeBlockY(t *testing.T) {
	cases := []struct {
		name   string
		row    int
		gapRow int
		want   float64
	}{
		{"below_gap", -3, 0, -3},
		{"just_below", -1, 0, -1},
		{"at_gap", 0, 0, 2},
		{"above_gap", 3, 0, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := PipeBlockY(c.row, c.gapRow, 2); got != c.want {
				t.Fatalf("PipeBlockY(%d, %d) = %v, want %v", c.row, c.gapRow, got, c.want)
			}
		})
	}
}

func TestRollGapRowRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		g := RollGapRow(rng, -3, 7)
		if g < -3 || g > 3 {
			t.Fatalf("gap row %d outside [-3, 3]", g)
		}
		seen[g] = true
	}
	if len(seen) != 7 {
		t.Fatalf("only %d of 7 rows rolled", len(seen))
	}
}

func TestNewScene(t *testing.T) {
	cfg := settings.Default()
	w := ecs.NewWorld()
	if err := NewScene(w, cfg, rand.New(rand.NewPCG(1, 1)), nil); err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	w.Sync()

	counts := []struct {
		tag  string
		want int
	}{
		{TagPlayer, 1},
		{TagPlayerWing, 2},
		{TagCamera, 1},
		{TagGlobalLight, 1},
		{TagPlayerLight, 1},
		{TagGroundBlock, cfg.Level.GroundBlocks},
		{TagPipeBlock, cfg.Level.Pipes * cfg.Level.PipeColumn},
	}
	for _, c := range counts {
		t.Run(c.tag, func(t *testing.T) {
			if got := len(w.Collection(c.tag)); got != c.want {
				t.Fatalf("%s count = %d, want %d", c.tag, got, c.want)
			}
		})
	}

	p, _ := w.First(TagPlayer)
	vel := ecs.MustGet[*component.Velocity](w, p, component.KindVelocity)
	if vel.Y != cfg.Player.MaxFallSpeed {
		t.Fatalf("player starts at vy = %v, want %v", vel.Y, cfg.Player.MaxFallSpeed)
	}
	children := ecs.MustGet[*component.Children](w, p, component.KindChildren)
	wings := w.Collection(TagPlayerWing)
	for i, c := range children.Entities {
		if c != wings[i] {
			t.Fatalf("child %d is %s, want wing %s", i, c, wings[i])
		}
	}
	verts := ecs.MustGet[*component.Vertices](w, p, component.KindVertices)
	if len(verts.Vertices) != mesh.VerticesPerCube {
		t.Fatalf("player mesh has %d vertices", len(verts.Vertices))
	}

	cam, _ := w.First(TagCamera)
	proj := ecs.MustGet[*component.Projection](w, cam, component.KindProjection)
	if proj.Radius != cfg.Camera.Radius {
		t.Fatalf("orbit radius = %v, want %v", proj.Radius, cfg.Camera.Radius)
	}
}

func TestNewLevelColumns(t *testing.T) {
	cfg := settings.Default()
	w := ecs.NewWorld()
	gap := cfg.Level.PipeStartY + 4
	roll := func(*rand.Rand, int, int) int { return gap }
	if err := NewLevel(w, cfg, rand.New(rand.NewPCG(1, 1)), roll); err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	w.Sync()

	pipes := w.Collection(TagPipeBlock)
	for i, e := range pipes {
		col, row := i/cfg.Level.PipeColumn, i%cfg.Level.PipeColumn+cfg.Level.PipeStartY
		pos := ecs.MustGet[*component.Position](w, e, component.KindPosition)
		wantX := float64(col)*cfg.Level.PipeSpacing + cfg.Level.PipeStartX
		if pos.X != wantX {
			t.Fatalf("block %d: x = %v, want %v", i, pos.X, wantX)
		}
		if want := PipeBlockY(row, gap, cfg.Level.GapHeight); pos.Y != want {
			t.Fatalf("block %d: y = %v, want %v", i, pos.Y, want)
		}
	}

	ground := w.Collection(TagGroundBlock)
	first := ecs.MustGet[*component.Position](w, ground[0], component.KindPosition)
	if first.X != -7 || first.Y != cfg.Level.GroundY {
		t.Fatalf("first ground block at (%v, %v), want (-7, %v)", first.X, first.Y, cfg.Level.GroundY)
	}
}

func TestDebugLevel(t *testing.T) {
	cfg := settings.Default()
	cfg.Debug.Collision = true
	w := ecs.NewWorld()
	if err := NewLevel(w, cfg, nil, nil); err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	w.Sync()
	if got := len(w.Entities()); got != 1 {
		t.Fatalf("debug level has %d entities, want 1", got)
	}
}

func TestBuilderRejectsDuplicates(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity("probe")
	err := addAll(w, e, "probe", component.NewScale(1, 1, 1, 1), component.NewScale(2, 2, 2, 1))
	if err == nil {
		t.Fatalf("expected duplicate kind error")
	}
}
