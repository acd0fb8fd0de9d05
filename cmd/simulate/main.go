package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"sort"

	"github.com/milk9111/flappycube/ecs"
	"github.com/milk9111/flappycube/ecs/component"
	"github.com/milk9111/flappycube/ecs/entity"
	"github.com/milk9111/flappycube/ecs/system"
	"github.com/milk9111/flappycube/script"
	"github.com/milk9111/flappycube/settings"
	"go.uber.org/zap"
)

// simulate runs the game headless with an autopilot and reports the score.
// It is used to tune level settings and gap scripts without a window.
func main() {
	configPath := flag.String("config", "", "settings file (.yaml or .toml)")
	frames := flag.Int("frames", 3600, "maximum frames to simulate")
	seed := flag.Uint64("seed", 1, "level seed")
	runs := flag.Int("runs", 1, "number of games, seeds seed..seed+runs-1")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	cfg := settings.Default()
	if *configPath != "" {
		if cfg, err = settings.Load(*configPath); err != nil {
			log.Fatal("load settings", zap.Error(err))
		}
	}
	cfg.Debug.Collision = false

	roll := entity.RollGapRow
	if cfg.Level.GapScript != "" {
		gs, err := script.LoadGapScript(cfg.Level.GapScript)
		if err != nil {
			log.Fatal("load gap script", zap.Error(err))
		}
		roll = gs.Roller(log)
	}

	total := 0
	for i := 0; i < *runs; i++ {
		s := *seed + uint64(i)
		res, err := Run(cfg, s, *frames, roll)
		if err != nil {
			log.Fatal("run", zap.Uint64("seed", s), zap.Error(err))
		}
		log.Info("run finished",
			zap.Uint64("seed", s),
			zap.Int("score", res.Score),
			zap.Uint64("frames", res.Frames),
			zap.Bool("crashed", res.Crashed),
		)
		total += res.Score
	}
	if *runs > 1 {
		log.Info("summary", zap.Int("runs", *runs), zap.Float64("mean_score", float64(total)/float64(*runs)))
	}
}

type Result struct {
	Score   int
	Frames  uint64
	Crashed bool
}

// Run plays one game until the player crashes or maxFrames have passed.
func Run(cfg *settings.Settings, seed uint64, maxFrames int, roll entity.GapRoller) (Result, error) {
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))
	w := ecs.NewWorld()
	ctrl := component.NewControls()
	score := &component.Score{}
	ecs.SetResource(w, ctrl)
	ecs.SetResource(w, score)
	if err := entity.NewScene(w, cfg, rng, roll); err != nil {
		return Result{}, err
	}

	pilot := &autopilot{world: w}
	pipeline := system.NewPipeline(cfg, rng, pilot, nil, roll)
	pipeline.Add(ecs.SystemFunc(func(w *ecs.World) { w.Events().Drain() }))
	loop := ecs.NewLoop(w, pipeline)
	for i := 0; i < maxFrames && !ctrl.GameOver; i++ {
		loop.Step()
	}
	return Result{Score: score.Value, Frames: loop.Frames(), Crashed: ctrl.GameOver}, nil
}

// autopilot taps jump whenever the player sinks below the middle of the next
// gap. It emulates key press and release the way the keyboard source does.
type autopilot struct {
	world *ecs.World
	held  bool
}

func (a *autopilot) Poll(c *component.Controls) {
	if a.held {
		// release
		a.held = false
		c.PlayerJump = false
		c.PlayerFinishJump = true
		c.JumpApex = false
		c.GameStart = false
		return
	}
	if c.GameStart {
		a.held = true
		c.PlayerJump = true
		return
	}

	y, vy, ok := a.player()
	if !ok {
		return
	}
	if target, ok := a.nextGap(); ok && y < target && vy <= 0 {
		a.held = true
		c.PlayerJump = true
	}
}

func (a *autopilot) player() (y, vy float64, ok bool) {
	p, ok := a.world.First(entity.TagPlayer)
	if !ok {
		return 0, 0, false
	}
	pos, ok := ecs.Get[*component.Position](a.world, p, component.KindPosition)
	if !ok {
		return 0, 0, false
	}
	scale, ok := ecs.Get[*component.Scale](a.world, p, component.KindScale)
	if !ok {
		return 0, 0, false
	}
	vel, ok := ecs.Get[*component.Velocity](a.world, p, component.KindVelocity)
	if !ok {
		return 0, 0, false
	}
	return pos.Y * scale.Y, vel.Y, true
}

// nextGap returns the world y of the middle of the gap in the closest column
// that has not been passed yet.
func (a *autopilot) nextGap() (float64, bool) {
	columns := map[float64][]float64{}
	nearest := math.Inf(1)
	for _, e := range a.world.Collection(entity.TagPipeBlock) {
		pos, ok := ecs.Get[*component.Position](a.world, e, component.KindPosition)
		if !ok {
			continue
		}
		x := math.Round(pos.X*100) / 100
		columns[x] = append(columns[x], pos.Y)
		if x > -1 && x < nearest {
			nearest = x
		}
	}
	ys, ok := columns[nearest]
	if !ok || len(ys) < 2 {
		return 0, false
	}
	sort.Float64s(ys)
	best, mid := 0.0, 0.0
	for i := 1; i < len(ys); i++ {
		if d := ys[i] - ys[i-1]; d > best {
			best, mid = d, (ys[i]+ys[i-1])/2
		}
	}
	return mid, best > 1
}
