package main

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flappycube/assets"
	"github.com/milk9111/flappycube/ecs"
	"github.com/milk9111/flappycube/ecs/component"
	"github.com/milk9111/flappycube/ecs/entity"
	"github.com/milk9111/flappycube/ecs/system"
	"github.com/milk9111/flappycube/render"
	"github.com/milk9111/flappycube/script"
	"github.com/milk9111/flappycube/settings"
	"go.uber.org/zap"
)

var clearColor = color.RGBA{R: 0x10, G: 0x12, B: 0x1c, A: 0xff}

type Game struct {
	cfg     *settings.Settings
	pending *settings.Settings
	updates <-chan *settings.Settings
	log     *zap.Logger
	rng     *rand.Rand

	world    *ecs.World
	loop     *ecs.Loop
	input    *KeyboardInput
	backend  *render.Backend
	textures *render.TextureRegistry

	hud     *HUD
	pauseUI *ebitenui.UI
	overUI  *ebitenui.UI
	quit    bool
}

// NewGame builds the world and the first scene. updates may be nil; settings
// received on it are applied at the next restart.
func NewGame(cfg *settings.Settings, log *zap.Logger, rng *rand.Rand, updates <-chan *settings.Settings) (*Game, error) {
	textures := render.NewTextureRegistry(log, assets.FS(), os.DirFS("."))
	g := &Game{
		cfg:      cfg,
		updates:  updates,
		log:      log,
		rng:      rng,
		world:    ecs.NewWorld(ecs.WithLogger(log.Named("ecs"))),
		input:    NewKeyboardInput(cfg.Debug.Collision),
		backend:  render.NewBackend(textures, log),
		textures: textures,
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// reset tears the world down and builds a fresh scene from the current
// settings.
func (g *Game) reset() error {
	if g.pending != nil {
		g.cfg = g.pending
		g.pending = nil
		g.log.Info("applied reloaded settings")
	}

	g.world.Shutdown()
	ecs.SetResource(g.world, component.NewControls())
	ecs.SetResource(g.world, &component.Score{})

	roll := g.gapRoller()
	if err := entity.NewScene(g.world, g.cfg, g.rng, roll); err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	pipeline := system.NewPipeline(g.cfg, g.rng, g.input, g.backend, roll)
	pipeline.Add(ecs.SystemFunc(g.logEvents))
	g.loop = ecs.NewLoop(g.world, pipeline)

	w, h := g.cfg.Window.Width, g.cfg.Window.Height
	g.hud = NewHUD(w, h)
	g.pauseUI = NewMenuUI(w, h, "PAUSED", "PRESS P TO UNPAUSE",
		menuAction{label: "Resume", run: g.resume},
		menuAction{label: "Restart", run: g.input.RequestReset},
		menuAction{label: "Quit", run: g.exit},
	)
	g.overUI = NewMenuUI(w, h, "GAME OVER", "PRESS R TO PLAY AGAIN",
		menuAction{label: "Play again", run: g.input.RequestReset},
		menuAction{label: "Quit", run: g.exit},
	)

	g.log.Info("scene ready",
		zap.Int("entities", len(g.world.Entities())),
		zap.Bool("debug_collision", g.cfg.Debug.Collision),
		zap.String("collision", g.cfg.Collision.Mode),
	)
	return nil
}

func (g *Game) gapRoller() entity.GapRoller {
	path := g.cfg.Level.GapScript
	if path == "" {
		return entity.RollGapRow
	}
	gs, err := script.LoadGapScript(path)
	if err != nil {
		g.log.Warn("gap script disabled", zap.Error(err))
		return entity.RollGapRow
	}
	return gs.Roller(g.log)
}

// logEvents runs last in the frame and drains what the systems emitted.
func (g *Game) logEvents(w *ecs.World) {
	for _, evt := range w.Events().Drain() {
		switch data := evt.Data.(type) {
		case ecs.ScoreEvent:
			g.log.Debug("column cleared", zap.Int("score", data.Score))
		case ecs.GameOverEvent:
			g.log.Info("game over", zap.Int("score", data.Score), zap.Stringer("block", data.Block))
		}
	}
}

func (g *Game) controls() *component.Controls {
	ctrl, _ := ecs.Resource[component.Controls](g.world)
	return ctrl
}

func (g *Game) score() int {
	if s, ok := ecs.Resource[component.Score](g.world); ok {
		return s.Value
	}
	return 0
}

func (g *Game) resume() {
	if ctrl := g.controls(); ctrl != nil {
		ctrl.Paused = false
	}
}

func (g *Game) exit() {
	g.quit = true
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	select {
	case cfg, ok := <-g.updates:
		if ok && cfg != nil {
			g.pending = cfg
			g.log.Info("settings changed, restart to apply")
		}
	default:
	}

	g.backend.BeginFrame()
	if !g.loop.Step() {
		return ebiten.Termination
	}

	if ctrl := g.controls(); ctrl != nil {
		switch ctrl.State() {
		case component.StatePaused:
			g.pauseUI.Update()
		case component.StateOver:
			g.overUI.Update()
		}
	}

	if g.input.TakeReset() {
		return g.reset()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	g.backend.Flush(screen)

	ctrl := g.controls()
	g.hud.Draw(screen, ctrl, g.score())
	if ctrl == nil {
		return
	}
	switch ctrl.State() {
	case component.StatePaused:
		g.pauseUI.Draw(screen)
	case component.StateOver:
		g.overUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close waits for in-flight texture loads.
func (g *Game) Close() {
	g.textures.Wait()
}
