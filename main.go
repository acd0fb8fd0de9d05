package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flappycube/settings"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "settings file (.yaml or .toml); embedded defaults when empty")
	debug := flag.Bool("debug", false, "collision debug mode: single block, arrow keys move the player")
	watch := flag.Bool("watch", false, "reload -config on change; applied on restart (R)")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to the working directory")
	seed := flag.Uint64("seed", 0, "level seed; random when 0")
	flag.Parse()

	cfg := settings.Default()
	if *configPath != "" {
		loaded, err := settings.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *debug {
		cfg.Debug.Collision = true
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	var updates <-chan *settings.Settings
	if *watch && *configPath != "" {
		w, err := settings.NewWatcher(*configPath, log)
		if err != nil {
			return fmt.Errorf("watch %s: %w", *configPath, err)
		}
		defer func() { _ = w.Close() }()
		updates = w.Updates
	}

	if *seed == 0 {
		*seed = rand.Uint64()
	}
	log.Info("starting", zap.String("config", *configPath), zap.Uint64("seed", *seed))
	rng := rand.New(rand.NewPCG(*seed, *seed>>1|1))

	game, err := NewGame(cfg, log, rng, updates)
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		return err
	}
	log.Info("bye")
	return nil
}

func newLogger(cfg settings.LoggingSettings) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
