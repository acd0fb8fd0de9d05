package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Settings holds every tunable the game reads at startup or on reset.
type Settings struct {
	Level     LevelSettings     `yaml:"level" toml:"level"`
	Player    PlayerSettings    `yaml:"player" toml:"player"`
	Camera    CameraSettings    `yaml:"camera" toml:"camera"`
	Light     LightSettings     `yaml:"light" toml:"light"`
	Collision CollisionSettings `yaml:"collision" toml:"collision"`
	Textures  TextureSettings   `yaml:"textures" toml:"textures"`
	Window    WindowSettings    `yaml:"window" toml:"window"`
	Logging   LoggingSettings   `yaml:"logging" toml:"logging"`
	Debug     DebugSettings     `yaml:"debug" toml:"debug"`
}

type LevelSettings struct {
	GroundBlocks int     `yaml:"ground_blocks" toml:"ground_blocks"`
	GroundY      float64 `yaml:"ground_y" toml:"ground_y"`
	Pipes        int     `yaml:"pipes" toml:"pipes"`
	PipeColumn   int     `yaml:"pipe_column" toml:"pipe_column"`
	PipeStartY   int     `yaml:"pipe_start_y" toml:"pipe_start_y"`
	PipeStartX   float64 `yaml:"pipe_start_x" toml:"pipe_start_x"`
	PipeSpacing  float64 `yaml:"pipe_spacing" toml:"pipe_spacing"`
	GapHeight    float64 `yaml:"gap_height" toml:"gap_height"`
	// GapScript optionally names a tengo script that picks each column's
	// gap row in place of the uniform roll.
	GapScript string `yaml:"gap_script" toml:"gap_script"`
}

type PlayerSettings struct {
	MoveSpeed    float64 `yaml:"move_speed" toml:"move_speed"`
	MaxFallSpeed float64 `yaml:"max_fall_speed" toml:"max_fall_speed"`
	JumpSpeed    float64 `yaml:"jump_speed" toml:"jump_speed"`
	Gravity      float64 `yaml:"gravity" toml:"gravity"`
}

type CameraSettings struct {
	Fov          float64 `yaml:"fov" toml:"fov"`
	Near         float64 `yaml:"near" toml:"near"`
	ViewDistance float64 `yaml:"view_distance" toml:"view_distance"`
	Radius       float64 `yaml:"radius" toml:"radius"`
	Step         float64 `yaml:"step" toml:"step"`
}

type LightSettings struct {
	Step float64 `yaml:"step" toml:"step"`
}

// CollisionSettings selects the overlap test. "aabb" uses exact box
// intersection, "legacy" the per-axis distance formula of the first release.
type CollisionSettings struct {
	Mode string `yaml:"mode" toml:"mode"`
}

const (
	CollisionLegacy = "legacy"
	CollisionAABB   = "aabb"
)

type TextureSettings struct {
	Ground     string `yaml:"ground" toml:"ground"`
	Pipe       string `yaml:"pipe" toml:"pipe"`
	PlayerBody string `yaml:"player_body" toml:"player_body"`
	PlayerWing string `yaml:"player_wing" toml:"player_wing"`
}

type WindowSettings struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
}

type LoggingSettings struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // "json" or "console"
}

type DebugSettings struct {
	// Collision replaces the scrolling level with a single block and lets
	// the arrow keys move the player directly.
	Collision bool `yaml:"collision" toml:"collision"`
}

// Default returns the embedded settings file decoded over the built-in
// defaults.
func Default() *Settings {
	cfg := defaults()
	if data, err := Embedded.ReadFile(embeddedName); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return defaults()
		}
	}
	return cfg
}

// Load reads path and decodes it over the defaults. The format follows the
// file extension: .yaml/.yml or .toml.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("settings: read %s: %w", path, err)
	}
	cfg, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("settings: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data in the format named by ext over the defaults and
// validates the result.
func Decode(ext string, data []byte) (*Settings, error) {
	cfg := defaults()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal yaml: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported settings format %q", ext)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the level builder and systems cannot run with.
func (s *Settings) Validate() error {
	switch {
	case s.Level.GroundBlocks < 1:
		return fmt.Errorf("level.ground_blocks must be positive, got %d", s.Level.GroundBlocks)
	case s.Level.Pipes < 0:
		return fmt.Errorf("level.pipes must not be negative, got %d", s.Level.Pipes)
	case s.Level.PipeColumn < 1:
		return fmt.Errorf("level.pipe_column must be positive, got %d", s.Level.PipeColumn)
	case s.Player.MaxFallSpeed >= 0:
		return fmt.Errorf("player.max_fall_speed must be negative, got %v", s.Player.MaxFallSpeed)
	case s.Camera.Near <= 0 || s.Camera.ViewDistance <= s.Camera.Near:
		return fmt.Errorf("camera near/view_distance out of range: %v/%v", s.Camera.Near, s.Camera.ViewDistance)
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	switch s.Collision.Mode {
	case CollisionLegacy, CollisionAABB:
	default:
		return fmt.Errorf("collision.mode must be %q or %q, got %q", CollisionLegacy, CollisionAABB, s.Collision.Mode)
	}
	return nil
}

// Aspect is the window aspect ratio used for the camera projection.
func (s *Settings) Aspect() float64 {
	return float64(s.Window.Width) / float64(s.Window.Height)
}

func defaults() *Settings {
	return &Settings{
		Level: LevelSettings{
			GroundBlocks: 15,
			GroundY:      -4,
			Pipes:        3,
			PipeColumn:   7,
			PipeStartY:   -3,
			PipeStartX:   5,
			PipeSpacing:  5,
			GapHeight:    2,
		},
		Player: PlayerSettings{
			MoveSpeed:    0.05,
			MaxFallSpeed: -0.3,
			JumpSpeed:    0.25,
			Gravity:      -0.025,
		},
		Camera: CameraSettings{
			Fov:          90,
			Near:         0.1,
			ViewDistance: 100,
			Radius:       5,
			Step:         0.1,
		},
		Light: LightSettings{
			Step: 0.1,
		},
		Collision: CollisionSettings{
			Mode: CollisionAABB,
		},
		Textures: TextureSettings{
			Ground:     "textures/ground.png",
			Pipe:       "textures/pipe.png",
			PlayerBody: "textures/player_body.png",
			PlayerWing: "textures/player_wing.png",
		},
		Window: WindowSettings{
			Width:  1280,
			Height: 720,
			Title:  "flappycube",
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "console",
		},
	}
}
