package component

// Controls is the per-frame input and game-state snapshot. The input
// collaborator writes the flags; gameplay systems read them, and the collision
// system latches GameOver.
type Controls struct {
	CameraForward  bool
	CameraBackward bool
	CameraLeft     bool
	CameraRight    bool
	CameraUp       bool
	CameraDown     bool

	Paused    bool
	GameStart bool
	GameOver  bool

	PlayerJump bool
	// PlayerFinishJump is true when a fresh jump may start. It is cleared
	// when a jump fires and set again when the jump key is released.
	PlayerFinishJump bool
	// JumpApex is set once the vertical velocity reaches exactly zero while
	// the jump key is still held.
	JumpApex bool

	PlayerUp    bool
	PlayerDown  bool
	PlayerLeft  bool
	PlayerRight bool

	LightManual bool
	LightUp     bool
	LightDown   bool
	LightLeft   bool
	LightRight  bool
	LightOn     bool
	LightStrobe bool
}

// NewControls returns the state a fresh game starts in: on the start screen,
// ready to jump, player light on.
func NewControls() *Controls {
	return &Controls{
		GameStart:        true,
		PlayerFinishJump: true,
		LightOn:          true,
	}
}

// Playing reports whether the simulation systems should run this frame.
func (c *Controls) Playing() bool {
	return !c.Paused && !c.GameOver && !c.GameStart
}

// State names the banner the HUD shows.
type State int

const (
	StatePlaying State = iota
	StateStart
	StateOver
	StatePaused
)

func (c *Controls) State() State {
	switch {
	case c.GameStart:
		return StateStart
	case c.GameOver:
		return StateOver
	case c.Paused:
		return StatePaused
	default:
		return StatePlaying
	}
}

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateOver:
		return "gameover"
	case StatePaused:
		return "paused"
	default:
		return "playing"
	}
}

// Score counts cleared pipe columns. It never decreases within a game.
type Score struct {
	Value int
}
