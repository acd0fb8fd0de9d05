package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/flappycube/ecs/component"
	"github.com/milk9111/flappycube/ecs/system"
)

// KeyboardInput maps the keyboard onto the control flags.
//
//	W/S        camera in/out        A/D  camera orbit
//	Q/E        camera up/down       SPACE jump (release starts the game)
//	arrows     player or light      P    pause (on release)
//	1/2/3      light manual/on/strobe
//	R          restart
type KeyboardInput struct {
	debug bool
	reset bool
}

var _ system.InputSource = (*KeyboardInput)(nil)

// NewKeyboardInput returns an input source. In debug mode the arrow keys
// move the player directly.
func NewKeyboardInput(debug bool) *KeyboardInput {
	return &KeyboardInput{debug: debug}
}

func (k *KeyboardInput) Poll(c *component.Controls) {
	c.CameraForward = ebiten.IsKeyPressed(ebiten.KeyW)
	c.CameraBackward = ebiten.IsKeyPressed(ebiten.KeyS)
	c.CameraLeft = ebiten.IsKeyPressed(ebiten.KeyA)
	c.CameraRight = ebiten.IsKeyPressed(ebiten.KeyD)
	c.CameraUp = ebiten.IsKeyPressed(ebiten.KeyQ)
	c.CameraDown = ebiten.IsKeyPressed(ebiten.KeyE)

	c.PlayerJump = ebiten.IsKeyPressed(ebiten.KeySpace)
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		c.PlayerFinishJump = true
		c.JumpApex = false
		c.GameStart = false
	}

	up := ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	if k.debug {
		c.PlayerUp, c.PlayerDown, c.PlayerLeft, c.PlayerRight = up, down, left, right
	}
	if c.LightManual {
		c.LightUp, c.LightDown, c.LightLeft, c.LightRight = up, down, left, right
	} else {
		c.LightUp, c.LightDown, c.LightLeft, c.LightRight = false, false, false, false
	}

	if inpututil.IsKeyJustReleased(ebiten.KeyP) && !c.GameOver && !c.GameStart {
		c.Paused = !c.Paused
	}

	for _, key := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3} {
		if inpututil.IsKeyJustReleased(key) {
			toggleLight(c, key)
		}
	}

	if inpututil.IsKeyJustReleased(ebiten.KeyR) {
		k.reset = true
	}
}

// toggleLight flips the light flag bound to key: 1 manual, 2 on, 3 strobe.
func toggleLight(c *component.Controls, key ebiten.Key) {
	switch key {
	case ebiten.KeyDigit1:
		c.LightManual = !c.LightManual
	case ebiten.KeyDigit2:
		c.LightOn = !c.LightOn
	case ebiten.KeyDigit3:
		c.LightStrobe = !c.LightStrobe
	}
}

// TakeReset reports whether a restart was requested since the last call.
func (k *KeyboardInput) TakeReset() bool {
	r := k.reset
	k.reset = false
	return r
}

// RequestReset queues a restart, as if R had been released.
func (k *KeyboardInput) RequestReset() {
	k.reset = true
}
