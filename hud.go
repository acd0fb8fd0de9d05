package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/flappycube/ecs/component"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the score and the start banner over the 3D scene. Pause and game
// over use the menu panels instead.
type HUD struct {
	face          ebtext.Face
	width, height float64
}

func NewHUD(width, height int) *HUD {
	return &HUD{
		face:   ebtext.NewGoXFace(basicfont.Face7x13),
		width:  float64(width),
		height: float64(height),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, ctrl *component.Controls, score int) {
	h.print(screen, fmt.Sprintf("SCORE %d", score), 16, 16, ebtext.AlignStart, 2)

	if ctrl != nil && ctrl.State() == component.StateStart {
		h.print(screen, "GAME START", h.width/2, h.height/3, ebtext.AlignCenter, 4)
		h.print(screen, "PRESS SPACEBAR TO PLAY", h.width/2, h.height/3+64, ebtext.AlignCenter, 2)
	}
}

func (h *HUD) print(screen *ebiten.Image, msg string, x, y float64, align ebtext.Align, scale float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = align
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, msg, h.face, op)
}
