package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flappycube/ecs/component"
)

func TestToggleLight(t *testing.T) {
	cases := []struct {
		name               string
		key                ebiten.Key
		manual, on, strobe bool
	}{
		{"1_manual", ebiten.KeyDigit1, true, false, false},
		{"2_on", ebiten.KeyDigit2, false, true, false},
		{"3_strobe", ebiten.KeyDigit3, false, false, true},
		{"other_key", ebiten.KeyDigit4, false, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := &component.Controls{}
			toggleLight(ctrl, c.key)
			if ctrl.LightManual != c.manual || ctrl.LightOn != c.on || ctrl.LightStrobe != c.strobe {
				t.Fatalf("manual/on/strobe = %v/%v/%v, want %v/%v/%v",
					ctrl.LightManual, ctrl.LightOn, ctrl.LightStrobe, c.manual, c.on, c.strobe)
			}
			toggleLight(ctrl, c.key)
			if ctrl.LightManual || ctrl.LightOn || ctrl.LightStrobe {
				t.Fatalf("second toggle did not restore the flags")
			}
		})
	}
}

func TestRequestReset(t *testing.T) {
	k := NewKeyboardInput(false)
	if k.TakeReset() {
		t.Fatalf("reset pending before any request")
	}
	k.RequestReset()
	if !k.TakeReset() {
		t.Fatalf("requested reset not reported")
	}
	if k.TakeReset() {
		t.Fatalf("reset reported twice")
	}
}
