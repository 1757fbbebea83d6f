//go:build ebiten

package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/life"
)

var ebitenKeys = [...]struct {
	from ebiten.Key
	to   life.Key
}{
	{ebiten.KeyW, life.KeyW},
	{ebiten.KeyA, life.KeyA},
	{ebiten.KeyS, life.KeyS},
	{ebiten.KeyD, life.KeyD},
	{ebiten.KeyH, life.KeyH},
	{ebiten.KeyJ, life.KeyJ},
	{ebiten.KeyK, life.KeyK},
	{ebiten.KeyL, life.KeyL},
	{ebiten.KeyP, life.KeyP},
	{ebiten.KeyN, life.KeyN},
	{ebiten.KeyG, life.KeyG},
	{ebiten.KeyF, life.KeyF},
	{ebiten.KeyC, life.KeyC},
	{ebiten.KeyX, life.KeyX},
	{ebiten.KeyZ, life.KeyZ},
	{ebiten.KeyR, life.KeyR},
	{ebiten.KeyO, life.KeyO},
	{ebiten.KeyDigit0, life.Key0},
	{ebiten.KeyDigit1, life.Key1},
	{ebiten.KeyDigit2, life.Key2},
	{ebiten.KeyDigit3, life.Key3},
	{ebiten.KeyDigit4, life.Key4},
	{ebiten.KeyDigit5, life.Key5},
	{ebiten.KeyDigit6, life.Key6},
	{ebiten.KeyDigit7, life.Key7},
	{ebiten.KeyDigit8, life.Key8},
	{ebiten.KeyDigit9, life.Key9},
	{ebiten.KeyMinus, life.KeyMinus},
	{ebiten.KeyEqual, life.KeyEqual},
	{ebiten.KeyBracketLeft, life.KeyLeftBracket},
	{ebiten.KeyBracketRight, life.KeyRightBracket},
	{ebiten.KeyComma, life.KeyComma},
	{ebiten.KeyPeriod, life.KeyPeriod},
	{ebiten.KeyTab, life.KeyTab},
	{ebiten.KeySpace, life.KeySpace},
	{ebiten.KeyEnter, life.KeyEnter},
	{ebiten.KeyBackspace, life.KeyBackspace},
	{ebiten.KeyEscape, life.KeyEscape},
	{ebiten.KeyF12, life.KeyF12},
}

// pollInput samples the keyboard and wheel into in. Ebitengine exposes
// polled state only, so presses and releases are derived by SetKey.
func pollInput(in *life.InputState, dt float32) {
	in.Reset()
	for _, k := range ebitenKeys {
		in.SetKey(k.to, ebiten.IsKeyPressed(k.from))
	}
	_, wy := ebiten.Wheel()
	in.SetWheel(float32(wy))
	in.ModShift = ebiten.IsKeyPressed(ebiten.KeyShift)
	in.UpdateKeyRepeat(dt)
}
