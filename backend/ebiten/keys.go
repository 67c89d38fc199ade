package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/zoomer"
	"github.com/gogpu/zoomer/input"
)

// keyMap translates ebiten key codes. Keys not listed are ignored.
var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyA: input.KeyA, ebiten.KeyB: input.KeyB, ebiten.KeyC: input.KeyC,
	ebiten.KeyD: input.KeyD, ebiten.KeyE: input.KeyE, ebiten.KeyF: input.KeyF,
	ebiten.KeyG: input.KeyG, ebiten.KeyH: input.KeyH, ebiten.KeyI: input.KeyI,
	ebiten.KeyJ: input.KeyJ, ebiten.KeyK: input.KeyK, ebiten.KeyL: input.KeyL,
	ebiten.KeyM: input.KeyM, ebiten.KeyN: input.KeyN, ebiten.KeyO: input.KeyO,
	ebiten.KeyP: input.KeyP, ebiten.KeyQ: input.KeyQ, ebiten.KeyR: input.KeyR,
	ebiten.KeyS: input.KeyS, ebiten.KeyT: input.KeyT, ebiten.KeyU: input.KeyU,
	ebiten.KeyV: input.KeyV, ebiten.KeyW: input.KeyW, ebiten.KeyX: input.KeyX,
	ebiten.KeyY: input.KeyY, ebiten.KeyZ: input.KeyZ,

	ebiten.KeyDigit0: input.Key0, ebiten.KeyDigit1: input.Key1,
	ebiten.KeyDigit2: input.Key2, ebiten.KeyDigit3: input.Key3,
	ebiten.KeyDigit4: input.Key4, ebiten.KeyDigit5: input.Key5,
	ebiten.KeyDigit6: input.Key6, ebiten.KeyDigit7: input.Key7,
	ebiten.KeyDigit8: input.Key8, ebiten.KeyDigit9: input.Key9,

	ebiten.KeyArrowUp:    input.KeyArrowUp,
	ebiten.KeyArrowDown:  input.KeyArrowDown,
	ebiten.KeyArrowLeft:  input.KeyArrowLeft,
	ebiten.KeyArrowRight: input.KeyArrowRight,

	ebiten.KeyShiftLeft:    input.KeyShiftLeft,
	ebiten.KeyShiftRight:   input.KeyShiftRight,
	ebiten.KeyControlLeft:  input.KeyControlLeft,
	ebiten.KeyControlRight: input.KeyControlRight,
	ebiten.KeyAltLeft:      input.KeyAltLeft,
	ebiten.KeyAltRight:     input.KeyAltRight,

	ebiten.KeyEscape: input.KeyEscape,
	ebiten.KeySpace:  input.KeySpace,
	ebiten.KeyEnter:  input.KeyEnter,
	ebiten.KeyTab:    input.KeyTab,
}

// pointerButtons maps ebiten mouse buttons to the button mask.
var pointerButtons = []struct {
	button ebiten.MouseButton
	mask   zoomer.Buttons
}{
	{ebiten.MouseButtonLeft, zoomer.ButtonLeft},
	{ebiten.MouseButtonMiddle, zoomer.ButtonMiddle},
	{ebiten.MouseButtonRight, zoomer.ButtonRight},
}
