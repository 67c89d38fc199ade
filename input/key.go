package input

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Key is a physical keyboard key, independent of any windowing backend.
type Key uint8

// Keys known to the magnifier.
const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight

	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight

	KeyEscape
	KeySpace
	KeyEnter
	KeyTab

	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown: "Unknown",

	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F",
	KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L",
	KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R",
	KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",

	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",

	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",

	KeyShiftLeft:    "ShiftLeft",
	KeyShiftRight:   "ShiftRight",
	KeyControlLeft:  "ControlLeft",
	KeyControlRight: "ControlRight",
	KeyAltLeft:      "AltLeft",
	KeyAltRight:     "AltRight",

	KeyEscape: "Escape",
	KeySpace:  "Space",
	KeyEnter:  "Enter",
	KeyTab:    "Tab",
}

// keyAliases are accepted by ParseKey in addition to the canonical names.
var keyAliases = map[string]Key{
	"Up":     KeyArrowUp,
	"Down":   KeyArrowDown,
	"Left":   KeyArrowLeft,
	"Right":  KeyArrowRight,
	"Shift":  KeyShiftLeft,
	"Ctrl":   KeyControlLeft,
	"Alt":    KeyAltLeft,
	"Esc":    KeyEscape,
	"Return": KeyEnter,
}

// keyLookup maps case-folded names to keys.
var keyLookup = func() map[string]Key {
	fold := cases.Fold()
	m := make(map[string]Key, len(keyNames)+len(keyAliases))
	for k := KeyA; k < keyCount; k++ {
		m[fold.String(keyNames[k])] = k
	}
	for name, k := range keyAliases {
		m[fold.String(name)] = k
	}
	return m
}()

// String returns the canonical name of k.
func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "Unknown"
}

// ParseKey returns the key named s. Matching is case-insensitive, so "q",
// "Q", "arrowup" and "ArrowUp" are all accepted.
func ParseKey(s string) (Key, error) {
	if k, ok := keyLookup[cases.Fold().String(s)]; ok {
		return k, nil
	}
	return KeyUnknown, fmt.Errorf("input: unknown key %q", s)
}

// Digit returns the numeric value of a digit key.
func (k Key) Digit() (int, bool) {
	if k >= Key0 && k <= Key9 {
		return int(k - Key0), true
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	v, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
