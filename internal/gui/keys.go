package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyName spells an ebiten key the way bubbletea's KeyMsg.String() does, so
// both presenters share one set of bindings. Keys without a binding report false.
func keyName(k ebiten.Key, shift, ctrl bool) (string, bool) {
	switch {
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		if shift {
			return "", false
		}
		return string(rune('0' + int(k-ebiten.KeyDigit0))), true
	case k >= ebiten.KeyNumpad0 && k <= ebiten.KeyNumpad9:
		return string(rune('0' + int(k-ebiten.KeyNumpad0))), true
	}

	switch k {
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return "enter", true
	case ebiten.KeyEscape:
		return "esc", true
	case ebiten.KeyC:
		if ctrl {
			return "ctrl+c", true
		}
	case ebiten.KeyN:
		return "n", true
	case ebiten.KeyR:
		return "r", true
	case ebiten.KeyQ:
		return "q", true
	case ebiten.KeyL:
		if shift {
			return "L", true
		}
	case ebiten.KeySlash:
		if shift {
			return "?", true
		}
	}
	return "", false
}

// pressedKeyNames returns the bound keys that went down this tick
func pressedKeyNames() []string {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	var names []string
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if name, ok := keyName(k, shift, ctrl); ok {
			names = append(names, name)
		}
	}
	return names
}
