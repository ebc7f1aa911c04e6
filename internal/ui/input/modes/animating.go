package modes

import (
	"binsearchviz/internal/ui/input/keys"
	"binsearchviz/internal/ui/input/types"
)

// AnimatingMode is active while a search run plays. Everything except
// quit is consumed and dropped.
type AnimatingMode struct {
	keys keys.KeyMap
}

func NewAnimatingMode(km keys.KeyMap) *AnimatingMode {
	return &AnimatingMode{keys: km}
}

func (m *AnimatingMode) Name() string {
	return "animating"
}

func (m *AnimatingMode) HandleKey(key string, ctx types.Context) ([]types.Action, bool) {
	if keys.Matches(key, m.keys.Quit) {
		return []types.Action{types.QuitAction{}}, true
	}
	return nil, true
}
