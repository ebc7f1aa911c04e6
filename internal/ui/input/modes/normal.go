package modes

import (
	"binsearchviz/internal/ui/input/keys"
	"binsearchviz/internal/ui/input/types"
)

type NormalMode struct {
	keys keys.KeyMap
}

func NewNormalMode(km keys.KeyMap) *NormalMode {
	return &NormalMode{keys: km}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) HandleKey(key string, ctx types.Context) ([]types.Action, bool) {
	switch {
	case keys.Matches(key, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case keys.Matches(key, m.keys.Digit):
		return []types.Action{types.DigitAction{Digit: int(key[0] - '0')}}, true

	case keys.Matches(key, m.keys.Confirm):
		// Enter without a key is swallowed
		if ctx.SearchKey() == 0 {
			return nil, true
		}
		return []types.Action{types.ConfirmSearchAction{}}, true

	case keys.Matches(key, m.keys.ResetSearch):
		return []types.Action{types.ResetSearchAction{}}, true

	case keys.Matches(key, m.keys.NewArray):
		return []types.Action{types.ResetSearchAction{}, types.NewArrayAction{}}, true

	case keys.Matches(key, m.keys.History):
		return []types.Action{types.OpenHistoryAction{}}, true

	case keys.Matches(key, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
