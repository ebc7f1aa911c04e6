package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"binsearchviz/internal/ui/input/keys"
	"binsearchviz/internal/ui/input/modes"
	"binsearchviz/internal/ui/input/types"
)

// Handler routes key names to actions through the mode matching the
// current search state.
type Handler struct {
	keys  keys.KeyMap
	modes map[types.Mode]types.ModeHandler
}

func New(km keys.KeyMap) *Handler {
	h := &Handler{
		keys:  km,
		modes: make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode(km)
	h.modes[types.ModeAnimating] = modes.NewAnimatingMode(km)

	return h
}

// HandleKey routes a key name. Unrecognized keys yield no actions.
func (h *Handler) HandleKey(key string, ctx types.Context) []types.Action {
	handler := h.modes[h.CurrentMode(ctx)]
	if handler == nil {
		return nil
	}
	actions, _ := handler.HandleKey(key, ctx)
	return actions
}

// HandleKeyMsg routes a bubbletea key message
func (h *Handler) HandleKeyMsg(msg tea.KeyMsg, ctx types.Context) []types.Action {
	return h.HandleKey(msg.String(), ctx)
}

// CurrentMode derives the mode from the search state
func (h *Handler) CurrentMode(ctx types.Context) types.Mode {
	if ctx.Searching() {
		return types.ModeAnimating
	}
	return types.ModeNormal
}

// Keys returns the bindings, for help rendering
func (h *Handler) Keys() keys.KeyMap {
	return h.keys
}

// RegisterMode replaces the handler for a mode
func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}
