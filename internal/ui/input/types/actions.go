package types

// DigitAction appends a digit to the search key
type DigitAction struct {
	Digit int
}

func (a DigitAction) Type() string { return "digit" }

// ConfirmSearchAction starts a binary search for the typed key
type ConfirmSearchAction struct{}

func (a ConfirmSearchAction) Type() string { return "confirm_search" }

// ResetSearchAction clears the key, outcome and highlights
type ResetSearchAction struct{}

func (a ResetSearchAction) Type() string { return "reset_search" }

// NewArrayAction generates and sorts a new sequence
type NewArrayAction struct{}

func (a NewArrayAction) Type() string { return "new_array" }

// UI actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenHistoryAction struct{}

func (a OpenHistoryAction) Type() string { return "open_history" }

// QuitAction terminates the main loop
type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
