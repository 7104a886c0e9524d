package nav

// Messages screens send to the application shell. The shell applies them to
// the Machine and swaps screens to match the resulting state.

// StartMsg leaves the splash screen.
type StartMsg struct{}

// SubmitNameMsg carries the name typed at the gate.
type SubmitNameMsg struct{ Name string }

// EditNameMsg opens the name gate from the map.
type EditNameMsg struct{}

// SelectStageMsg asks to open a stage.
type SelectStageMsg struct{ StageID int }

// StageCompleteMsg reports an engine's final rating.
type StageCompleteMsg struct {
	SessionID string
	Stars     int
}

// ReturnToMapMsg fires after the completion display delay.
type ReturnToMapMsg struct{ SessionID string }

// BackMsg leaves the current stage or cancels a name edit. Pending carries
// the rating of a finished stage so it is credited even when the back request
// overtakes the StageCompleteMsg.
type BackMsg struct {
	Pending *StageCompleteMsg
}

// StoreChangedMsg reports that another process rewrote a stored key.
type StoreChangedMsg struct{ Key string }
