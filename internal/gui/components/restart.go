package components

import "fyne.io/fyne/v2/widget"

// NewRestartButton returns the RESTART button, hidden until a session finishes.
func NewRestartButton(onRestart func()) *widget.Button {
	button := widget.NewButton("RESTART", onRestart)
	button.Importance = widget.SuccessImportance
	button.Hide()
	return button
}
