package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const KeyTips = "RIGHT → Next | LEFT → Previous | SPACE → Reveal | Click acronym → Reveal"

// StatusBar shows session progress above the key tips.
type StatusBar struct {
	container     *fyne.Container
	progressLabel *widget.Label
	tipLabel      *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.progressLabel = widget.NewLabel("")
	sb.progressLabel.Alignment = fyne.TextAlignCenter

	sb.tipLabel = widget.NewLabel(KeyTips)
	sb.tipLabel.Alignment = fyne.TextAlignCenter
	sb.tipLabel.Importance = widget.LowImportance
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewVBox(
		sb.progressLabel,
		sb.tipLabel,
	)
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetProgress(progress string) {
	sb.progressLabel.SetText(progress)
}

func (sb *StatusBar) Progress() string {
	return sb.progressLabel.Text
}

func (sb *StatusBar) Tips() string {
	return sb.tipLabel.Text
}
