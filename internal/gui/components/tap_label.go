package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// TapLabel is a label that reports taps and shows a pointer cursor.
type TapLabel struct {
	widget.Label

	onTapped func()
}

func NewTapLabel(text string, onTapped func()) *TapLabel {
	label := &TapLabel{onTapped: onTapped}
	label.Text = text
	label.ExtendBaseWidget(label)
	return label
}

func (l *TapLabel) Tapped(*fyne.PointEvent) {
	if l.onTapped != nil {
		l.onTapped()
	}
}

func (l *TapLabel) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}
