package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// CardDisplay shows the acronym in large type with the meaning or prompt below it.
type CardDisplay struct {
	container *fyne.Container
	acronym   *TapLabel
	meaning   *widget.Label
}

// NewCardDisplay calls onAcronymTapped whenever the acronym is clicked.
func NewCardDisplay(onAcronymTapped func()) *CardDisplay {
	cd := &CardDisplay{}
	cd.createComponents(onAcronymTapped)
	cd.buildLayout()
	return cd
}

func (cd *CardDisplay) createComponents(onAcronymTapped func()) {
	cd.acronym = NewTapLabel("", onAcronymTapped)
	cd.acronym.Alignment = fyne.TextAlignCenter
	cd.acronym.Wrapping = fyne.TextWrapWord
	cd.acronym.TextStyle = fyne.TextStyle{Bold: true}
	cd.acronym.SizeName = theme.SizeNameHeadingText

	cd.meaning = widget.NewLabel("")
	cd.meaning.Alignment = fyne.TextAlignCenter
	cd.meaning.Wrapping = fyne.TextWrapWord
	cd.meaning.SizeName = theme.SizeNameSubHeadingText
}

func (cd *CardDisplay) buildLayout() {
	cd.container = container.NewVBox(
		cd.acronym,
		cd.meaning,
	)
}

func (cd *CardDisplay) GetContainer() *fyne.Container {
	return cd.container
}

func (cd *CardDisplay) SetCard(acronym, meaning string) {
	cd.acronym.SetText(acronym)
	cd.meaning.SetText(meaning)
}

func (cd *CardDisplay) Acronym() string {
	return cd.acronym.Text
}

func (cd *CardDisplay) Meaning() string {
	return cd.meaning.Text
}

// AcronymLabel exposes the tappable label so callers can drive it in tests.
func (cd *CardDisplay) AcronymLabel() *TapLabel {
	return cd.acronym
}
