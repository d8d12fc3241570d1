// Package gui is the Fyne presentation surface for a flashcard session.
//
// Every gesture maps to one controller call followed by a redraw from
// CurrentView. All handlers run on the Fyne event goroutine.
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/prasad1624/acronym-flashcard-generator/internal/cards"
	"github.com/prasad1624/acronym-flashcard-generator/internal/gui/components"
	"github.com/prasad1624/acronym-flashcard-generator/internal/logger"
	"github.com/prasad1624/acronym-flashcard-generator/internal/session"
)

// SessionController is the part of the session state machine the view drives.
type SessionController interface {
	Start(deck cards.Deck, randomize bool) error
	Reveal()
	Next()
	Previous()
	CurrentView() session.View
	SessionID() string
}

type View struct {
	window     fyne.Window
	controller SessionController
	deck       cards.Deck
	logger     logger.Logger
	isShutdown bool

	cardDisplay   *components.CardDisplay
	statusBar     *components.StatusBar
	restartButton *widget.Button
	mainContainer *fyne.Container
}

func NewView(window fyne.Window, controller SessionController, deck cards.Deck, log logger.Logger) *View {
	v := &View{
		window:     window,
		controller: controller,
		deck:       deck,
		logger:     log,
	}

	v.setupComponents()
	v.setupLayout()

	return v
}

func (v *View) setupComponents() {
	v.cardDisplay = components.NewCardDisplay(v.Reveal)
	v.statusBar = components.NewStatusBar()
	v.restartButton = components.NewRestartButton(v.Restart)
}

func (v *View) setupLayout() {
	center := container.NewVBox(
		layout.NewSpacer(),
		v.cardDisplay.GetContainer(),
		container.NewCenter(v.restartButton),
		layout.NewSpacer(),
	)

	v.mainContainer = container.NewBorder(
		nil,
		v.statusBar.GetContainer(),
		nil, nil,
		container.NewPadded(center),
	)
}

// Attach installs the layout and key bindings on the window and draws the
// current state.
func (v *View) Attach() {
	v.window.SetContent(v.mainContainer)
	v.window.Canvas().SetOnTypedKey(v.handleKey)
	v.Refresh()
}

func (v *View) handleKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeySpace:
		v.Reveal()
	case fyne.KeyRight:
		v.Next()
	case fyne.KeyLeft:
		v.Previous()
	}
}

func (v *View) Reveal() {
	v.controller.Reveal()
	v.Refresh()
}

func (v *View) Next() {
	v.controller.Next()
	v.Refresh()
}

func (v *View) Previous() {
	v.controller.Previous()
	v.Refresh()
}

// Restart begins a reshuffled session over the full deck.
func (v *View) Restart() {
	if err := v.controller.Start(v.deck, true); err != nil {
		v.ShowError(err)
		return
	}
	v.logger.Info("GUI", "session restarted", map[string]interface{}{
		"cards":      v.deck.Len(),
		"session_id": v.controller.SessionID(),
	})
	v.Refresh()
}

// Refresh redraws everything from the controller's current view.
func (v *View) Refresh() {
	state := v.controller.CurrentView()

	v.cardDisplay.SetCard(state.DisplayText, state.SubText)
	v.statusBar.SetProgress(state.ProgressText)

	if state.Finished {
		v.restartButton.Show()
	} else {
		v.restartButton.Hide()
	}
}

func (v *View) GetMainContainer() *fyne.Container {
	return v.mainContainer
}

func (v *View) ShowError(err error) {
	v.logger.Error("GUI", err, nil)
	dialog.ShowError(err, v.window)
}

func (v *View) Shutdown() {
	if v.isShutdown {
		return
	}

	v.isShutdown = true
	v.logger.Info("GUI", "shutdown initiated", nil)
}

// ShowFatal shows a blocking error and runs onClosed once it is dismissed.
func ShowFatal(window fyne.Window, err error, onClosed func()) {
	d := dialog.NewError(err, window)
	d.SetOnClosed(onClosed)
	d.Show()
}
