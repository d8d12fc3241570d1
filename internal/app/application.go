package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/prasad1624/acronym-flashcard-generator/internal/cards"
	"github.com/prasad1624/acronym-flashcard-generator/internal/config"
	"github.com/prasad1624/acronym-flashcard-generator/internal/gui"
	"github.com/prasad1624/acronym-flashcard-generator/internal/logger"
	"github.com/prasad1624/acronym-flashcard-generator/internal/session"
	"github.com/prasad1624/acronym-flashcard-generator/internal/shutdown"
)

const (
	AppName    = "Acronym Flashcards"
	AppID      = "com.acronymflashcards.viewer"
	AppVersion = "1.0.0"

	errorWindowWidth  = 480
	errorWindowHeight = 200
)

type Application struct {
	fyneApp  fyne.App
	window   fyne.Window
	config   *config.Config
	logger   logger.Logger
	shutdown *shutdown.Manager

	deck       cards.Deck
	controller *session.Controller
	view       *gui.View

	// startupErr is set when the deck could not be loaded; Run then only
	// shows the error and exits.
	startupErr error
}

// New builds the application on the real Fyne driver.
func New(cfg *config.Config, log logger.Logger) *Application {
	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	return NewWithFyne(fyneapp.NewWithID(AppID), cfg, log)
}

// NewWithFyne builds the application on an existing Fyne app, such as the
// test driver.
func NewWithFyne(fyneApp fyne.App, cfg *config.Config, log logger.Logger) *Application {
	window := fyneApp.NewWindow(cfg.Window.Title)
	window.SetMaster()

	application := &Application{
		fyneApp:  fyneApp,
		window:   window,
		config:   cfg,
		logger:   log,
		shutdown: shutdown.NewManager(log, shutdown.DefaultComponentTimeout),
	}

	deck, err := loadDeck(cfg.Deck.Path)
	if err != nil {
		application.startupErr = err
		return application
	}

	controller := session.NewController(session.WithLogger(log))
	if err := controller.Start(deck, cfg.Deck.Shuffle); err != nil {
		application.startupErr = err
		return application
	}

	application.deck = deck
	application.controller = controller
	application.view = gui.NewView(window, controller, deck, log)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version": AppVersion,
		"deck":    cfg.Deck.Path,
		"cards":   deck.Len(),
		"shuffle": cfg.Deck.Shuffle,
	})
	return application
}

// loadDeck treats an empty deck as fatal, like a missing file.
func loadDeck(path string) (cards.Deck, error) {
	deck, err := cards.Load(path)
	if err != nil {
		return cards.Deck{}, err
	}
	if deck.IsEmpty() {
		return cards.Deck{}, fmt.Errorf("%w in %s", cards.ErrEmptyDeck, path)
	}
	return deck, nil
}

// StartupError reports why the application cannot enter a session, if it cannot.
func (a *Application) StartupError() error {
	return a.startupErr
}

// Run shows the window and blocks until the application quits. It returns
// the startup error after the user dismisses it.
func (a *Application) Run() error {
	a.prepare()
	a.window.ShowAndRun()
	a.shutdown.Shutdown()

	return a.startupErr
}

func (a *Application) prepare() {
	if a.startupErr != nil {
		a.prepareFatal()
		return
	}

	a.registerShutdown()

	a.window.Resize(fyne.NewSize(a.config.Window.Width, a.config.Window.Height))
	a.window.CenterOnScreen()
	a.window.SetFullScreen(a.config.Window.Fullscreen)
	a.view.Attach()

	a.logger.Info("Application", "GUI displayed", map[string]interface{}{
		"fullscreen": a.config.Window.Fullscreen,
	})
}

func (a *Application) prepareFatal() {
	a.logger.Error("Application", a.startupErr, map[string]interface{}{
		"deck": a.config.Deck.Path,
	})

	a.window.Resize(fyne.NewSize(errorWindowWidth, errorWindowHeight))
	a.window.CenterOnScreen()
	gui.ShowFatal(a.window, a.startupErr, a.quit)
}
