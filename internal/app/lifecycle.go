package app

import "fyne.io/fyne/v2"

// registerShutdown queues component shutdown for after the UI loop exits and
// turns SIGINT/SIGTERM into a quit on the UI goroutine.
func (a *Application) registerShutdown() {
	a.shutdown.Register("session", a.controller)
	a.shutdown.Register("gui", a.view)

	a.shutdown.Listen(func() {
		fyne.Do(a.quit)
	})
}

func (a *Application) quit() {
	a.logger.Info("Lifecycle", "quit requested", nil)
	a.fyneApp.Quit()
}
