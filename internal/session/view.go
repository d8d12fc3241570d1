package session

const (
	RevealPrompt    = "Press SPACE or click to reveal meaning"
	NoMeaningText   = "(No meaning available)"
	FinishedText    = "FINISHED!"
	FinishedSubText = "You have completed all flashcards."
)

// View is everything the presentation surface needs to redraw itself.
type View struct {
	DisplayText  string
	SubText      string
	ProgressText string
	Finished     bool
}

func finishedView() View {
	return View{
		DisplayText: FinishedText,
		SubText:     FinishedSubText,
		Finished:    true,
	}
}
