package practice

// debounceDoneMsg is sent when a highlighted word has held still for
// the debounce window.
type debounceDoneMsg struct {
	Gen int
}

// translationMsg carries a completed quick-translation request.
type translationMsg struct {
	Gen     int
	English string
	Err     error
}

// flashDoneMsg ends the saved/duplicate confirmation flash.
type flashDoneMsg struct {
	Gen int
}

// speakDoneMsg is sent when audio playback finishes.
type speakDoneMsg struct {
	Err error
}
