package stage

// feedbackDoneMsg ends the feedback pause for a session. Messages carrying a
// session id other than the screen's are stale and ignored.
type feedbackDoneMsg struct {
	session string
}
