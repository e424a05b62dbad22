package tui

// botRepliedMsg delivers the assistant's answer for the message in flight.
// password carries a freshly generated password when the reply produced one.
type botRepliedMsg struct {
	reply    string
	password string
	err      error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
