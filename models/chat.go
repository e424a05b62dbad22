package models

import "time"

// Sender distinguishes the two participants of a chat transcript.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is a single entry of the append-only chat transcript. Messages
// are never mutated after creation; the transcript lives only for the session.
type ChatMessage struct {
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	Tool      Tool      `json:"tool,omitempty"`
}

// ClassifyResult is the output of the intent router: the canned response text
// and the tool the message was routed to (ToolNone for purely informational
// answers and the fallback).
type ClassifyResult struct {
	Response string `json:"response"`
	Tool     Tool   `json:"tool,omitempty"`
}
