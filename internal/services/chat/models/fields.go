package models

const (
	InputField = "input"

	// ErrChatEmpty is the message shown when the input is missing or blank
	ErrChatEmpty = "Chat is empty"
)
