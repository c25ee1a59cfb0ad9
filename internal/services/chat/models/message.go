package models

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// ChatMessage is a display-only transcript entry
type ChatMessage struct {
	Role    Role   `json:"role"`
	Message string `json:"message"`
}
