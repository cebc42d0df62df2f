package models

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one turn of a conversation.
type ChatMessage struct {
	Role    Role   `json:"role" example:"user"`
	Content string `json:"content" example:"How do I start an emergency fund?"`
}
