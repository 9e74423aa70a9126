package llm

import "adaptive_tutor_backend/internal/schema"

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one prior message of a chat-style exchange.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Request is built fresh for every generation call and never persisted.
type Request struct {
	// Task labels the request in logs and metrics, e.g. "learning_path".
	Task              string
	Prompt            string
	SystemInstruction string
	// Schema is nil for plain-text generation.
	Schema      *schema.Node
	Temperature float32
	History     []Turn
}
