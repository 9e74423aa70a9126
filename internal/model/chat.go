package model

import "time"

type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

type HelpLevel string

const (
	HelpHint     HelpLevel = "hint"
	HelpGuide    HelpLevel = "guide"
	HelpSolution HelpLevel = "solution"
)

func (h HelpLevel) Valid() bool {
	switch h {
	case HelpHint, HelpGuide, HelpSolution:
		return true
	}
	return false
}

type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
