package models

const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// ChatMessage is one turn in a session transcript. Transcripts are
// append-only; error replies are appended with IsError set, never
// surfaced as exceptions.
type ChatMessage struct {
	Role    string `json:"role"`
	Text    string `json:"text"`
	IsError bool   `json:"isError,omitempty"`
}
