package model

// Role represents the role of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is a role a client may submit.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message is one turn of the user/assistant conversation.
// Timestamp is epoch milliseconds and non-decreasing within a session log.
type Message struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// ChatRequest is the body of POST /api/chat: prior turns plus the new utterance.
type ChatRequest struct {
	Messages    []Message `json:"messages"`
	UserMessage string    `json:"userMessage"`
}

// ChatResponse is the reply text and, when synthesis succeeded, a data-URI
// with base64 mp3 audio.
type ChatResponse struct {
	Message  string `json:"message"`
	AudioURL string `json:"audioUrl,omitempty"`
}

// TranscriptionResponse is the body returned by POST /api/transcribe.
type TranscriptionResponse struct {
	Text string `json:"text"`
}

// TTSRequest is the body of POST /api/tts. Voice is optional.
type TTSRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice,omitempty"`
}

// ConfigResponse reports whether the AI-backed endpoints are usable.
type ConfigResponse struct {
	OpenAIConfigured bool `json:"openaiConfigured"`
}
