package model

// MessageRole represents the role of the message sender
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
	MessageRoleSystem    MessageRole = "system"
)

// DefaultGreeting seeds every new conversation on the client. It never
// travels through the completion API; it exists so clients render a
// consistent opening message.
const DefaultGreeting = "Hello! I'm your AI university advisor. Ask me anything about universities, or try:\n\n" +
	"• 'Which universities are best for Computer Science under $50k?'\n" +
	"• 'Compare MIT and Stanford'\n" +
	"• 'Show me universities in Canada with scholarships'"

// ChatMessage represents a single message in a client-held conversation.
// Conversations are append-only and live entirely on the client; the
// full history is replayed to the server on every chat request.
type ChatMessage struct {
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp int64       `json:"timestamp"` // milliseconds since epoch
}

// IsValidRole reports whether the role is one a client may submit.
// System messages are reserved for the advisor service itself.
func (m *ChatMessage) IsValidRole() bool {
	return m.Role == MessageRoleUser || m.Role == MessageRoleAssistant
}
