package ai

// Roles of chat messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ContentPartType distinguishes the kinds of message parts.
type ContentPartType string

const (
	ContentPartTypeText  ContentPartType = "text"
	ContentPartTypeImage ContentPartType = "image"
)

// ContentPart is one element of a multi-part message. For text parts Text is
// set; for image parts ImageURL holds an http URL or a data URI.
type ContentPart struct {
	Type     ContentPartType `json:"type"`
	Text     string          `json:"text,omitempty"`
	ImageURL string          `json:"image_url,omitempty"`
}

// Message represents a chat message. When Parts is non-empty it takes
// precedence over Content.
type Message struct {
	Role    string        `json:"role"`
	Content string        `json:"content,omitempty"`
	Parts   []ContentPart `json:"parts,omitempty"`
}

// SystemMessage creates a system message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage creates a plain-text user message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage creates an assistant message.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// ImageUserMessage creates a two-part user message: a text instruction
// followed by an image reference.
func ImageUserMessage(text, imageURL string) Message {
	return Message{
		Role: RoleUser,
		Parts: []ContentPart{
			{Type: ContentPartTypeText, Text: text},
			{Type: ContentPartTypeImage, ImageURL: imageURL},
		},
	}
}

// PlainText returns the textual content of the message. For multi-part
// messages only the text parts contribute.
func (m Message) PlainText() string {
	if len(m.Parts) == 0 {
		return m.Content
	}
	text := ""
	for _, p := range m.Parts {
		if p.Type == ContentPartTypeText {
			text += p.Text
		}
	}
	return text
}
