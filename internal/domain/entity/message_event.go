package entity

// Bot commands understood by the update handler
const (
	CommandStart = "start"
	CommandHelp  = "help"
	CommandScore = "score"
)

// MessageEvent is a platform-neutral view of an inbound chat message
type MessageEvent struct {
	UpdateID          int
	ChatID            int64
	MessageID         int
	SenderID          int64
	SenderDisplayName string
	Text              string
	Command           string // Command name without the leading slash, empty for plain text
}

// IsCommand reports whether the message starts with a bot command
func (e MessageEvent) IsCommand() bool {
	return e.Command != ""
}

// DisplayName picks the name shown in replies: username first, then first name
func DisplayName(username, firstName string) string {
	if username != "" {
		return username
	}
	return firstName
}

// Reply is a message the bot sends back to a chat
type Reply struct {
	ChatID           int64
	ReplyToMessageID int
	Text             string
}

// ReplyTo builds a reply addressed to the event's chat and message
func (e MessageEvent) ReplyTo(text string) Reply {
	return Reply{
		ChatID:           e.ChatID,
		ReplyToMessageID: e.MessageID,
		Text:             text,
	}
}
