package telegram

import (
	"time"

	"newsdesk/internal/domain"
)

// Update is the payload Telegram posts to the webhook.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int64  `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Date      int64  `json:"date"`
	Text      string `json:"text"`
}

type Chat struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	Username string `json:"username"`
}

// Inbound converts the update into a domain message.
// ok is false when the update carries no text message or no chat to answer.
func (u Update) Inbound() (msg domain.InboundMessage, ok bool) {
	if u.Message == nil || u.Message.Text == "" || u.Message.Chat.ID == 0 {
		return domain.InboundMessage{}, false
	}

	receivedAt := time.Now()
	if u.Message.Date > 0 {
		receivedAt = time.Unix(u.Message.Date, 0)
	}

	return domain.InboundMessage{
		ChatID:     u.Message.Chat.ID,
		Text:       u.Message.Text,
		ReceivedAt: receivedAt,
	}, true
}

type sendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type setWebhookRequest struct {
	URL            string   `json:"url"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}

// apiResponse is the envelope every Bot API method answers with.
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}
