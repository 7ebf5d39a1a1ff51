package domain

import "time"

// InboundMessage is a single chat message delivered to the bot.
type InboundMessage struct {
	ChatID     int64
	Text       string
	ReceivedAt time.Time
}
