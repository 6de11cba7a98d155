package ports

import (
	"context"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/roster"
)

// Message is a rendered notification ready for delivery. Text is always
// populated; HTML is optional and delivery channels that cannot carry it
// fall back to Text.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

// Recipient identifies where a message goes.
type Recipient struct {
	Name  string
	Email string
}

// Renderer turns one giver/receiver pairing into a deliverable message.
// Rendering happens for the whole draw before anything is sent, so a
// template failure aborts the run with zero deliveries.
type Renderer interface {
	Render(giver, receiver roster.Participant) (Message, error)
}

// Notifier delivers a rendered message to a single recipient.
type Notifier interface {
	Send(ctx context.Context, to Recipient, msg Message) error
}
