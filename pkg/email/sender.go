package email

import (
	"context"
	"fmt"
)

// Sender delivers a single email message. Implementations own retries,
// backoff, and provider-specific error codes; callers only see success or a
// wrapped ErrSendFailed.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a fully prepared outbound email.
type Message struct {
	From     string // sender address, usually a verified domain address
	To       string // recipient address
	ReplyTo  string // optional reply-to address
	Subject  string
	BodyHTML string
	Tag      string // optional provider-side tag for message streams
}

// Validate checks the fields required for any transport to deliver the
// message.
func (m Message) Validate() error {
	if m.From == "" {
		return fmt.Errorf("%w: From is required", ErrInvalidMessage)
	}
	if m.To == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidMessage)
	}
	if m.Subject == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidMessage)
	}
	if m.BodyHTML == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidMessage)
	}
	return nil
}
