package contact_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northlight-studio/website/modules/contact"
	"github.com/northlight-studio/website/pkg/email"
)

// spySender records every message it is asked to deliver.
type spySender struct {
	sent []email.Message
	err  error
	fn   func(email.Message) error
}

func (s *spySender) Send(_ context.Context, msg email.Message) error {
	if s.fn != nil {
		return s.fn(msg)
	}
	s.sent = append(s.sent, msg)
	return s.err
}

func newService(t *testing.T, sender email.Sender) *contact.Service {
	t.Helper()
	cfg := contact.Config{
		FromEmail: "Northlight Contact <system@northlight.studio>",
		ToEmail:   "hello@northlight.studio",
	}
	return contact.NewService(cfg, sender, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestService_Submit_Delivered(t *testing.T) {
	t.Parallel()

	spy := &spySender{}
	svc := newService(t, spy)

	res := svc.Submit(context.Background(), validSubmission())

	assert.True(t, res.OK)
	assert.Empty(t, res.Err)
	assert.False(t, res.HasFieldErrors())

	require.Len(t, spy.sent, 1)
	msg := spy.sent[0]
	assert.Equal(t, "hello@northlight.studio", msg.To)
	assert.Equal(t, "jane@acme.com", msg.ReplyTo)
	assert.Contains(t, msg.Subject, "Jane Smith")
}

func TestService_Submit_RejectedInvalid(t *testing.T) {
	t.Parallel()

	spy := &spySender{}
	svc := newService(t, spy)

	res := svc.Submit(context.Background(), contact.Submission{Name: "A"})

	assert.False(t, res.OK)
	assert.True(t, res.HasFieldErrors())
	assert.Empty(t, res.Err)
	assert.NotEmpty(t, res.FieldError("name"))

	// Validation failures must never reach the transport.
	assert.Empty(t, spy.sent)
}

func TestService_Submit_HoneypotSilentAccept(t *testing.T) {
	t.Parallel()

	spy := &spySender{}
	svc := newService(t, spy)

	sub := validSubmission()
	sub.Address = "123 Bot Street"
	res := svc.Submit(context.Background(), sub)

	// The sender sees plain success; delivery is skipped entirely.
	assert.True(t, res.OK)
	assert.Empty(t, res.Err)
	assert.False(t, res.HasFieldErrors())
	assert.Empty(t, spy.sent)
}

func TestService_Submit_HoneypotWhitespaceIsNotSpam(t *testing.T) {
	t.Parallel()

	spy := &spySender{}
	svc := newService(t, spy)

	sub := validSubmission()
	sub.Address = "   "
	res := svc.Submit(context.Background(), sub)

	assert.True(t, res.OK)
	assert.Len(t, spy.sent, 1)
}

func TestService_Submit_RejectedTransport(t *testing.T) {
	t.Parallel()

	spy := &spySender{err: errors.New("postmark error: 406 - inactive recipient")}
	svc := newService(t, spy)

	res := svc.Submit(context.Background(), validSubmission())

	assert.False(t, res.OK)
	assert.Equal(t, "Failed to send email.", res.Err)
	assert.False(t, res.HasFieldErrors())
	// Provider detail stays out of the user-facing message.
	assert.NotContains(t, res.Err, "postmark")
}

func TestService_Submit_RejectedUnexpected(t *testing.T) {
	t.Parallel()

	spy := &spySender{fn: func(email.Message) error { panic("transport blew up") }}
	svc := newService(t, spy)

	res := svc.Submit(context.Background(), validSubmission())

	assert.False(t, res.OK)
	assert.Equal(t, "An unexpected error occurred.", res.Err)
	assert.False(t, res.HasFieldErrors())
}

func TestService_Submit_NoRetries(t *testing.T) {
	t.Parallel()

	calls := 0
	spy := &spySender{fn: func(email.Message) error {
		calls++
		return errors.New("down")
	}}
	svc := newService(t, spy)

	_ = svc.Submit(context.Background(), validSubmission())
	assert.Equal(t, 1, calls)
}
