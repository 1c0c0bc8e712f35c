package contact

import (
	"context"
	"io"
	"log/slog"

	"github.com/northlight-studio/website/pkg/email"
	"github.com/northlight-studio/website/pkg/logger"
	"github.com/northlight-studio/website/pkg/validator"
)

// Generic failure copy. Transport and internal causes are logged server-side
// and never echoed to the submitter.
const (
	msgSendFailed = "Failed to send email."
	msgUnexpected = "An unexpected error occurred."
)

// Config holds the contact pipeline's mail addressing.
type Config struct {
	FromEmail string `env:"CONTACT_FROM" envDefault:"Northlight Contact <system@northlight.studio>"`
	ToEmail   string `env:"CONTACT_EMAIL,required"`
}

// Service is the submission handler: it validates raw submissions, filters
// spam, and dispatches the notification email. Stateless; each Submit call
// is an independent best-effort attempt with no retries.
type Service struct {
	cfg    Config
	sender email.Sender
	log    *slog.Logger
}

// NewService creates a contact submission service.
func NewService(cfg Config, sender email.Sender, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{cfg: cfg, sender: sender, log: log.With(logger.Component("contact"))}
}

// Submit runs one submission through the pipeline and returns its Result.
// No error ever escapes: validation failures become field errors, transport
// failures and panics during dispatch become a generic failure message.
//
// A non-empty honeypot value reports success to the caller while skipping
// the send entirely, so automated senders cannot tell rejection from
// delivery. Do not "fix" this by returning an error.
func (s *Service) Submit(ctx context.Context, sub Submission) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			s.log.ErrorContext(ctx, "contact submission panicked", slog.Any("panic", rec))
			res = Rejected(msgUnexpected)
		}
	}()

	req, err := sub.Validate()
	if err != nil {
		if verrs := validator.ExtractValidationErrors(err); verrs != nil {
			return Invalid(verrs)
		}
		s.log.ErrorContext(ctx, "contact validation failed unexpectedly", logger.Error(err))
		return Rejected(msgUnexpected)
	}

	if req.Honeypot != "" {
		s.log.InfoContext(ctx, "honeypot triggered, silently ignoring submission")
		return Accepted()
	}

	msg, err := BuildMessage(req, s.cfg)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to assemble contact email", logger.Error(err))
		return Rejected(msgUnexpected)
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		s.log.ErrorContext(ctx, "failed to send contact email", logger.Error(err))
		return Rejected(msgSendFailed)
	}

	return Accepted()
}
