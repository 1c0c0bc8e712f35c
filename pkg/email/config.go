package email

import "fmt"

// Config holds email transport configuration. Postmark tokens are optional
// so development environments can run with the file-based dev sender.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	DevDir               string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

// NewFromConfig returns a Postmark sender when tokens are configured, the
// file-based dev sender otherwise.
func NewFromConfig(cfg Config) (Sender, error) {
	if cfg.PostmarkServerToken != "" || cfg.PostmarkAccountToken != "" {
		return NewPostmarkSender(cfg)
	}
	if cfg.DevDir == "" {
		return nil, fmt.Errorf("%w: EMAIL_DEV_DIR is required without Postmark tokens", ErrInvalidConfig)
	}
	return NewDevSender(cfg.DevDir), nil
}
