package email

import "errors"

var (
	ErrSendFailed     = errors.New("email: failed to send message")
	ErrInvalidMessage = errors.New("email: invalid message")
	ErrInvalidConfig  = errors.New("email: invalid config")
)
