// Package email defines the outbound mail transport boundary: a narrow
// Sender interface over fully prepared messages, with a Postmark-backed
// implementation for production and a file-writing implementation for
// development.
package email
