// Package clientip extracts the originating client IP from an HTTP request,
// honoring common CDN and reverse proxy headers before falling back to the
// socket address.
package clientip
