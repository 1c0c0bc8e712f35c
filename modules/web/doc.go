// Package web serves the studio's public site: the marketing pages, the
// blog and work sections backed by the content repository, and the contact
// form backed by the contact service. Pages are rendered server-side from
// embedded html/template files and styled by an embedded stylesheet.
package web
