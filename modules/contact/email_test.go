package contact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northlight-studio/website/modules/contact"
)

func buildConfig() contact.Config {
	return contact.Config{
		FromEmail: "Northlight Contact <system@northlight.studio>",
		ToEmail:   "hello@northlight.studio",
	}
}

func TestBuildMessage_FullRequest(t *testing.T) {
	t.Parallel()

	req, err := validSubmission().Validate()
	require.NoError(t, err)

	msg, err := contact.BuildMessage(req, buildConfig())
	require.NoError(t, err)

	assert.Equal(t, "Northlight Contact <system@northlight.studio>", msg.From)
	assert.Equal(t, "hello@northlight.studio", msg.To)
	assert.Equal(t, "jane@acme.com", msg.ReplyTo)
	assert.Equal(t, "New Inquiry: Jane Smith", msg.Subject)
	assert.Equal(t, "contact-form", msg.Tag)

	assert.Contains(t, msg.BodyHTML, "New Project Inquiry")
	assert.Contains(t, msg.BodyHTML, "Jane Smith")
	assert.Contains(t, msg.BodyHTML, "jane@acme.com")
	assert.Contains(t, msg.BodyHTML, "Acme Industries")
	assert.Contains(t, msg.BodyHTML, "acme.com")
	assert.Contains(t, msg.BodyHTML, "Web Dev")
}

func TestBuildMessage_OmitsAbsentSections(t *testing.T) {
	t.Parallel()

	sub := validSubmission()
	sub.Company = ""
	sub.Website = ""
	sub.Interest = ""
	req, err := sub.Validate()
	require.NoError(t, err)

	msg, err := contact.BuildMessage(req, buildConfig())
	require.NoError(t, err)

	assert.NotContains(t, msg.BodyHTML, "Company")
	assert.NotContains(t, msg.BodyHTML, "Website")
	assert.NotContains(t, msg.BodyHTML, "Interest")
	assert.Contains(t, msg.BodyHTML, "Message")
}

func TestBuildMessage_EscapesUserContent(t *testing.T) {
	t.Parallel()

	sub := validSubmission()
	sub.Name = `Jane <script>alert("x")</script>`
	sub.Message = "Hello <b>there</b>, this is long enough."
	req, err := sub.Validate()
	require.NoError(t, err)

	msg, err := contact.BuildMessage(req, buildConfig())
	require.NoError(t, err)

	assert.NotContains(t, msg.BodyHTML, "<script>")
	assert.Contains(t, msg.BodyHTML, "&lt;script&gt;")
	assert.NotContains(t, msg.BodyHTML, "<b>there</b>")

	// The subject is plain text and keeps the raw name.
	assert.Equal(t, `New Inquiry: Jane <script>alert("x")</script>`, msg.Subject)
}
