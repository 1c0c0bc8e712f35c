package contact

import (
	"bytes"
	"html/template"

	"github.com/northlight-studio/website/pkg/email"
)

// Notification document layout. User-supplied text flows through
// html/template and is escaped; the message block preserves line breaks.
const contactEmailTemplate = `<!DOCTYPE html>
<html>
  <body style="background:#ffffff;font-family:sans-serif;margin:0 auto;">
    <div style="border:1px solid #eaeaea;border-radius:4px;margin:40px auto;padding:20px;max-width:465px;">
      <h1 style="color:#000;font-size:24px;font-weight:normal;text-align:center;margin:30px 0;">New Project Inquiry</h1>
      <p style="color:#000;font-size:14px;line-height:24px;">You have received a new lead via the website contact form.</p>
      <div style="background:#f9fafb;border:1px solid #f3f4f6;border-radius:6px;padding:16px;margin-top:16px;">
        <p style="color:#6b7280;font-size:12px;text-transform:uppercase;letter-spacing:.05em;font-weight:600;margin:0 0 4px;">Sender Details</p>
        <p style="color:#000;font-size:14px;font-weight:500;margin:0;">{{.Name}}</p>
        <p style="color:#000;font-size:14px;margin:0 0 16px;">{{.Email}}</p>
{{- if .Company}}
        <p style="color:#6b7280;font-size:12px;text-transform:uppercase;letter-spacing:.05em;font-weight:600;margin:0 0 4px;">Company</p>
        <p style="color:#000;font-size:14px;font-weight:500;margin:0 0 16px;">{{.Company}}</p>
{{- end}}
{{- if .Website}}
        <p style="color:#6b7280;font-size:12px;text-transform:uppercase;letter-spacing:.05em;font-weight:600;margin:0 0 4px;">Website</p>
        <p style="color:#000;font-size:14px;font-weight:500;margin:0 0 16px;">{{.Website}}</p>
{{- end}}
{{- if .Interest}}
        <p style="color:#6b7280;font-size:12px;text-transform:uppercase;letter-spacing:.05em;font-weight:600;margin:0 0 4px;">Interest</p>
        <p style="color:#000;font-size:14px;font-weight:500;margin:0 0 16px;">{{.Interest}}</p>
{{- end}}
      </div>
      <hr style="border:1px solid #eaeaea;margin:26px 0;" />
      <p style="color:#6b7280;font-size:12px;text-transform:uppercase;letter-spacing:.05em;font-weight:600;margin:0 0 4px;">Message</p>
      <p style="color:#000;font-size:14px;line-height:24px;white-space:pre-wrap;">{{.Message}}</p>
    </div>
  </body>
</html>
`

var contactEmailTmpl = template.Must(template.New("contact_email").Parse(contactEmailTemplate))

// BuildMessage assembles the notification email for a validated request.
// Pure transform: no transport involved. Sections for company, website, and
// interest appear only when the submitter provided them. Reply-To is the
// submitter's address so a plain reply reaches them directly.
func BuildMessage(req Request, cfg Config) (email.Message, error) {
	var buf bytes.Buffer
	if err := contactEmailTmpl.Execute(&buf, req); err != nil {
		return email.Message{}, err
	}

	return email.Message{
		From:     cfg.FromEmail,
		To:       cfg.ToEmail,
		ReplyTo:  req.Email,
		Subject:  "New Inquiry: " + req.Name,
		BodyHTML: buf.String(),
		Tag:      "contact-form",
	}, nil
}
