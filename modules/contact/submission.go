package contact

import (
	"strings"

	"github.com/northlight-studio/website/pkg/validator"
)

// Submission is the raw, untrusted contact form payload. Fields may be
// missing, malformed, or over length; nothing is guaranteed until Validate
// succeeds. The "address" field is a decoy that is hidden from humans - bots
// fill it in because the name looks real.
type Submission struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Company  string `form:"company"`
	Website  string `form:"website"`
	Interest string `form:"interest"`
	Message  string `form:"message"`
	Address  string `form:"address"`
}

// Request is a validated, normalized contact request. It only exists as the
// output of a successful Validate call. Optional fields hold "" when the
// submitter left them out.
type Request struct {
	Name     string
	Email    string
	Company  string
	Website  string
	Interest string
	Message  string
	Honeypot string
}

// Interests returns the fixed set of service interests the form offers.
func Interests() []string {
	return []string{"Web Dev", "Design", "Strategy"}
}

// User-facing validation copy, mirrored by the form's client-side hints.
const (
	msgNameTooShort    = "Name must be at least 2 characters."
	msgNameTooLong     = "Name must be fewer than 50 characters."
	msgEmailInvalid    = "Please enter a valid email address."
	msgCompanyTooLong  = "Company name is too long."
	msgWebsiteTooLong  = "Website is too long."
	msgWebsiteInvalid  = "Please enter a valid website (e.g. company.com)."
	msgInterestInvalid = "Please choose Web Dev, Design, or Strategy."
	msgMessageTooShort = "Please share a bit more detail about your project."
	msgMessageTooLong  = "Message is too long."
)

// Validate checks the submission against the contact schema and returns the
// normalized request. On failure the returned error carries
// validator.ValidationErrors with every violated rule per field, in rule
// order. It never panics, whatever shape the input takes.
//
// Optional fields (company, website, interest) are trimmed first; an empty
// or whitespace-only value counts as omitted and skips that field's rules
// entirely, so empty optional inputs never produce spurious errors.
func (s Submission) Validate() (Request, error) {
	company := strings.TrimSpace(s.Company)
	website := strings.TrimSpace(s.Website)
	interest := strings.TrimSpace(s.Interest)

	rules := []validator.Rule{
		validator.WithMessage(validator.MinLenString("name", s.Name, 2), msgNameTooShort),
		validator.WithMessage(validator.MaxLenString("name", s.Name, 50), msgNameTooLong),
		validator.WithMessage(validator.ValidEmail("email", s.Email), msgEmailInvalid),
	}

	if company != "" {
		rules = append(rules,
			validator.WithMessage(validator.MaxLenString("company", company, 100), msgCompanyTooLong),
		)
	}
	if website != "" {
		rules = append(rules,
			validator.WithMessage(validator.MaxLenString("website", website, 200), msgWebsiteTooLong),
			validator.WithMessage(validator.HostLike("website", website), msgWebsiteInvalid),
		)
	}
	if interest != "" {
		rules = append(rules,
			validator.WithMessage(validator.InListString("interest", interest, Interests()), msgInterestInvalid),
		)
	}

	rules = append(rules,
		validator.WithMessage(validator.MinLenString("message", s.Message, 10), msgMessageTooShort),
		validator.WithMessage(validator.MaxLenString("message", s.Message, 1000), msgMessageTooLong),
	)

	if err := validator.Apply(rules...); err != nil {
		return Request{}, err
	}

	return Request{
		Name:     s.Name,
		Email:    s.Email,
		Company:  company,
		Website:  website,
		Interest: interest,
		Message:  s.Message,
		Honeypot: strings.TrimSpace(s.Address),
	}, nil
}

// AsSubmission converts a validated request back into submission form.
// Re-validating the result yields an identical request: normalization is
// idempotent.
func (r Request) AsSubmission() Submission {
	return Submission{
		Name:     r.Name,
		Email:    r.Email,
		Company:  r.Company,
		Website:  r.Website,
		Interest: r.Interest,
		Message:  r.Message,
		Address:  r.Honeypot,
	}
}
