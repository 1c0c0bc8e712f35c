package web

import (
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/northlight-studio/website/modules/contact"
	"github.com/northlight-studio/website/modules/content"
	"github.com/northlight-studio/website/pkg/binder"
	"github.com/northlight-studio/website/pkg/logger"
)

// Handler serves the site's pages.
type Handler struct {
	repo    *content.Repository
	contact *contact.Service
	pages   map[string]*template.Template
	log     *slog.Logger
}

// NewHandler creates the page handler. It fails when any template cannot be
// parsed.
func NewHandler(repo *content.Repository, contactSvc *contact.Service, log *slog.Logger) (*Handler, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	pages, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Handler{
		repo:    repo,
		contact: contactSvc,
		pages:   pages,
		log:     log.With(logger.Component("web")),
	}, nil
}

// page carries the data every template can rely on, plus one page-specific
// payload.
type page struct {
	Title       string
	Description string
	ActiveNav   string
	Data        any
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "home", page{
		Title:       "Northlight Studio",
		Description: "We design and build fast, accessible marketing sites and digital products.",
		ActiveNav:   "home",
		Data: struct {
			Work  []*content.Document
			Posts []*content.Document
		}{
			Work:  firstN(h.repo.All(content.KindWork), 3),
			Posts: firstN(h.repo.All(content.KindBlog), 3),
		},
	})
}

func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "about", page{
		Title:       "About",
		Description: "Who we are and how we work.",
		ActiveNav:   "about",
	})
}

func (h *Handler) workIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "work_index", page{
		Title:       "Work",
		Description: "Selected projects and case studies.",
		ActiveNav:   "work",
		Data:        h.repo.All(content.KindWork),
	})
}

func (h *Handler) workItem(w http.ResponseWriter, r *http.Request) {
	doc, err := h.repo.Get(content.KindWork, chi.URLParam(r, "slug"))
	if err != nil {
		h.notFound(w, r)
		return
	}
	h.render(w, r, http.StatusOK, "work_item", page{
		Title:       doc.Title,
		Description: doc.Description,
		ActiveNav:   "work",
		Data:        doc,
	})
}

func (h *Handler) blogIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "blog_index", page{
		Title:       "Blog",
		Description: "Insights, tutorials, and thoughts on web development, design, and technology.",
		ActiveNav:   "blog",
		Data:        h.repo.All(content.KindBlog),
	})
}

func (h *Handler) blogPost(w http.ResponseWriter, r *http.Request) {
	doc, err := h.repo.Get(content.KindBlog, chi.URLParam(r, "slug"))
	if err != nil {
		h.notFound(w, r)
		return
	}
	h.render(w, r, http.StatusOK, "blog_post", page{
		Title:       doc.Title,
		Description: doc.Description,
		ActiveNav:   "blog",
		Data:        doc,
	})
}

// contactPage is the form state handed to the contact template: the
// submitted values (so the form re-renders what the visitor typed), the
// interest choices, and the submission result when one exists.
type contactPage struct {
	Form      contact.Submission
	Interests []string
	Result    *contact.Result
}

// Succeeded reports whether the last attempt was accepted.
func (p contactPage) Succeeded() bool {
	return p.Result != nil && p.Result.OK
}

// GenericError returns the banner message for non-field failures, or "".
func (p contactPage) GenericError() string {
	if p.Result != nil && !p.Result.OK && !p.Result.HasFieldErrors() {
		return p.Result.Err
	}
	return ""
}

// FieldError returns the first validation message for a field, or "".
func (p contactPage) FieldError(field string) string {
	if p.Result == nil {
		return ""
	}
	return p.Result.FieldError(field)
}

func (h *Handler) contactForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "contact", page{
		Title:       "Contact",
		Description: "Tell us about your project.",
		ActiveNav:   "contact",
		Data:        contactPage{Interests: contact.Interests()},
	})
}

func (h *Handler) contactSubmit(w http.ResponseWriter, r *http.Request) {
	var sub contact.Submission
	if err := binder.BindForm()(r, &sub); err != nil {
		// Only non-browser clients hit this; browsers always send a
		// well-formed urlencoded body.
		if errors.Is(err, binder.ErrUnsupportedMediaType) || errors.Is(err, binder.ErrMissingContentType) {
			http.Error(w, "Unsupported Media Type", http.StatusUnsupportedMediaType)
			return
		}
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	res := h.contact.Submit(r.Context(), sub)

	state := contactPage{
		Form:      sub,
		Interests: contact.Interests(),
		Result:    &res,
	}
	if res.OK {
		// Matching the success view, the form resets.
		state.Form = contact.Submission{}
	}

	status := http.StatusOK
	if res.HasFieldErrors() {
		status = http.StatusUnprocessableEntity
	}

	h.render(w, r, status, "contact", page{
		Title:       "Contact",
		Description: "Tell us about your project.",
		ActiveNav:   "contact",
		Data:        state,
	})
}

func (h *Handler) privacy(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "privacy", page{
		Title:       "Privacy Policy",
		Description: "How we handle your data.",
	})
}

func (h *Handler) demo(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "demo", page{
		Title:       "Component Demo",
		Description: "A playground of the site's building blocks.",
	})
}

func (h *Handler) demoGradient(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "demo_gradient", page{
		Title:       "Gradient Fade Demo",
		Description: "Hero gradient fade variant.",
	})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "not_found", page{
		Title: "Page Not Found",
	})
}

func firstN(docs []*content.Document, n int) []*content.Document {
	if len(docs) <= n {
		return docs
	}
	return docs[:n]
}
