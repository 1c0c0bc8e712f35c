package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northlight-studio/website/pkg/binder"
)

type contactForm struct {
	Name     string   `form:"name"`
	Email    string   `form:"email"`
	Count    int      `form:"count"`
	Agree    bool     `form:"agree"`
	Tags     []string `form:"tags"`
	Ref      *string  `form:"ref"`
	Internal string   `form:"-"`
}

func formRequest(t *testing.T, values url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestBindForm(t *testing.T) {
	t.Parallel()

	t.Run("binds tagged fields", func(t *testing.T) {
		t.Parallel()

		req := formRequest(t, url.Values{
			"name":  {"Jane Smith"},
			"email": {"jane@acme.com"},
			"count": {"3"},
			"agree": {"on"},
			"tags":  {"go", "web"},
			"ref":   {"newsletter"},
		})

		var form contactForm
		require.NoError(t, binder.BindForm()(req, &form))

		assert.Equal(t, "Jane Smith", form.Name)
		assert.Equal(t, "jane@acme.com", form.Email)
		assert.Equal(t, 3, form.Count)
		assert.True(t, form.Agree)
		assert.Equal(t, []string{"go", "web"}, form.Tags)
		require.NotNil(t, form.Ref)
		assert.Equal(t, "newsletter", *form.Ref)
	})

	t.Run("missing fields keep zero values", func(t *testing.T) {
		t.Parallel()

		req := formRequest(t, url.Values{"name": {"Jane"}})

		var form contactForm
		require.NoError(t, binder.BindForm()(req, &form))
		assert.Equal(t, "Jane", form.Name)
		assert.Empty(t, form.Email)
		assert.Nil(t, form.Ref)
	})

	t.Run("skipped field is never bound", func(t *testing.T) {
		t.Parallel()

		req := formRequest(t, url.Values{"internal": {"sneaky"}})

		var form contactForm
		require.NoError(t, binder.BindForm()(req, &form))
		assert.Empty(t, form.Internal)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("name=x"))

		var form contactForm
		err := binder.BindForm()(req, &form)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"name":"x"}`))
		req.Header.Set("Content-Type", "application/json")

		var form contactForm
		err := binder.BindForm()(req, &form)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("invalid int value", func(t *testing.T) {
		t.Parallel()

		req := formRequest(t, url.Values{"count": {"many"}})

		var form contactForm
		err := binder.BindForm()(req, &form)
		assert.ErrorIs(t, err, binder.ErrInvalidForm)
	})

	t.Run("non-struct target", func(t *testing.T) {
		t.Parallel()

		req := formRequest(t, url.Values{"name": {"x"}})

		var s string
		err := binder.BindForm()(req, &s)
		assert.ErrorIs(t, err, binder.ErrInvalidForm)
	})
}
