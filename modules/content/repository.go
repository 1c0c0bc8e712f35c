package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound is returned when no document exists for a kind and slug.
	ErrNotFound = errors.New("content: document not found")
	// ErrInvalidDocument is returned when a content file cannot be parsed.
	ErrInvalidDocument = errors.New("content: invalid document")
)

var frontMatterDelimiter = []byte("---")

// Repository is a read-only index of content documents keyed by kind and
// slug. All documents are parsed and rendered once at construction; lookups
// afterwards are cheap map reads, safe for concurrent use.
type Repository struct {
	byKind map[Kind][]*Document
	bySlug map[Kind]map[string]*Document
}

// NewRepository loads every markdown file under "<kind>/" directories of
// fsys. Files that are not .md are ignored. A file that fails to parse
// aborts the load; broken content should fail startup, not serve a partial
// site.
func NewRepository(fsys fs.FS, kinds ...Kind) (*Repository, error) {
	if len(kinds) == 0 {
		kinds = []Kind{KindBlog, KindWork}
	}

	repo := &Repository{
		byKind: make(map[Kind][]*Document, len(kinds)),
		bySlug: make(map[Kind]map[string]*Document, len(kinds)),
	}
	md := newRenderer()

	for _, kind := range kinds {
		entries, err := fs.ReadDir(fsys, string(kind))
		if err != nil {
			return nil, fmt.Errorf("content: reading %s directory: %w", kind, err)
		}

		repo.bySlug[kind] = make(map[string]*Document, len(entries))

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
				continue
			}

			raw, err := fs.ReadFile(fsys, path.Join(string(kind), entry.Name()))
			if err != nil {
				return nil, fmt.Errorf("content: reading %s/%s: %w", kind, entry.Name(), err)
			}

			slug := strings.TrimSuffix(entry.Name(), ".md")
			doc, err := parseDocument(kind, slug, raw, md)
			if err != nil {
				return nil, fmt.Errorf("content: parsing %s/%s: %w", kind, entry.Name(), err)
			}

			repo.byKind[kind] = append(repo.byKind[kind], doc)
			repo.bySlug[kind][slug] = doc
		}

		// Newest first.
		sort.SliceStable(repo.byKind[kind], func(i, j int) bool {
			return repo.byKind[kind][i].Date.After(repo.byKind[kind][j].Date)
		})
	}

	return repo, nil
}

// All returns the documents of a kind sorted by publish date descending.
// The returned slice is shared; callers must not modify it.
func (r *Repository) All(kind Kind) []*Document {
	return r.byKind[kind]
}

// Get returns the document for a kind and slug, or ErrNotFound.
func (r *Repository) Get(kind Kind, slug string) (*Document, error) {
	if doc, ok := r.bySlug[kind][slug]; ok {
		return doc, nil
	}
	return nil, ErrNotFound
}

// parseDocument splits the front matter from the body, decodes the metadata,
// and renders the markdown body to HTML.
func parseDocument(kind Kind, slug string, raw []byte, md *renderer) (*Document, error) {
	meta, body, err := splitFrontMatter(raw)
	if err != nil {
		return nil, err
	}

	var fm frontMatter
	if err := yaml.Unmarshal(meta, &fm); err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	if fm.Title == "" {
		return nil, fmt.Errorf("%w: missing title", ErrInvalidDocument)
	}

	var date time.Time
	if fm.Date != "" {
		date, err = time.Parse("2006-01-02", fm.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: bad date %q", ErrInvalidDocument, fm.Date)
		}
	}

	rendered, err := md.toHTML(body)
	if err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}

	return &Document{
		Kind:        kind,
		Slug:        slug,
		Title:       fm.Title,
		Description: fm.Description,
		Date:        date,
		CoverImage:  fm.CoverImage,
		Tags:        fm.Tags,
		Body:        template.HTML(rendered),
	}, nil
}

// splitFrontMatter separates a leading "---" delimited YAML block from the
// markdown body. Files without front matter are rejected; every document
// needs at least a title.
func splitFrontMatter(raw []byte) (meta, body []byte, err error) {
	trimmed := bytes.TrimLeft(raw, "\xef\xbb\xbf") // strip UTF-8 BOM
	if !bytes.HasPrefix(trimmed, frontMatterDelimiter) {
		return nil, nil, fmt.Errorf("%w: missing front matter", ErrInvalidDocument)
	}

	rest := trimmed[len(frontMatterDelimiter):]
	idx := bytes.Index(rest, append([]byte("\n"), frontMatterDelimiter...))
	if idx < 0 {
		return nil, nil, fmt.Errorf("%w: unterminated front matter", ErrInvalidDocument)
	}

	meta = rest[:idx]
	body = rest[idx+1+len(frontMatterDelimiter):]
	return meta, bytes.TrimLeft(body, "\r\n"), nil
}
