package content

import (
	"html/template"
	"time"
)

// Kind identifies a content collection.
type Kind string

const (
	// KindBlog holds blog posts.
	KindBlog Kind = "blog"
	// KindWork holds work case studies.
	KindWork Kind = "work"
)

// Document is a parsed content item: front matter metadata plus the rendered
// body. Slug is derived from the source filename.
type Document struct {
	Kind        Kind
	Slug        string
	Title       string
	Description string
	Date        time.Time
	CoverImage  string
	Tags        []string

	// Body is the rendered HTML of the markdown source. It is produced by
	// the repository's renderer and safe to inject into page templates.
	Body template.HTML
}

// frontMatter is the YAML header of a content file.
type frontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	CoverImage  string   `yaml:"coverImage"`
	Tags        []string `yaml:"tags"`
}
