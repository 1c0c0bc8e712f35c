package content_test

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northlight-studio/website/modules/content"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"blog/first-post.md": &fstest.MapFile{Data: []byte(`---
title: First Post
description: The first post.
date: 2025-01-10
tags:
  - Design
---

Hello **world**.
`)},
		"blog/second-post.md": &fstest.MapFile{Data: []byte(`---
title: Second Post
description: The second post.
date: 2025-03-01
coverImage: /static/images/blog/second.jpg
---

Another post.
`)},
		"blog/notes.txt": &fstest.MapFile{Data: []byte("not markdown")},
		"work/case-study.md": &fstest.MapFile{Data: []byte(`---
title: Case Study
description: A project.
date: 2024-12-01
---

Project details.
`)},
	}
}

func TestNewRepository(t *testing.T) {
	t.Parallel()

	repo, err := content.NewRepository(testFS())
	require.NoError(t, err)

	t.Run("sorts newest first", func(t *testing.T) {
		t.Parallel()

		posts := repo.All(content.KindBlog)
		require.Len(t, posts, 2)
		assert.Equal(t, "second-post", posts[0].Slug)
		assert.Equal(t, "first-post", posts[1].Slug)
		assert.True(t, posts[0].Date.After(posts[1].Date))
	})

	t.Run("ignores non-markdown files", func(t *testing.T) {
		t.Parallel()

		for _, doc := range repo.All(content.KindBlog) {
			assert.NotEqual(t, "notes", doc.Slug)
		}
	})

	t.Run("parses front matter", func(t *testing.T) {
		t.Parallel()

		doc, err := repo.Get(content.KindBlog, "first-post")
		require.NoError(t, err)
		assert.Equal(t, "First Post", doc.Title)
		assert.Equal(t, "The first post.", doc.Description)
		assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), doc.Date)
		assert.Equal(t, []string{"Design"}, doc.Tags)
	})

	t.Run("renders markdown body", func(t *testing.T) {
		t.Parallel()

		doc, err := repo.Get(content.KindBlog, "first-post")
		require.NoError(t, err)
		assert.Contains(t, string(doc.Body), "<strong>world</strong>")
	})

	t.Run("get by kind and slug", func(t *testing.T) {
		t.Parallel()

		doc, err := repo.Get(content.KindWork, "case-study")
		require.NoError(t, err)
		assert.Equal(t, content.KindWork, doc.Kind)

		// Slugs do not cross kinds.
		_, err = repo.Get(content.KindBlog, "case-study")
		assert.ErrorIs(t, err, content.ErrNotFound)
	})

	t.Run("unknown slug", func(t *testing.T) {
		t.Parallel()

		_, err := repo.Get(content.KindBlog, "missing")
		assert.ErrorIs(t, err, content.ErrNotFound)
	})
}

func TestNewRepository_InvalidContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "missing front matter", data: "just a body\n"},
		{name: "unterminated front matter", data: "---\ntitle: X\n"},
		{name: "missing title", data: "---\ndescription: no title\n---\n\nbody\n"},
		{name: "bad date", data: "---\ntitle: X\ndate: March 1st\n---\n\nbody\n"},
		{name: "bad yaml", data: "---\ntitle: [unclosed\n---\n\nbody\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fsys := fstest.MapFS{
				"blog/broken.md": &fstest.MapFile{Data: []byte(tt.data)},
				"work/.keep":     &fstest.MapFile{Data: nil},
			}
			_, err := content.NewRepository(fsys)
			assert.ErrorIs(t, err, content.ErrInvalidDocument)
		})
	}
}

func TestNewRepository_EmbeddedContent(t *testing.T) {
	t.Parallel()

	repo, err := content.NewRepository(content.FS)
	require.NoError(t, err)

	assert.NotEmpty(t, repo.All(content.KindBlog))
	assert.NotEmpty(t, repo.All(content.KindWork))

	for _, doc := range repo.All(content.KindWork) {
		assert.NotEmpty(t, doc.Title)
		assert.NotEmpty(t, doc.Description)
		assert.False(t, doc.Date.IsZero())
	}
}
