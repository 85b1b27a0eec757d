// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content loads the site's blog posts from Markdown files with YAML
// frontmatter. Posts are read once at startup and served from memory.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"communitysite/internal/markdown"
	"communitysite/internal/models"
	"communitysite/internal/slug"
)

// ExcerptLength is the maximum length of a listing excerpt, in characters.
const ExcerptLength = 250

// BlogDir is the directory inside the content filesystem that holds posts.
const BlogDir = "blog"

// postHeader is the YAML header of a post file.
type postHeader struct {
	Title         string   `yaml:"title"`
	Date          postDate `yaml:"date"`
	Author        string   `yaml:"author"`
	IsExternal    bool     `yaml:"isExternal"`
	ExternalLink  string   `yaml:"externalLink"`
	FeaturedImage string   `yaml:"featuredImage"`
}

// postDate accepts plain dates as well as full timestamps.
type postDate struct {
	time.Time
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// UnmarshalYAML parses the scalar with each supported layout in turn.
func (d *postDate) UnmarshalYAML(value *yaml.Node) error {
	raw := strings.TrimSpace(value.Value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognised date %q", raw)
}

// Library is an immutable, date-ordered collection of posts.
type Library struct {
	posts  []models.Post
	bySlug map[string]int
}

// Load reads every Markdown file under BlogDir in fsys. A missing blog
// directory yields an empty library; malformed posts are errors.
func Load(fsys fs.FS) (*Library, error) {
	lib := &Library{bySlug: make(map[string]int)}
	seen := make(map[string]bool)

	err := fs.WalkDir(fsys, BlogDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isMarkdown(p) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		post, err := Parse(slug.FromPath(p), data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		if seen[post.Slug] {
			return fmt.Errorf("duplicate post slug %q (%s)", post.Slug, p)
		}
		seen[post.Slug] = true
		lib.posts = append(lib.posts, *post)
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load blog: %w", err)
	}

	sort.SliceStable(lib.posts, func(i, j int) bool {
		if lib.posts[i].Date.Equal(lib.posts[j].Date) {
			return lib.posts[i].Slug < lib.posts[j].Slug
		}
		return lib.posts[i].Date.After(lib.posts[j].Date)
	})
	for i, p := range lib.posts {
		lib.bySlug[p.Slug] = i
	}

	slog.Info("blog posts loaded", "count", len(lib.posts))
	return lib, nil
}

// Parse builds a post from a Markdown file with a frontmatter header.
func Parse(postSlug string, data []byte) (*models.Post, error) {
	var fm postHeader
	body, err := splitFrontmatter(data, &fm)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(fm.Title) == "" {
		return nil, fmt.Errorf("frontmatter: title is required")
	}
	if fm.Date.IsZero() {
		return nil, fmt.Errorf("frontmatter: date is required")
	}
	if postSlug == "" {
		postSlug = slug.Generate(fm.Title)
	}

	source := string(body)
	rendered, err := markdown.ToHTML(source)
	if err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	return &models.Post{
		Slug:          postSlug,
		Title:         fm.Title,
		Author:        fm.Author,
		Date:          fm.Date.Time,
		Body:          rendered,
		Excerpt:       markdown.Excerpt(source, ExcerptLength),
		TimeToRead:    markdown.TimeToRead(source),
		IsExternal:    fm.IsExternal,
		ExternalLink:  fm.ExternalLink,
		FeaturedImage: fm.FeaturedImage,
	}, nil
}

// All returns every post, newest first.
func (l *Library) All() []models.Post {
	out := make([]models.Post, len(l.posts))
	copy(out, l.posts)
	return out
}

// Latest returns up to n of the newest posts.
func (l *Library) Latest(n int) []models.Post {
	if n > len(l.posts) {
		n = len(l.posts)
	}
	if n <= 0 {
		return nil
	}
	out := make([]models.Post, n)
	copy(out, l.posts[:n])
	return out
}

// Find returns the post with the given slug, or nil if there is none.
func (l *Library) Find(postSlug string) *models.Post {
	i, ok := l.bySlug[postSlug]
	if !ok {
		return nil
	}
	p := l.posts[i]
	return &p
}

// Len returns the number of posts.
func (l *Library) Len() int {
	return len(l.posts)
}

var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// splitFrontmatter decodes the YAML header into fm and returns the Markdown
// body. The header must open on the first line.
func splitFrontmatter(data []byte, fm *postHeader) ([]byte, error) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	body, err := frontmatter.MustParse(bytes.NewReader(data), fm, yamlFormat)
	if errors.Is(err, frontmatter.ErrNotFound) {
		return nil, fmt.Errorf("missing frontmatter")
	}
	if err != nil {
		return nil, fmt.Errorf("frontmatter: %w", err)
	}
	return body, nil
}

func isMarkdown(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
