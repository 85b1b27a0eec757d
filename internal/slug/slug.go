// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives URL-friendly slugs for blog posts.
package slug

import (
	"path"
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, space or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
	// whitespace matches runs of spaces, tabs and underscores.
	whitespace = regexp.MustCompile(`[\s_]+`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = whitespace.ReplaceAllString(result, " ")
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// FromPath derives a post slug from its source file path. Posts may be a
// single file ("blog/my-post.md") or a directory with an index file
// ("blog/my-post/index.md"); both yield "my-post".
func FromPath(p string) string {
	p = path.Clean(strings.ReplaceAll(p, "\\", "/"))
	base := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if base == "index" {
		base = path.Base(path.Dir(p))
	}
	return Generate(base)
}
