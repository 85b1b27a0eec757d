// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Post is a blog post loaded from a markdown file.
type Post struct {
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Date          time.Time `json:"date"`
	Body          string    `json:"body"` // rendered HTML
	Excerpt       string    `json:"excerpt"`
	TimeToRead    int       `json:"time_to_read"` // minutes
	IsExternal    bool      `json:"is_external"`
	ExternalLink  string    `json:"external_link,omitempty"`
	FeaturedImage string    `json:"featured_image,omitempty"` // storage key or static path
}

// Path returns the site-relative URL of the post page.
func (p *Post) Path() string {
	return "/blog/" + p.Slug + "/"
}

// Href returns where a listing should link to: the external article for
// cross-posted content, otherwise the local post page.
func (p *Post) Href() string {
	if p.IsExternal && p.ExternalLink != "" {
		return p.ExternalLink
	}
	return p.Path()
}
