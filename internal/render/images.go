// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"regexp"
	"strings"
)

// imgSrcRe matches <img ... src="..." ...> tags and captures the attributes
// before src, the src URL and the attributes after it. It handles single
// and double quotes.
var imgSrcRe = regexp.MustCompile(`<img\s([^>]*?)src=["']([^"']+)["']([^>]*)>`)

// RewriteImages rewrites <img> tags in rendered post HTML. Sources that are
// bare storage keys (no scheme, not site-absolute) are resolved through
// images, and every image is lazy-loaded unless it already says otherwise.
func RewriteImages(html string, images ImageResolver) string {
	if images == nil {
		images = StaticImages
	}

	return imgSrcRe.ReplaceAllStringFunc(html, func(tag string) string {
		m := imgSrcRe.FindStringSubmatch(tag)
		pre, src, post := m[1], m[2], m[3]

		if isStorageKey(src) {
			src = images(src)
		}

		var b strings.Builder
		b.WriteString(`<img `)
		b.WriteString(pre)
		b.WriteString(`src="`)
		b.WriteString(src)
		b.WriteString(`"`)
		if !strings.Contains(tag, "loading=") {
			b.WriteString(` loading="lazy"`)
		}
		b.WriteString(post)
		b.WriteString(`>`)
		return b.String()
	})
}

// isStorageKey reports whether src is a relative object key rather than a
// URL the browser can already resolve.
func isStorageKey(src string) bool {
	switch {
	case strings.HasPrefix(src, "/"),
		strings.HasPrefix(src, "data:"),
		strings.Contains(src, "://"):
		return false
	}
	return true
}
