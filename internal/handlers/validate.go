// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"regexp"
	"unicode/utf8"
)

// maxSlugLen bounds the {slug} URL parameter.
const maxSlugLen = 300

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// validSlug reports whether s could name a post. Anything else is a 404
// without touching the library.
func validSlug(s string) bool {
	if s == "" || utf8.RuneCountInString(s) > maxSlugLen {
		return false
	}
	return slugPattern.MatchString(s)
}
