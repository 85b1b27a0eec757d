// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"html/template"
	"strings"
)

// Profile is a username on an external network plus the link to it.
type Profile struct {
	Username string
	Link     string
}

// Organiser is a member of the group's organising team.
type Organiser struct {
	Name        string
	Twitter     Profile
	GitHub      Profile
	Description template.HTML // trusted markup, may contain emoji spans
	Languages   []string
}

// ImageKey returns the storage key of the organiser's portrait, derived
// from the lower-cased first name.
func (o Organiser) ImageKey() string {
	first, _, _ := strings.Cut(o.Name, " ")
	return "organisers/organiser-" + strings.ToLower(first) + ".jpg"
}

// SocialLink is an entry in the homepage social panel.
type SocialLink struct {
	Label string
	URL   string
	Icon  string
}

// LearningResource is an external learning link recommended by the group.
type LearningResource struct {
	Title       string
	URL         string
	Category    string
	Description string
	Homepage    bool // shown in the homepage carousel
}
