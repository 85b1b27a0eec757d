// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package site holds the group's static content: hero copy, venue,
// social links, organisers and recommended learning resources.
package site

import "communitysite/internal/models"

// Name is the group's display name.
const Name = "Manchester Web Developers"

// Hero is the homepage banner copy.
type Hero struct {
	Title    string
	Tagline  string
	CTALabel string
	CTAHref  string
}

// Venue describes where meetups usually happen.
type Venue struct {
	Name    string
	Address string
	MapURL  string
}

// Contributing is the closing call-to-action on the homepage.
type Contributing struct {
	Title   string
	Body    string
	RepoURL string
}

// DefaultHero returns the homepage banner.
func DefaultHero() Hero {
	return Hero{
		Title:    "Learn, build and share with Manchester's web developers",
		Tagline:  "Free monthly talks, study nights and a friendly community for developers of every level.",
		CTALabel: "See upcoming talks",
		CTAHref:  "/upcoming-talks/",
	}
}

// DefaultVenue returns the usual meetup venue.
func DefaultVenue() Venue {
	return Venue{
		Name:    "Federation House",
		Address: "2 Federation Street, Manchester M4 4BF",
		MapURL:  "https://www.openstreetmap.org/search?query=Federation%20House%20Manchester",
	}
}

// DefaultContributing returns the contributing call-to-action.
func DefaultContributing() Contributing {
	return Contributing{
		Title:   "Contribute to this site",
		Body:    "This website is built by the community. Spotted a typo, want to write a blog post or add a learning resource? Pull requests are welcome.",
		RepoURL: "https://github.com/manchester-web-dev/website",
	}
}

// SocialLinks returns the links shown in the homepage social panel.
func SocialLinks() []models.SocialLink {
	return []models.SocialLink{
		{Label: "Meetup", URL: "https://www.meetup.com/manchester-web-dev/", Icon: "meetup"},
		{Label: "Twitter", URL: "https://twitter.com/mcrwebdev", Icon: "twitter"},
		{Label: "GitHub", URL: "https://github.com/manchester-web-dev", Icon: "github"},
		{Label: "Slack", URL: "https://mcrwebdev.slack.com/", Icon: "slack"},
	}
}
