// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package site

import "communitysite/internal/models"

// LearningResources returns every recommended resource.
func LearningResources() []models.LearningResource {
	return []models.LearningResource{
		{Title: "freeCodeCamp", URL: "https://www.freecodecamp.org/", Category: "Courses", Description: "A free, self-paced curriculum covering the whole web stack.", Homepage: true},
		{Title: "The Odin Project", URL: "https://www.theodinproject.com/", Category: "Courses", Description: "Project-based full stack curriculum.", Homepage: true},
		{Title: "MDN Web Docs", URL: "https://developer.mozilla.org/", Category: "Reference", Description: "The reference for HTML, CSS and JavaScript.", Homepage: true},
		{Title: "JavaScript.info", URL: "https://javascript.info/", Category: "Reference", Description: "The modern JavaScript tutorial, from basics to advanced topics.", Homepage: true},
		{Title: "CSS-Tricks", URL: "https://css-tricks.com/", Category: "Articles", Description: "Guides and almanac for everything CSS."},
		{Title: "Eloquent JavaScript", URL: "https://eloquentjavascript.net/", Category: "Books", Description: "A free book about JavaScript, programming and the wonders of the digital."},
		{Title: "You Don't Know JS Yet", URL: "https://github.com/getify/You-Dont-Know-JS", Category: "Books", Description: "A book series diving deep into the core mechanisms of JavaScript.", Homepage: true},
		{Title: "Syntax", URL: "https://syntax.fm/", Category: "Podcasts", Description: "A tasty treats podcast for web developers."},
		{Title: "Frontend Masters", URL: "https://frontendmasters.com/", Category: "Courses", Description: "In-depth paid courses from industry experts."},
	}
}

// HomepageResources returns the resources shown in the homepage carousel.
func HomepageResources() []models.LearningResource {
	var out []models.LearningResource
	for _, r := range LearningResources() {
		if r.Homepage {
			out = append(out, r)
		}
	}
	return out
}

// ResourceGroup is a category heading with its resources.
type ResourceGroup struct {
	Category  string
	Resources []models.LearningResource
}

// GroupedResources returns every resource grouped by category, categories
// in order of first appearance.
func GroupedResources() []ResourceGroup {
	var groups []ResourceGroup
	index := make(map[string]int)
	for _, r := range LearningResources() {
		i, ok := index[r.Category]
		if !ok {
			i = len(groups)
			index[r.Category] = i
			groups = append(groups, ResourceGroup{Category: r.Category})
		}
		groups[i].Resources = append(groups[i].Resources, r)
	}
	return groups
}
