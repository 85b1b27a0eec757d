// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package togglemenu

import "net/url"

const (
	// QueryParam is the query string key that carries the menu state
	// between page loads.
	QueryParam = "menu"

	// OpenValue marks an open menu in QueryParam.
	OpenValue = "open"
)

// FromQuery rebuilds a menu from request query values. Every request starts
// from a fresh, closed menu; a menu=open parameter replays one activation.
func FromQuery(q url.Values) *Menu {
	m := New()
	if q.Get(QueryParam) == OpenValue {
		m.Activate()
	}
	return m
}

// ActivatorHref returns the URL the activator links to on the page at path:
// the same page in the state that follows one activation.
func ActivatorHref(path string, open bool) string {
	if path == "" {
		path = "/"
	}
	if open {
		return path
	}
	return path + "?" + url.Values{QueryParam: {OpenValue}}.Encode()
}
