// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import "communitysite/internal/togglemenu"

// MenuData is the template view of a toggle menu on a given page.
type MenuData struct {
	Open      bool
	Label     string // accessible label of the activator
	Icon      string // activator icon URL
	Href      string // where the activator leads: the page after one activation
	CloseHref string // the page with the menu closed
	Links     []togglemenu.Entry
}

// NewMenuData builds the view of m as shown on the page at path. Links are
// only present while the menu is open.
func NewMenuData(path string, m *togglemenu.Menu) MenuData {
	v := m.Render()
	d := MenuData{
		Open:      m.Open(),
		Label:     v.Activator.Label,
		Icon:      v.Activator.Icon,
		Href:      togglemenu.ActivatorHref(path, m.Open()),
		CloseHref: togglemenu.ActivatorHref(path, true),
	}
	if v.Panel != nil {
		d.Links = make([]togglemenu.Entry, len(v.Panel.Links))
		for i, l := range v.Panel.Links {
			d.Links[i] = l.Entry
		}
	}
	return d
}
