// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package togglemenu implements the floating-action navigation menu shown
// on every page. A Menu owns a single open/closed flag; rendering it yields
// an always-present activator and, only while open, a panel of the site's
// fixed navigation entries.
package togglemenu

// Entry is one site-internal navigation target.
type Entry struct {
	Label string
	Path  string
}

// entries is the fixed panel content, in display order.
var entries = [...]Entry{
	{Label: "Home", Path: "/"},
	{Label: "Blog", Path: "/blog/"},
	{Label: "Resources", Path: "/learning-resources/"},
	{Label: "Upcoming Talks", Path: "/upcoming-talks/"},
}

// Entries returns a copy of the panel's navigation entries.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries[:])
	return out
}

// Menu holds the visibility state of one rendered menu. The zero value is
// a closed menu.
type Menu struct {
	open bool
}

// New returns a closed menu.
func New() *Menu {
	return &Menu{}
}

// Open reports whether the panel is visible.
func (m *Menu) Open() bool {
	return m.open
}

// Activate flips the panel between open and closed.
func (m *Menu) Activate() {
	m.open = !m.open
}

// View is a snapshot of the menu's render output. Panel is nil while the
// menu is closed.
type View struct {
	Activator Activator
	Panel     *Panel
}

// Activator is the always-visible control that opens and closes the panel.
type Activator struct {
	Label string
	Icon  string

	toggle func()
}

// Activate toggles the owning menu.
func (a Activator) Activate() {
	a.toggle()
}

// Panel is the container of navigation links. Interacting with the
// container itself toggles the owning menu, as does following any link.
type Panel struct {
	Links []Link

	toggle func()
}

// Activate toggles the owning menu.
func (p *Panel) Activate() {
	p.toggle()
}

// Link is a navigation entry inside the open panel.
type Link struct {
	Entry

	toggle func()
}

// Follow records navigation intent: it toggles the owning menu closed and
// returns the destination path.
func (l Link) Follow() string {
	l.toggle()
	return l.Path
}

// Render builds the current view of the menu. The returned callbacks stay
// bound to m, so activating them after a later state change still toggles
// the live menu.
func (m *Menu) Render() View {
	v := View{
		Activator: Activator{
			Label:  "menu button",
			Icon:   "/static/icons/menu.svg",
			toggle: m.Activate,
		},
	}
	if !m.open {
		return v
	}

	links := make([]Link, len(entries))
	for i, e := range entries {
		links[i] = Link{Entry: e, toggle: m.Activate}
	}
	v.Panel = &Panel{Links: links, toggle: m.Activate}
	return v
}
