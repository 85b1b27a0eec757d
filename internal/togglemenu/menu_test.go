// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package togglemenu

import (
	"net/url"
	"testing"
)

var wantEntries = []Entry{
	{"Home", "/"},
	{"Blog", "/blog/"},
	{"Resources", "/learning-resources/"},
	{"Upcoming Talks", "/upcoming-talks/"},
}

func assertPanelLinks(t *testing.T, p *Panel) {
	t.Helper()
	if p == nil {
		t.Fatal("panel should be present")
	}
	if len(p.Links) != len(wantEntries) {
		t.Fatalf("links: got %d, want %d", len(p.Links), len(wantEntries))
	}
	for i, want := range wantEntries {
		if p.Links[i].Entry != want {
			t.Errorf("link %d: got %+v, want %+v", i, p.Links[i].Entry, want)
		}
	}
}

func TestNewIsClosed(t *testing.T) {
	m := New()
	if m.Open() {
		t.Error("new menu should be closed")
	}

	v := m.Render()
	if v.Panel != nil {
		t.Error("closed menu should not render a panel")
	}
	if v.Activator.toggle == nil {
		t.Error("activator should always be present and bound")
	}
}

func TestZeroValueIsClosed(t *testing.T) {
	var m Menu
	if m.Open() || m.Render().Panel != nil {
		t.Error("zero-value menu should be closed")
	}
}

func TestActivateOpensPanel(t *testing.T) {
	m := New()
	m.Activate()

	if !m.Open() {
		t.Fatal("menu should be open after one activation")
	}
	assertPanelLinks(t, m.Render().Panel)
}

func TestActivateTwiceCloses(t *testing.T) {
	m := New()
	m.Activate()
	m.Activate()

	if m.Open() {
		t.Error("menu should be closed after two activations")
	}
	if m.Render().Panel != nil {
		t.Error("panel should be absent after two activations")
	}
}

func TestActivationParity(t *testing.T) {
	for n := 0; n <= 9; n++ {
		m := New()
		for i := 0; i < n; i++ {
			m.Activate()
		}
		want := n%2 == 1
		if m.Open() != want {
			t.Errorf("after %d activations: open=%v, want %v", n, m.Open(), want)
		}
		if (m.Render().Panel != nil) != want {
			t.Errorf("after %d activations: panel presence=%v, want %v", n, m.Render().Panel != nil, want)
		}
	}
}

func TestActivatorToggles(t *testing.T) {
	m := New()

	m.Render().Activator.Activate()
	if !m.Open() {
		t.Fatal("activator should open the menu")
	}

	m.Render().Activator.Activate()
	if m.Open() {
		t.Error("activator should close the menu")
	}
}

func TestFollowLinkClosesPanel(t *testing.T) {
	m := New()
	m.Activate()

	panel := m.Render().Panel
	assertPanelLinks(t, panel)

	dest := panel.Links[1].Follow()
	if dest != "/blog/" {
		t.Errorf("follow Blog: got %q, want %q", dest, "/blog/")
	}
	if m.Open() {
		t.Error("following a link should close the menu")
	}
	if m.Render().Panel != nil {
		t.Error("panel should be absent after following a link")
	}
}

func TestPanelContainerToggles(t *testing.T) {
	m := New()
	m.Activate()

	m.Render().Panel.Activate()
	if m.Open() {
		t.Error("activating the panel container should close the menu")
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	got := Entries()
	if len(got) != len(wantEntries) {
		t.Fatalf("entries: got %d, want %d", len(got), len(wantEntries))
	}
	got[0].Path = "/changed/"

	if Entries()[0].Path != "/" {
		t.Error("mutating the returned slice should not change the menu entries")
	}
}

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		open  bool
	}{
		{"no params", "", false},
		{"open", "menu=open", true},
		{"other value", "menu=closed", false},
		{"unrelated param", "page=2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}
			if got := FromQuery(q).Open(); got != tt.open {
				t.Errorf("open: got %v, want %v", got, tt.open)
			}
		})
	}
}

func TestActivatorHref(t *testing.T) {
	tests := []struct {
		path string
		open bool
		want string
	}{
		{"/", false, "/?menu=open"},
		{"/", true, "/"},
		{"/blog/", false, "/blog/?menu=open"},
		{"/blog/", true, "/blog/"},
		{"", false, "/?menu=open"},
	}

	for _, tt := range tests {
		if got := ActivatorHref(tt.path, tt.open); got != tt.want {
			t.Errorf("ActivatorHref(%q, %v): got %q, want %q", tt.path, tt.open, got, tt.want)
		}
	}
}
