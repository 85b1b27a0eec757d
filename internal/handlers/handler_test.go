// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared fakes and fixtures for handler tests.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/go-chi/chi/v5"

	"communitysite/internal/content"
	"communitysite/internal/models"
	"communitysite/internal/render"
)

// testNow anchors every fake meetup and handler clock.
var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func meetup(title string, startsIn time.Duration) models.Meetup {
	start := testNow.Add(startsIn)
	return models.Meetup{
		ICalUID:  title + "@test",
		Title:    strPtr(title),
		Excerpt:  strPtr(title + " excerpt"),
		Location: strPtr("Federation House"),
		StartsAt: timePtr(start),
		EndsAt:   timePtr(start.Add(2 * time.Hour)),
	}
}

// fakeMeetups implements MeetupSource over a fixed slice.
type fakeMeetups struct {
	meetups []models.Meetup
	err     error
	calls   int
}

func (f *fakeMeetups) Listed(_ context.Context, now time.Time, limit int) ([]models.Meetup, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Meetup
	for _, m := range f.meetups {
		if m.IsListable() && m.IsUpcoming(now) && len(out) < limit {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMeetups) Next(_ context.Context, now time.Time) (*models.Meetup, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.meetups {
		if m.IsListable() && m.IsUpcoming(now) {
			m := m
			return &m, nil
		}
	}
	return nil, nil
}

func (f *fakeMeetups) Upcoming(_ context.Context, now time.Time) ([]models.Meetup, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Meetup
	for _, m := range f.meetups {
		if m.IsUpcoming(now) {
			out = append(out, m)
		}
	}
	return out, nil
}

// memCache implements PageCache in memory.
type memCache struct {
	mu    sync.Mutex
	pages map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{pages: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.pages[key]
	return p, ok
}

func (c *memCache) Set(_ context.Context, key string, html []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[key] = html
}

var errDatabase = errors.New("database unavailable")

const postSource = `---
title: Hello Manchester
date: 2024-02-20
author: James Davenport
featuredImage: blog/hello.jpg
---
Welcome to the **new** site.

![Crowd](blog/crowd.jpg)
`

// testEnv bundles a Public handler with its fakes.
type testEnv struct {
	Public  *Public
	Meetups *fakeMeetups
	Cache   *memCache
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	images := func(key string) string { return "https://cdn.example.com/" + key }
	rn, err := render.New(false, "", images)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	lib, err := content.Load(fstest.MapFS{
		"blog/hello-manchester.md": {Data: []byte(postSource)},
		"blog/older.md":            {Data: []byte("---\ntitle: Older Post\ndate: 2023-05-01\nauthor: Pete Daily\n---\nOlder body.\n")},
		"blog/oldest.md":           {Data: []byte("---\ntitle: Oldest Post\ndate: 2022-01-01\nauthor: Fey Ijaware\n---\nOldest body.\n")},
	})
	if err != nil {
		t.Fatalf("content.Load: %v", err)
	}

	meetups := &fakeMeetups{meetups: []models.Meetup{
		meetup("Past Talk", -48*time.Hour),
		meetup("March Lightning Talks", 24*time.Hour),
		meetup("FreeCodeCamp Study Night", 48*time.Hour),
		meetup("April Workshop", 30*24*time.Hour),
	}}
	pageCache := newMemCache()

	pub := NewPublic(rn, lib, meetups, pageCache, images)
	pub.now = func() time.Time { return testNow }

	return &testEnv{Public: pub, Meetups: meetups, Cache: pageCache}
}

// routes mounts the handlers the way the router does, for tests that
// need URL parameters.
func (env *testEnv) routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", env.Public.Homepage)
	r.Get("/blog/", env.Public.BlogIndex)
	r.Get("/blog/{slug}/", env.Public.BlogPost)
	r.Get("/learning-resources/", env.Public.LearningResources)
	r.Get("/upcoming-talks/", env.Public.UpcomingTalks)
	r.NotFound(env.Public.NotFound)
	return r
}

func (env *testEnv) get(t *testing.T, target string, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	env.routes().ServeHTTP(rec, req)
	return rec
}
