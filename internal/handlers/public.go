// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers serves the public pages of the community site.
package handlers

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"communitysite/internal/cache"
	"communitysite/internal/content"
	"communitysite/internal/models"
	"communitysite/internal/render"
	"communitysite/internal/site"
	"communitysite/internal/togglemenu"
)

const (
	// homepagePosts is how many recent posts the homepage shows.
	homepagePosts = 2

	// homepageMeetups is how many meetups the "Other meetups" list shows.
	homepageMeetups = 3
)

// MeetupSource lists meetups for the homepage and talks page.
type MeetupSource interface {
	Listed(ctx context.Context, now time.Time, limit int) ([]models.Meetup, error)
	Next(ctx context.Context, now time.Time) (*models.Meetup, error)
	Upcoming(ctx context.Context, now time.Time) ([]models.Meetup, error)
}

// PageCache stores rendered pages by key.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, html []byte)
}

// HomeData is the homepage view. Sections render in field order.
type HomeData struct {
	Hero         site.Hero
	NextMeetup   *models.Meetup
	Organisers   []models.Organiser
	Venue        site.Venue
	Social       []models.SocialLink
	Posts        []models.Post
	Meetups      []models.Meetup
	Resources    []models.LearningResource
	Contributing site.Contributing
}

// BlogIndexData is the blog listing view.
type BlogIndexData struct {
	Posts []models.Post
}

// BlogPostData is a single post view with its body ready to embed.
type BlogPostData struct {
	Post models.Post
	Body template.HTML
}

// ResourcesData is the learning resources view.
type ResourcesData struct {
	Groups []site.ResourceGroup
}

// TalksData is the upcoming talks view.
type TalksData struct {
	Meetups []models.Meetup
}

// Public groups handlers for the public site. Rendered pages are stored
// in the page cache keyed by path and menu state.
type Public struct {
	renderer  *render.Renderer
	posts     *content.Library
	meetups   MeetupSource
	pageCache PageCache
	images    render.ImageResolver
	now       func() time.Time
}

// NewPublic creates a new Public handler group. pageCache and images may
// be nil.
func NewPublic(rn *render.Renderer, posts *content.Library, meetups MeetupSource, pageCache PageCache, images render.ImageResolver) *Public {
	if images == nil {
		images = render.StaticImages
	}
	return &Public{
		renderer:  rn,
		posts:     posts,
		meetups:   meetups,
		pageCache: pageCache,
		images:    images,
		now:       time.Now,
	}
}

// Homepage renders the landing page.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, "home", "", func(ctx context.Context) (any, error) {
		now := p.now()

		next, err := p.meetups.Next(ctx, now)
		if err != nil {
			return nil, fmt.Errorf("next meetup: %w", err)
		}
		listed, err := p.meetups.Listed(ctx, now, homepageMeetups)
		if err != nil {
			return nil, fmt.Errorf("listed meetups: %w", err)
		}

		return &HomeData{
			Hero:         site.DefaultHero(),
			NextMeetup:   next,
			Organisers:   site.Organisers(),
			Venue:        site.DefaultVenue(),
			Social:       site.SocialLinks(),
			Posts:        p.posts.Latest(homepagePosts),
			Meetups:      listed,
			Resources:    site.HomepageResources(),
			Contributing: site.DefaultContributing(),
		}, nil
	})
}

// BlogIndex lists every post, newest first.
func (p *Public) BlogIndex(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, "blog_index", "Blog", func(context.Context) (any, error) {
		return &BlogIndexData{Posts: p.posts.All()}, nil
	})
}

// BlogPost renders one post by its slug.
func (p *Public) BlogPost(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	if !validSlug(slugParam) {
		p.NotFound(w, r)
		return
	}

	post := p.posts.Find(slugParam)
	if post == nil {
		p.NotFound(w, r)
		return
	}

	p.serve(w, r, "blog_post", post.Title, func(context.Context) (any, error) {
		return &BlogPostData{
			Post: *post,
			Body: template.HTML(render.RewriteImages(post.Body, p.images)),
		}, nil
	})
}

// LearningResources lists every recommended resource by category.
func (p *Public) LearningResources(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, "resources", "Learning resources", func(context.Context) (any, error) {
		return &ResourcesData{Groups: site.GroupedResources()}, nil
	})
}

// UpcomingTalks lists every meetup that has not finished yet.
func (p *Public) UpcomingTalks(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, "talks", "Upcoming talks", func(ctx context.Context) (any, error) {
		meetups, err := p.meetups.Upcoming(ctx, p.now())
		if err != nil {
			return nil, fmt.Errorf("upcoming meetups: %w", err)
		}
		return &TalksData{Meetups: meetups}, nil
	})
}

// NotFound renders the 404 page, toggle menu included.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Vary", "HX-Request")
	menu := render.NewMenuData(r.URL.Path, togglemenu.FromQuery(r.URL.Query()))
	if render.IsHTMX(r) {
		p.writeMenu(w, menu)
		return
	}

	out, err := p.renderer.Page("not_found", &render.PageData{
		SiteName: site.Name,
		Title:    "Page not found",
		Path:     r.URL.Path,
		Menu:     menu,
	})
	if err != nil {
		slog.Error("render not found page failed", "error", err)
		http.NotFound(w, r)
		return
	}
	writeHTML(w, http.StatusNotFound, out)
}

// serve is the shared page flow: rebuild the menu from the query string,
// answer HTMX requests with the menu fragment, otherwise serve the page
// from cache or render it from load.
func (p *Public) serve(w http.ResponseWriter, r *http.Request, name, title string, load func(context.Context) (any, error)) {
	ctx := r.Context()
	path := r.URL.Path
	menuState := togglemenu.FromQuery(r.URL.Query())
	menu := render.NewMenuData(path, menuState)

	w.Header().Add("Vary", "HX-Request")

	if render.IsHTMX(r) {
		p.writeMenu(w, menu)
		return
	}

	key := cache.PageKey(path, menuState.Open())
	if p.pageCache != nil {
		if cached, ok := p.pageCache.Get(ctx, key); ok {
			writeHTML(w, http.StatusOK, cached)
			return
		}
	}

	data, err := load(ctx)
	if err != nil {
		slog.Error("load page failed", "error", err, "page", name, "path", path)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	out, err := p.renderer.Page(name, &render.PageData{
		SiteName: site.Name,
		Title:    title,
		Path:     path,
		Menu:     menu,
		Data:     data,
	})
	if err != nil {
		slog.Error("render page failed", "error", err, "page", name, "path", path)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if p.pageCache != nil {
		p.pageCache.Set(ctx, key, out)
	}
	writeHTML(w, http.StatusOK, out)
}

// writeMenu answers an HTMX request with the toggle menu fragment.
func (p *Public) writeMenu(w http.ResponseWriter, menu render.MenuData) {
	out, err := p.renderer.Menu(menu)
	if err != nil {
		slog.Error("render menu fragment failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusOK, out)
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}
