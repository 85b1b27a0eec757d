// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"communitysite/internal/models"
)

// seedMeetup is a development calendar entry. Offsets are relative to the
// seed time so a fresh database always has upcoming meetups.
type seedMeetup struct {
	uid      string
	title    string
	excerpt  string
	location string
	offset   time.Duration
	length   time.Duration
}

var seedMeetups = []seedMeetup{
	{
		uid:      "seed-talks-night@communitysite.local",
		title:    "Talks Night: Accessible Components",
		excerpt:  "Two talks on building interfaces everyone can use, followed by pizza and a chat.",
		location: "Federation House, 2 Federation Street, Manchester",
		offset:   7 * 24 * time.Hour,
		length:   3 * time.Hour,
	},
	{
		uid:      "seed-study-night@communitysite.local",
		title:    "FreeCodeCamp Study Night",
		excerpt:  "Bring your laptop and work through the curriculum with help from the community.",
		location: "Federation House, 2 Federation Street, Manchester",
		offset:   10 * 24 * time.Hour,
		length:   2 * time.Hour,
	},
	{
		uid:      "seed-workshop@communitysite.local",
		title:    "Workshop: Testing Web Apps",
		excerpt:  "A hands-on evening writing unit and end-to-end tests for a small web app.",
		location: "Manchester Central Library",
		offset:   21 * 24 * time.Hour,
		length:   3 * time.Hour,
	},
	{
		uid:      "seed-lightning@communitysite.local",
		title:    "Lightning Talks",
		excerpt:  "Five-minute talks from members. First-time speakers very welcome.",
		location: "Federation House, 2 Federation Street, Manchester",
		offset:   35 * 24 * time.Hour,
		length:   2 * time.Hour,
	},
}

// MeetupWriter is the part of the meetup store the seed needs.
type MeetupWriter interface {
	FindByICalUID(ctx context.Context, uid string) (*models.Meetup, error)
	Upsert(ctx context.Context, m *models.Meetup) (*models.Meetup, error)
}

// Seed writes the development meetups whose calendar UIDs are not stored
// yet. Existing rows are left untouched.
func Seed(ctx context.Context, meetups MeetupWriter) error {
	base := time.Now().Truncate(24 * time.Hour).Add(18*time.Hour + 30*time.Minute)

	added := 0
	for _, sm := range seedMeetups {
		existing, err := meetups.FindByICalUID(ctx, sm.uid)
		if err != nil {
			return fmt.Errorf("seed check meetup %s: %w", sm.uid, err)
		}
		if existing != nil {
			continue
		}
		if _, err := meetups.Upsert(ctx, sm.meetup(base)); err != nil {
			return fmt.Errorf("seed meetup %s: %w", sm.uid, err)
		}
		added++
	}

	if added == 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}
	slog.Info("database seeded with development meetups", "count", added)
	return nil
}

func (sm seedMeetup) meetup(base time.Time) *models.Meetup {
	start := base.Add(sm.offset)
	end := start.Add(sm.length)
	title, excerpt, location := sm.title, sm.excerpt, sm.location
	return &models.Meetup{
		ICalUID:     sm.uid,
		Title:       &title,
		Description: &excerpt,
		Excerpt:     &excerpt,
		Location:    &location,
		StartsAt:    &start,
		EndsAt:      &end,
	}
}
