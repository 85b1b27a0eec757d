// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ExcludedMeetupPrefix marks calendar events that belong to the sister
// study group and are kept off the "Other Meetups" listing.
const ExcludedMeetupPrefix = "freecodecamp"

// Meetup is a calendar event imported from the group's meetup calendar.
// Calendar entries are frequently incomplete, so every descriptive field
// is nullable.
type Meetup struct {
	ID          uuid.UUID  `json:"id"`
	ICalUID     string     `json:"ical_uid"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Location    *string    `json:"location,omitempty"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// IsListable reports whether the meetup has every field a listing needs
// and is not a study-group session.
func (m *Meetup) IsListable() bool {
	if m.Title == nil || m.Excerpt == nil || m.Location == nil || m.StartsAt == nil || m.EndsAt == nil {
		return false
	}
	return !strings.HasPrefix(strings.ToLower(*m.Title), ExcludedMeetupPrefix)
}

// IsUpcoming reports whether the meetup has not yet finished at now.
func (m *Meetup) IsUpcoming(now time.Time) bool {
	return m.EndsAt != nil && m.EndsAt.After(now)
}
