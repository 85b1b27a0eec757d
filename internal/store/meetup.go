// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"communitysite/internal/models"
)

// meetupColumns is the column list shared by every meetup query.
const meetupColumns = `id, ical_uid, title, description, excerpt, location,
	starts_at, ends_at, created_at`

// listableClause restricts rows to complete, non study-group meetups. It
// mirrors models.Meetup.IsListable.
const listableClause = `title IS NOT NULL
	AND excerpt IS NOT NULL
	AND location IS NOT NULL
	AND starts_at IS NOT NULL
	AND ends_at IS NOT NULL
	AND lower(title) NOT LIKE '` + models.ExcludedMeetupPrefix + `%'`

// MeetupStore handles all meetup-related database operations.
type MeetupStore struct {
	db *sql.DB
}

// NewMeetupStore creates a new MeetupStore with the given database connection.
func NewMeetupStore(db *sql.DB) *MeetupStore {
	return &MeetupStore{db: db}
}

// Listed returns up to limit listable meetups that have not finished by
// now, soonest first. Used for the homepage "Other Meetups" column.
func (s *MeetupStore) Listed(ctx context.Context, now time.Time, limit int) ([]models.Meetup, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+meetupColumns+`
		FROM meetups
		WHERE `+listableClause+` AND ends_at > $1
		ORDER BY starts_at ASC
		LIMIT $2
	`, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list meetups: %w", err)
	}
	return scanMeetups(rows)
}

// Next returns the earliest listable meetup that has not finished by now,
// or nil if none is scheduled.
func (s *MeetupStore) Next(ctx context.Context, now time.Time) (*models.Meetup, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+meetupColumns+`
		FROM meetups
		WHERE `+listableClause+` AND ends_at > $1
		ORDER BY starts_at ASC
		LIMIT 1
	`, now)

	m, err := scanMeetup(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find next meetup: %w", err)
	}
	return m, nil
}

// Upcoming returns every scheduled meetup that has not finished by now,
// including study-group sessions, soonest first.
func (s *MeetupStore) Upcoming(ctx context.Context, now time.Time) ([]models.Meetup, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+meetupColumns+`
		FROM meetups
		WHERE title IS NOT NULL AND starts_at IS NOT NULL AND ends_at > $1
		ORDER BY starts_at ASC
	`, now)
	if err != nil {
		return nil, fmt.Errorf("list upcoming meetups: %w", err)
	}
	return scanMeetups(rows)
}

// FindByICalUID retrieves a meetup by its calendar UID. Returns nil if not found.
func (s *MeetupStore) FindByICalUID(ctx context.Context, uid string) (*models.Meetup, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+meetupColumns+` FROM meetups WHERE ical_uid = $1
	`, uid)

	m, err := scanMeetup(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find meetup by uid: %w", err)
	}
	return m, nil
}

// Upsert inserts a meetup or updates the existing row with the same
// calendar UID, returning the stored record.
func (s *MeetupStore) Upsert(ctx context.Context, m *models.Meetup) (*models.Meetup, error) {
	if m.ICalUID == "" {
		return nil, fmt.Errorf("upsert meetup: ical uid is required")
	}
	id := m.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO meetups (id, ical_uid, title, description, excerpt, location, starts_at, ends_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (ical_uid) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			excerpt = EXCLUDED.excerpt,
			location = EXCLUDED.location,
			starts_at = EXCLUDED.starts_at,
			ends_at = EXCLUDED.ends_at,
			updated_at = NOW()
		RETURNING `+meetupColumns,
		id, m.ICalUID, m.Title, m.Description, m.Excerpt, m.Location, m.StartsAt, m.EndsAt,
	)

	result, err := scanMeetup(row)
	if err != nil {
		return nil, fmt.Errorf("upsert meetup: %w", err)
	}
	return result, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeetup(row rowScanner) (*models.Meetup, error) {
	m := &models.Meetup{}
	err := row.Scan(
		&m.ID, &m.ICalUID, &m.Title, &m.Description, &m.Excerpt, &m.Location,
		&m.StartsAt, &m.EndsAt, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func scanMeetups(rows *sql.Rows) ([]models.Meetup, error) {
	defer rows.Close()

	var items []models.Meetup
	for rows.Next() {
		m, err := scanMeetup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan meetup: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}
