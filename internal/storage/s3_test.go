// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import "testing"

func TestNewUnconfigured(t *testing.T) {
	tests := []struct {
		name                           string
		endpoint, accessKey, secretKey string
	}{
		{name: "no endpoint", accessKey: "a", secretKey: "s"},
		{name: "no access key", endpoint: "https://s3.example.com", secretKey: "s"},
		{name: "no secret", endpoint: "https://s3.example.com", accessKey: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.endpoint, "eu-central", tt.accessKey, tt.secretKey, "site", "")
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if c != nil {
				t.Error("expected nil client when storage is not configured")
			}
		})
	}
}

func TestNewRequiresBucket(t *testing.T) {
	if _, err := New("https://s3.example.com", "eu-central", "a", "s", "", ""); err == nil {
		t.Error("expected error when bucket is empty")
	}
}

func TestFileURL(t *testing.T) {
	tests := []struct {
		name      string
		endpoint  string
		publicURL string
		key       string
		want      string
	}{
		{
			name:     "path style",
			endpoint: "https://s3.example.com/",
			key:      "organisers/organiser-fey.jpg",
			want:     "https://s3.example.com/site/organisers/organiser-fey.jpg",
		},
		{
			name:      "public url",
			endpoint:  "https://s3.example.com",
			publicURL: "https://cdn.example.com/",
			key:       "blog/cover.jpg",
			want:      "https://cdn.example.com/blog/cover.jpg",
		},
		{
			name:      "leading slash in key",
			endpoint:  "https://s3.example.com",
			publicURL: "https://cdn.example.com",
			key:       "/blog/cover.jpg",
			want:      "https://cdn.example.com/blog/cover.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.endpoint, "eu-central", "access", "secret", "site", tt.publicURL)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := c.FileURL(tt.key); got != tt.want {
				t.Errorf("FileURL(%q) = %q, want %q", tt.key, got, tt.want)
			}
			if c.Bucket() != "site" {
				t.Errorf("Bucket() = %q, want site", c.Bucket())
			}
		})
	}
}
