package db

import (
	"fmt"
	"time"
)

// Seed inserts demo content for local development. Seeding is skipped
// when the campaigns table already has rows.
func (db *DB) Seed() (bool, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM campaigns").Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check existing data: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	now := time.Now()

	campaigns := []struct {
		title, description, imageURL, link string
		isActive                           bool
		validFrom, validUntil              *time.Time
	}{
		{
			title:       "Spring Signup Campaign",
			description: "Sign up this spring and get your first month free.",
			imageURL:    "https://cdn.example.com/campaigns/spring.png",
			link:        "https://example.com/campaigns/spring",
			isActive:    true,
			validFrom:   tp(now.AddDate(0, -1, 0)),
			validUntil:  tp(now.AddDate(0, 2, 0)),
		},
		{
			title:       "Device Upgrade Discount",
			description: "Up to 50% off selected devices for existing subscribers.",
			imageURL:    "https://cdn.example.com/campaigns/devices.png",
			link:        "https://example.com/campaigns/devices",
			isActive:    true,
		},
		{
			title:       "Winter Data Bonus",
			description: "Extra 20GB during the winter holidays.",
			imageURL:    "https://cdn.example.com/campaigns/winter.png",
			link:        "https://example.com/campaigns/winter",
			isActive:    true,
			validFrom:   tp(now.AddDate(0, 3, 0)),
			validUntil:  tp(now.AddDate(0, 5, 0)),
		},
		{
			title:       "Legacy Referral Program",
			description: "Refer a friend and both get account credit.",
			imageURL:    "https://cdn.example.com/campaigns/referral.png",
			link:        "https://example.com/campaigns/referral",
			isActive:    false,
		},
	}

	for _, c := range campaigns {
		_, err := db.Exec(`
			INSERT INTO campaigns (title, description, image_url, link, is_active, valid_from, valid_until, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.title, c.description, c.imageURL, c.link, c.isActive, c.validFrom, c.validUntil, now, now,
		)
		if err != nil {
			return false, fmt.Errorf("failed to seed campaigns: %w", err)
		}
	}

	news := []struct {
		title, content, link string
		publishedDate        time.Time
		isPublished          bool
	}{
		{
			title:         "Planned Network Maintenance",
			content:       "Maintenance is scheduled for the core network this weekend.",
			link:          "https://example.com/news/maintenance",
			publishedDate: now.AddDate(0, 0, -2),
			isPublished:   true,
		},
		{
			title:         "New Support Hours",
			content:       "Chat support is now available around the clock.",
			link:          "https://example.com/news/support-hours",
			publishedDate: now.AddDate(0, 0, -10),
			isPublished:   true,
		},
		{
			title:         "Draft Announcement",
			content:       "Unpublished draft, should never be visible.",
			link:          "https://example.com/news/draft",
			publishedDate: now,
			isPublished:   false,
		},
	}

	for _, n := range news {
		_, err := db.Exec(`
			INSERT INTO news (title, content, link, published_date, is_published, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			n.title, n.content, n.link, n.publishedDate, n.isPublished, now, now,
		)
		if err != nil {
			return false, fmt.Errorf("failed to seed news: %w", err)
		}
	}

	faqs := []struct {
		question, answer, category string
	}{
		{"How do I change my plan?", "Open the app and choose Plan from the account menu.", "PLAN"},
		{"Which devices are supported?", "Any device on the published compatibility list.", "DEVICE"},
		{"How long does sign-up take?", "Most applications complete within a few minutes.", "APPLICATION"},
		{"When is my bill issued?", "Bills are issued on the first business day of each month.", "BILLING"},
		{"Why is my connection slow?", "Check the coverage map for your area first.", "NETWORK"},
	}

	for _, f := range faqs {
		_, err := db.Exec(`
			INSERT INTO faqs (question, answer, category, is_active, created_at, updated_at)
			VALUES (?, ?, ?, 1, ?, ?)`,
			f.question, f.answer, f.category, now, now,
		)
		if err != nil {
			return false, fmt.Errorf("failed to seed faqs: %w", err)
		}
	}

	return true, nil
}

func tp(t time.Time) *time.Time {
	return &t
}
