package service

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foxzi/contentd/internal/repository"
)

var campaignCols = []string{"id", "title", "description", "image_url", "link", "is_active", "valid_from", "valid_until", "created_at", "updated_at"}

func newCampaignService(t *testing.T) (*CampaignService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewCampaignRepository(db)
	return NewCampaignService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), mock
}

func TestCampaignList(t *testing.T) {
	svc, mock := newCampaignService(t)

	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM campaigns`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(`SELECT .+ FROM campaigns`).
		WithArgs(5, 5).
		WillReturnRows(sqlmock.NewRows(campaignCols).
			AddRow(10, "Campaign Ten", "desc", "https://cdn.example.com/10.png", "https://example.com/10", true, nil, nil, created, created).
			AddRow(9, "Campaign Nine", "desc", "https://cdn.example.com/9.png", "https://example.com/9", true, nil, nil, created, created))

	// Page 2 of size 5 translates to offset 5.
	campaigns, total, err := svc.List(2, 5)
	require.NoError(t, err)

	assert.Equal(t, 25, total)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "10", campaigns[0].ID)
	assert.Equal(t, "Campaign Ten", campaigns[0].Title)
	assert.Equal(t, "https://cdn.example.com/10.png", campaigns[0].ImageURL)
	assert.True(t, campaigns[0].IsActive)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignGetByID(t *testing.T) {
	svc, mock := newCampaignService(t)

	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .+ FROM campaigns WHERE id = \? AND is_active = 1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(campaignCols).
			AddRow(7, "Summer Sale", "big discounts", "", "", true, nil, nil, created, created))

	c, err := svc.GetByID(7)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "7", c.ID)
	assert.Equal(t, "Summer Sale", c.Title)
}

func TestCampaignGetByIDAbsent(t *testing.T) {
	svc, mock := newCampaignService(t)

	mock.ExpectQuery(`SELECT .+ FROM campaigns WHERE id = \? AND is_active = 1`).
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows(campaignCols))

	c, err := svc.GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCampaignCheckValidity(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	created := now.AddDate(0, -1, 0)

	tests := []struct {
		name       string
		active     bool
		validFrom  any
		validUntil any
		wantStatus string
		wantValid  bool
		wantReason string
	}{
		{
			name:       "inside window",
			active:     true,
			validFrom:  now.AddDate(0, 0, -1),
			validUntil: now.AddDate(0, 0, 30),
			wantStatus: "VALID",
			wantValid:  true,
			wantReason: "campaign is currently valid",
		},
		{
			name:       "expired",
			active:     true,
			validFrom:  now.AddDate(0, 0, -30),
			validUntil: now.AddDate(0, 0, -1),
			wantStatus: "EXPIRED",
			wantValid:  false,
			wantReason: "campaign has ended",
		},
		{
			name:       "not started",
			active:     true,
			validFrom:  now.AddDate(0, 0, 1),
			validUntil: now.AddDate(0, 0, 30),
			wantStatus: "NOT_STARTED",
			wantValid:  false,
			wantReason: "campaign has not started yet",
		},
		{
			name:       "inactive wins over open window",
			active:     false,
			validFrom:  now.AddDate(0, 0, -1),
			validUntil: now.AddDate(0, 0, 30),
			wantStatus: "INACTIVE",
			wantValid:  false,
			wantReason: "campaign has been deactivated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mock := newCampaignService(t)
			svc.now = func() time.Time { return now }

			mock.ExpectQuery(`SELECT .+ FROM campaigns WHERE id = \?`).
				WithArgs(int64(42)).
				WillReturnRows(sqlmock.NewRows(campaignCols).
					AddRow(42, "Summer Sale", "", "", "", tt.active, tt.validFrom, tt.validUntil, created, created))

			resp, err := svc.CheckValidity(42)
			require.NoError(t, err)

			assert.Equal(t, "42", resp.CampaignID)
			assert.Equal(t, "Summer Sale", resp.Title)
			assert.Equal(t, tt.wantStatus, resp.ValidityStatus)
			assert.Equal(t, tt.wantValid, resp.IsValid)
			assert.Equal(t, tt.wantReason, resp.Reason)
			require.NotNil(t, resp.ValidFrom)
			assert.Equal(t, tt.validFrom, *resp.ValidFrom)
		})
	}
}

func TestCampaignCheckValidityNotFound(t *testing.T) {
	svc, mock := newCampaignService(t)

	mock.ExpectQuery(`SELECT .+ FROM campaigns WHERE id = \?`).
		WithArgs(int64(999999)).
		WillReturnRows(sqlmock.NewRows(campaignCols))

	resp, err := svc.CheckValidity(999999)
	require.NoError(t, err)

	assert.Equal(t, "999999", resp.CampaignID)
	assert.Equal(t, "unknown", resp.Title)
	assert.Equal(t, "NOT_FOUND", resp.ValidityStatus)
	assert.False(t, resp.IsValid)
	assert.Equal(t, "specified campaign does not exist", resp.Reason)
	assert.Nil(t, resp.ValidFrom)
	assert.Nil(t, resp.ValidUntil)
}
