package validity

import (
	"strconv"
	"testing"
	"time"

	"github.com/foxzi/contentd/internal/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func tp(t time.Time) *time.Time {
	return &t
}

func campaign(active bool, from, until *time.Time) *models.Campaign {
	return &models.Campaign{
		ID:         42,
		Title:      "Summer Sale",
		IsActive:   active,
		ValidFrom:  from,
		ValidUntil: until,
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		campaign   *models.Campaign
		wantStatus Status
		wantValid  bool
	}{
		{
			name:       "open window",
			campaign:   campaign(true, tp(testNow.AddDate(0, 0, -1)), tp(testNow.AddDate(0, 0, 30))),
			wantStatus: StatusValid,
			wantValid:  true,
		},
		{
			name:       "ended yesterday",
			campaign:   campaign(true, tp(testNow.AddDate(0, 0, -30)), tp(testNow.AddDate(0, 0, -1))),
			wantStatus: StatusExpired,
			wantValid:  false,
		},
		{
			name:       "starts tomorrow",
			campaign:   campaign(true, tp(testNow.AddDate(0, 0, 1)), tp(testNow.AddDate(0, 0, 30))),
			wantStatus: StatusNotStarted,
			wantValid:  false,
		},
		{
			name:       "deactivated inside open window",
			campaign:   campaign(false, tp(testNow.AddDate(0, 0, -1)), tp(testNow.AddDate(0, 0, 30))),
			wantStatus: StatusInactive,
			wantValid:  false,
		},
		{
			name:       "deactivated with no window",
			campaign:   campaign(false, nil, nil),
			wantStatus: StatusInactive,
			wantValid:  false,
		},
		{
			name:       "deactivated before start takes precedence",
			campaign:   campaign(false, tp(testNow.AddDate(0, 0, 1)), nil),
			wantStatus: StatusInactive,
			wantValid:  false,
		},
		{
			name:       "active with no window is always valid",
			campaign:   campaign(true, nil, nil),
			wantStatus: StatusValid,
			wantValid:  true,
		},
		{
			name:       "unbounded start",
			campaign:   campaign(true, nil, tp(testNow.AddDate(0, 0, 30))),
			wantStatus: StatusValid,
			wantValid:  true,
		},
		{
			name:       "unbounded end",
			campaign:   campaign(true, tp(testNow.AddDate(0, 0, -30)), nil),
			wantStatus: StatusValid,
			wantValid:  true,
		},
		{
			name:       "starts exactly now",
			campaign:   campaign(true, tp(testNow), tp(testNow.AddDate(0, 0, 30))),
			wantStatus: StatusValid,
			wantValid:  true,
		},
		{
			name:       "ends exactly now",
			campaign:   campaign(true, tp(testNow.AddDate(0, 0, -30)), tp(testNow)),
			wantStatus: StatusValid,
			wantValid:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.campaign, testNow, tt.campaign.ID)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v", got.Status, tt.wantStatus)
			}
			if got.IsValid != tt.wantValid {
				t.Errorf("IsValid = %v, want %v", got.IsValid, tt.wantValid)
			}
			if got.CampaignID != "42" {
				t.Errorf("CampaignID = %q, want %q", got.CampaignID, "42")
			}
			if got.Title != "Summer Sale" {
				t.Errorf("Title = %q, want %q", got.Title, "Summer Sale")
			}
			if got.Reason != tt.wantStatus.Reason() {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantStatus.Reason())
			}
		})
	}
}

func TestEvaluateNotFound(t *testing.T) {
	for _, id := range []int64{1, 999999} {
		got := Evaluate(nil, testNow, id)

		if got.Status != StatusNotFound {
			t.Errorf("Status = %v, want %v", got.Status, StatusNotFound)
		}
		if got.IsValid {
			t.Error("IsValid = true, want false")
		}
		if want := "unknown"; got.Title != want {
			t.Errorf("Title = %q, want %q", got.Title, want)
		}
		if want := strconv.FormatInt(id, 10); got.CampaignID != want {
			t.Errorf("CampaignID = %q, want %q", got.CampaignID, want)
		}
		if got.ValidFrom != nil || got.ValidUntil != nil {
			t.Error("expected absent validity window for missing campaign")
		}
	}
}

// TestEvaluateConsistency runs the full combination grid of inputs and
// checks that IsValid and Reason always agree with Status.
func TestEvaluateConsistency(t *testing.T) {
	past := tp(testNow.AddDate(0, 0, -7))
	future := tp(testNow.AddDate(0, 0, 7))
	bounds := []*time.Time{nil, past, future}

	for _, active := range []bool{true, false} {
		for _, from := range bounds {
			for _, until := range bounds {
				got := Evaluate(campaign(active, from, until), testNow, 42)

				if got.IsValid != (got.Status == StatusValid) {
					t.Errorf("active=%v from=%v until=%v: IsValid=%v disagrees with Status=%v",
						active, from, until, got.IsValid, got.Status)
				}
				if got.Reason != got.Status.Reason() {
					t.Errorf("active=%v from=%v until=%v: Reason=%q disagrees with Status=%v",
						active, from, until, got.Reason, got.Status)
				}
				if got.ValidFrom != from || got.ValidUntil != until {
					t.Errorf("active=%v from=%v until=%v: window not echoed", active, from, until)
				}
			}
		}
	}
}

func TestStatusReason(t *testing.T) {
	want := map[Status]string{
		StatusValid:      "campaign is currently valid",
		StatusInactive:   "campaign has been deactivated",
		StatusNotStarted: "campaign has not started yet",
		StatusExpired:    "campaign has ended",
		StatusNotFound:   "specified campaign does not exist",
	}

	for status, reason := range want {
		if got := status.Reason(); got != reason {
			t.Errorf("Reason(%v) = %q, want %q", status, got, reason)
		}
	}
}
