// Package validity classifies the current state of a campaign from its
// active flag and optional validity window. Evaluation is pure: no I/O,
// no clock access, safe to call from any number of goroutines.
package validity

import (
	"strconv"
	"time"

	"github.com/foxzi/contentd/internal/models"
)

// Status is the closed set of classification outcomes.
type Status string

const (
	StatusValid      Status = "VALID"
	StatusInactive   Status = "INACTIVE"
	StatusNotStarted Status = "NOT_STARTED"
	StatusExpired    Status = "EXPIRED"
	StatusNotFound   Status = "NOT_FOUND"
)

// reasons maps each status to its display reason. Reason and the IsValid
// flag of a Result are both derived from the status alone, so the fields
// cannot drift apart.
var reasons = map[Status]string{
	StatusValid:      "campaign is currently valid",
	StatusInactive:   "campaign has been deactivated",
	StatusNotStarted: "campaign has not started yet",
	StatusExpired:    "campaign has ended",
	StatusNotFound:   "specified campaign does not exist",
}

// Reason returns the human-readable reason for the status.
func (s Status) Reason() string {
	return reasons[s]
}

// IsValid reports whether the status marks the campaign as currently valid.
func (s Status) IsValid() bool {
	return s == StatusValid
}

// Result is the outcome of evaluating one campaign at a point in time.
// It is computed per request and never persisted.
type Result struct {
	CampaignID string
	Title      string
	IsValid    bool
	Status     Status
	ValidFrom  *time.Time
	ValidUntil *time.Time
	Reason     string
}

// unknownTitle is echoed when the requested campaign does not exist.
const unknownTitle = "unknown"

// Evaluate classifies campaign c as of now. A nil campaign means the
// requested id was not found in storage; id is still needed to populate
// the result in that case.
//
// Rules are checked in order and the first match wins: not found, then
// deactivated, then not started, then expired, otherwise valid. The
// window is closed on both ends: now == ValidFrom and now == ValidUntil
// both count as inside it.
func Evaluate(c *models.Campaign, now time.Time, id int64) Result {
	if c == nil {
		return newResult(StatusNotFound, strconv.FormatInt(id, 10), unknownTitle, nil, nil)
	}
	return newResult(classify(c, now), strconv.FormatInt(c.ID, 10), c.Title, c.ValidFrom, c.ValidUntil)
}

func classify(c *models.Campaign, now time.Time) Status {
	switch {
	case !c.IsActive:
		return StatusInactive
	case c.ValidFrom != nil && now.Before(*c.ValidFrom):
		return StatusNotStarted
	case c.ValidUntil != nil && now.After(*c.ValidUntil):
		return StatusExpired
	default:
		return StatusValid
	}
}

func newResult(status Status, id, title string, from, until *time.Time) Result {
	return Result{
		CampaignID: id,
		Title:      title,
		IsValid:    status.IsValid(),
		Status:     status,
		ValidFrom:  from,
		ValidUntil: until,
		Reason:     status.Reason(),
	}
}
