package models

import (
	"strings"
	"time"
)

// ContactCategory is the closed set of inquiry categories accepted on
// contact submission.
type ContactCategory string

const (
	ContactCategoryPlan        ContactCategory = "PLAN"
	ContactCategoryDevice      ContactCategory = "DEVICE"
	ContactCategoryApplication ContactCategory = "APPLICATION"
	ContactCategorySupport     ContactCategory = "SUPPORT"
	ContactCategoryOther       ContactCategory = "OTHER"
)

// ContactCategories lists all known categories in display order.
var ContactCategories = []ContactCategory{
	ContactCategoryPlan,
	ContactCategoryDevice,
	ContactCategoryApplication,
	ContactCategorySupport,
	ContactCategoryOther,
}

var contactCategoryNames = map[ContactCategory]string{
	ContactCategoryPlan:        "Pricing plans",
	ContactCategoryDevice:      "Devices",
	ContactCategoryApplication: "Applications",
	ContactCategorySupport:     "Support",
	ContactCategoryOther:       "Other",
}

// ParseContactCategory matches a client-supplied category string against
// the known categories, case-insensitively. ok is false for unknown values.
func ParseContactCategory(s string) (ContactCategory, bool) {
	c := ContactCategory(strings.ToUpper(strings.TrimSpace(s)))
	_, known := contactCategoryNames[c]
	return c, known
}

// Code returns the lower-case category code used in API payloads.
func (c ContactCategory) Code() string {
	return strings.ToLower(string(c))
}

// DisplayName returns the human-readable category name.
func (c ContactCategory) DisplayName() string {
	return contactCategoryNames[c]
}

// ContactStatus tracks the back-office lifecycle of a submission. This
// API only ever creates records in StatusReceived; the later states are
// advanced by out-of-band processes.
type ContactStatus string

const (
	ContactStatusReceived   ContactStatus = "RECEIVED"
	ContactStatusProcessing ContactStatus = "PROCESSING"
	ContactStatusCompleted  ContactStatus = "COMPLETED"
)

// Contact represents an inbound contact submission.
type Contact struct {
	ID                    int64           `json:"id"`
	Name                  string          `json:"name"`
	Email                 string          `json:"email"`
	Phone                 string          `json:"phone,omitempty"`
	Category              ContactCategory `json:"category"`
	Message               string          `json:"message"`
	Status                ContactStatus   `json:"status"`
	EstimatedResponseTime string          `json:"estimated_response_time"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}
