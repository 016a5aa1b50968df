package models

import (
	"strings"
	"time"
)

// FaqCategory is the closed set of FAQ categories. Values are stored in
// the database under their upper-case name.
type FaqCategory string

const (
	FaqCategoryPlan        FaqCategory = "PLAN"
	FaqCategoryDevice      FaqCategory = "DEVICE"
	FaqCategoryApplication FaqCategory = "APPLICATION"
	FaqCategorySupport     FaqCategory = "SUPPORT"
	FaqCategoryBilling     FaqCategory = "BILLING"
	FaqCategoryNetwork     FaqCategory = "NETWORK"
	FaqCategoryOther       FaqCategory = "OTHER"
)

// FaqCategories lists all known categories in display order.
var FaqCategories = []FaqCategory{
	FaqCategoryPlan,
	FaqCategoryDevice,
	FaqCategoryApplication,
	FaqCategorySupport,
	FaqCategoryBilling,
	FaqCategoryNetwork,
	FaqCategoryOther,
}

var faqCategoryNames = map[FaqCategory]string{
	FaqCategoryPlan:        "Pricing plans",
	FaqCategoryDevice:      "Devices",
	FaqCategoryApplication: "Applications",
	FaqCategorySupport:     "Support",
	FaqCategoryBilling:     "Billing & payments",
	FaqCategoryNetwork:     "Network & coverage",
	FaqCategoryOther:       "Other",
}

// ParseFaqCategory matches a client-supplied category string against the
// known categories, case-insensitively. ok is false for unknown values.
func ParseFaqCategory(s string) (FaqCategory, bool) {
	c := FaqCategory(strings.ToUpper(strings.TrimSpace(s)))
	_, known := faqCategoryNames[c]
	return c, known
}

// Code returns the lower-case category code used in API payloads.
func (c FaqCategory) Code() string {
	return strings.ToLower(string(c))
}

// DisplayName returns the human-readable category name.
func (c FaqCategory) DisplayName() string {
	return faqCategoryNames[c]
}

// Faq represents a frequently-asked question entry.
type Faq struct {
	ID        int64       `json:"id"`
	Question  string      `json:"question"`
	Answer    string      `json:"answer"`
	Category  FaqCategory `json:"category"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
