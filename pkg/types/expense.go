package types

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Expense is money spent by the business. Fixed expenses recur monthly.
type Expense struct {
	Description string          `json:"description" validate:"required,max=200"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Fixed       bool            `json:"fixed"`
	Tags        []string        `json:"tags,omitempty" validate:"dive,alphanum,max=30"`
}

// IsSame reports whether both expenses have the same description (ignoring
// case), amount and date. Fixed and Tags are not part of the identity.
func (e Expense) IsSame(other Expense) bool {
	return SameText(e.Description, other.Description) &&
		e.Amount.Equal(other.Amount) &&
		e.Date.Equal(other.Date)
}

// HasTag reports whether the expense carries tag (case-insensitive).
func (e Expense) HasTag(tag string) bool {
	return slices.ContainsFunc(e.Tags, func(t string) bool {
		return SameText(t, tag)
	})
}

// InMonth reports whether the expense counts towards the given month. Fixed
// expenses count in every month from their date onwards.
func (e Expense) InMonth(month time.Month, year int) bool {
	if e.Fixed {
		start := time.Date(e.Date.Year(), e.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		return !time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Before(start)
	}
	return e.Date.Month() == month && e.Date.Year() == year
}

func (e Expense) String() string {
	kind := "one-off"
	if e.Fixed {
		kind = "fixed"
	}
	return fmt.Sprintf("%s; Amount: %s; Date: %s; %s; Tags: %v",
		e.Description, FormatAmount(e.Amount), FormatDate(e.Date), kind, e.Tags)
}
