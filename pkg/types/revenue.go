package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// Revenue is income recorded when an appointment is marked done.
type Revenue struct {
	ServiceCode  string          `json:"service_code" validate:"required,servicecode"`
	ServiceTitle string          `json:"service_title" validate:"required,max=100"`
	ClientPhone  string          `json:"client_phone" validate:"required,number,min=3,max=15"`
	Amount       decimal.Decimal `json:"amount"`
	Start        time.Time       `json:"start"`
}

// NewRevenue records the income from a completed appointment.
func NewRevenue(a Appointment) Revenue {
	return Revenue{
		ServiceCode:  a.Service.Code,
		ServiceTitle: a.Service.Title,
		ClientPhone:  a.Client.Phone,
		Amount:       a.Service.Price,
		Start:        a.Start,
	}
}

// IsSame reports whether both records come from the same service at the
// same start time.
func (r Revenue) IsSame(other Revenue) bool {
	return r.ServiceCode == other.ServiceCode && r.Start.Equal(other.Start)
}

// Date returns the calendar day the revenue was earned.
func (r Revenue) Date() time.Time {
	return DateOnly(r.Start)
}

// InMonth reports whether the revenue was earned in the given month.
func (r Revenue) InMonth(month time.Month, year int) bool {
	return r.Start.Month() == month && r.Start.Year() == year
}

func (r Revenue) String() string {
	return fmt.Sprintf("%s %s; Amount: %s; Date: %s %s; Client: %s",
		r.ServiceCode, r.ServiceTitle, FormatAmount(r.Amount),
		FormatDate(r.Start), FormatTime(r.Start), r.ClientPhone)
}
