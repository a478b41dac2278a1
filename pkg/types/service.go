package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxServices is the number of distinct service codes available.
const MaxServices = 1000

// Service is something the business sells, such as a manicure. The Code is
// assigned when the service is first added and never changes afterwards.
type Service struct {
	Code     string          `json:"code" validate:"omitempty,servicecode"`
	Title    string          `json:"title" validate:"required,max=100"`
	Duration decimal.Decimal `json:"duration"`
	Price    decimal.Decimal `json:"price"`
}

// IsSame reports whether both services share a code, or have the same title
// ignoring case.
func (s Service) IsSame(other Service) bool {
	if s.Code != "" && s.Code == other.Code {
		return true
	}
	return SameText(s.Title, other.Title)
}

// FormatServiceCode returns the code for the n-th service, e.g. SC007.
func FormatServiceCode(n int) string {
	return fmt.Sprintf("SC%03d", n)
}

func (s Service) String() string {
	return fmt.Sprintf("%s %s; Duration: %s hrs; Price: %s",
		s.Code, s.Title, s.Duration.String(), FormatAmount(s.Price))
}
