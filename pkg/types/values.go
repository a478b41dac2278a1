package types

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Input layouts for dates and times of day.
const (
	DateLayout = "02-01-2006"
	TimeLayout = "1504"
)

// Field value errors. Each message states the constraint the value broke so
// it can be shown to the user unchanged.
var (
	ErrInvalidName        = errors.New("names should only contain alphanumeric characters and spaces, and should not be blank")
	ErrInvalidPhone       = errors.New("phone numbers should only contain digits, and be 3 to 15 digits long")
	ErrInvalidEmail       = errors.New("emails should be of the format local-part@domain")
	ErrInvalidTag         = errors.New("tag names should be alphanumeric and at most 30 characters")
	ErrInvalidTitle       = errors.New("titles should not be blank and be at most 100 characters")
	ErrInvalidDescription = errors.New("descriptions should not be blank and be at most 200 characters")
	ErrInvalidDuration    = errors.New("durations are in hours, in steps of 0.5, between 0.5 and 12")
	ErrInvalidAmount      = errors.New("amounts should be non-negative numbers with at most 2 decimal places")
	ErrInvalidDate        = errors.New("dates should be valid and of the format dd-MM-yyyy")
	ErrInvalidTime        = errors.New("times should be valid and of the format HHmm")
	ErrInvalidServiceCode = errors.New("service codes should be of the format SC followed by 3 digits")
	ErrInvalidFixed       = errors.New("fixed flags should be either y or n")
	ErrInvalidMonth       = errors.New("months should be numbers between 1 and 12")
	ErrInvalidYear        = errors.New("years should be 4-digit numbers")
	ErrInvalidData        = errors.New("invalid entity data")
)

var (
	personNamePattern  = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	serviceCodePattern = regexp.MustCompile(`^SC\d{3}$`)
)

var validate = newValidator()

// newValidator returns a validator with the homebiz-specific tags registered.
func newValidator() *validator.Validate {
	v := validator.New()
	custom := map[string]*regexp.Regexp{
		"personname":  personNamePattern,
		"servicecode": serviceCodePattern,
	}
	for tag, pattern := range custom {
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return pattern.MatchString(fl.Field().String())
		})
		if err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}
	return v
}

// Validate checks the struct tags of an entity value. It is used when
// entities enter the system from somewhere other than the field parsers.
func Validate(entity any) error {
	if err := validate.Struct(entity); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return nil
}

// checkVar trims s, validates it against tag, and returns the trimmed value
// or sentinel.
func checkVar(s, tag string, sentinel error) (string, error) {
	s = strings.TrimSpace(s)
	if err := validate.Var(s, tag); err != nil {
		return "", sentinel
	}
	return s, nil
}

// ParseName validates a client name.
func ParseName(s string) (string, error) {
	return checkVar(s, "required,max=100,personname", ErrInvalidName)
}

// ParsePhone validates a phone number.
func ParsePhone(s string) (string, error) {
	return checkVar(s, "required,number,min=3,max=15", ErrInvalidPhone)
}

// ParseEmail validates an email address.
func ParseEmail(s string) (string, error) {
	return checkVar(s, "required,email,max=254", ErrInvalidEmail)
}

// ParseTag validates a single tag.
func ParseTag(s string) (string, error) {
	return checkVar(s, "required,alphanum,max=30", ErrInvalidTag)
}

// ParseTags validates every tag and drops repeats, keeping first occurrences
// in order. No tags yields nil.
func ParseTags(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	seen := make(map[string]bool, len(raw))
	tags := make([]string, 0, len(raw))
	for _, r := range raw {
		tag, err := ParseTag(r)
		if err != nil {
			return nil, err
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags, nil
}

// ParseTitle validates a service title.
func ParseTitle(s string) (string, error) {
	return checkVar(s, "required,max=100", ErrInvalidTitle)
}

// ParseDescription validates an expense description.
func ParseDescription(s string) (string, error) {
	return checkVar(s, "required,max=200", ErrInvalidDescription)
}

// ParseServiceCode validates a service code such as SC007.
func ParseServiceCode(s string) (string, error) {
	return checkVar(s, "required,servicecode", ErrInvalidServiceCode)
}

// ParseAmount parses a money amount. Negative values and more than two
// decimal places are rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	s, err := checkVar(s, "required,max=20", ErrInvalidAmount)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() || d.Exponent() < -2 {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// ParsePositiveAmount parses a money amount that must be greater than zero.
func ParsePositiveAmount(s string) (decimal.Decimal, error) {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

var (
	halfHour    = decimal.RequireFromString("0.5")
	maxDuration = decimal.NewFromInt(12)
)

// ParseDuration parses a service duration in hours.
func ParseDuration(s string) (decimal.Decimal, error) {
	s, err := checkVar(s, "required,max=10", ErrInvalidDuration)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.LessThan(halfHour) || d.GreaterThan(maxDuration) {
		return decimal.Zero, ErrInvalidDuration
	}
	if !d.Mod(halfHour).IsZero() {
		return decimal.Zero, ErrInvalidDuration
	}
	return d, nil
}

// ParseDate parses a dd-MM-yyyy date. The result is midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s, err := checkVar(s, "required,datetime="+DateLayout, ErrInvalidDate)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseTimeOfDay parses an HHmm time and returns the offset from midnight.
func ParseTimeOfDay(s string) (time.Duration, error) {
	s, err := checkVar(s, "required,len=4,datetime="+TimeLayout, ErrInvalidTime)
	if err != nil {
		return 0, err
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, ErrInvalidTime
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// ParseFixed parses a y/n flag.
func ParseFixed(s string) (bool, error) {
	s, err := checkVar(strings.ToLower(s), "required,oneof=y n", ErrInvalidFixed)
	if err != nil {
		return false, err
	}
	return s == "y", nil
}

// ParseMonth parses a month number.
func ParseMonth(s string) (time.Month, error) {
	n, err := parseBoundedInt(s, "min=1,max=12", ErrInvalidMonth)
	return time.Month(n), err
}

// ParseYear parses a four-digit year.
func ParseYear(s string) (int, error) {
	return parseBoundedInt(s, "min=1000,max=9999", ErrInvalidYear)
}

func parseBoundedInt(s, tag string, sentinel error) (int, error) {
	s, err := checkVar(s, "required,number", sentinel)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, sentinel
	}
	if err := validate.Var(n, tag); err != nil {
		return 0, sentinel
	}
	return n, nil
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t with DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTime renders the time of day of t with TimeLayout.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// FormatAmount renders a money amount with two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
