package types

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringFields(t *testing.T) {
	tests := []struct {
		name    string
		parse   func(string) (string, error)
		input   string
		want    string
		wantErr error
	}{
		{name: "name trimmed", parse: ParseName, input: "  Alice Tan ", want: "Alice Tan"},
		{name: "name blank", parse: ParseName, input: "   ", wantErr: ErrInvalidName},
		{name: "name with symbol", parse: ParseName, input: "Alice*", wantErr: ErrInvalidName},
		{name: "phone digits", parse: ParsePhone, input: "91234567", want: "91234567"},
		{name: "phone too short", parse: ParsePhone, input: "12", wantErr: ErrInvalidPhone},
		{name: "phone with letters", parse: ParsePhone, input: "9123a567", wantErr: ErrInvalidPhone},
		{name: "phone with sign", parse: ParsePhone, input: "-9123", wantErr: ErrInvalidPhone},
		{name: "email valid", parse: ParseEmail, input: "alice@example.com", want: "alice@example.com"},
		{name: "email missing domain", parse: ParseEmail, input: "alice@", wantErr: ErrInvalidEmail},
		{name: "tag alphanumeric", parse: ParseTag, input: "vip", want: "vip"},
		{name: "tag with space", parse: ParseTag, input: "very important", wantErr: ErrInvalidTag},
		{name: "title valid", parse: ParseTitle, input: "Manicure", want: "Manicure"},
		{name: "title blank", parse: ParseTitle, input: "", wantErr: ErrInvalidTitle},
		{name: "description valid", parse: ParseDescription, input: "Nail polish", want: "Nail polish"},
		{name: "service code valid", parse: ParseServiceCode, input: "SC007", want: "SC007"},
		{name: "service code lowercase", parse: ParseServiceCode, input: "sc007", wantErr: ErrInvalidServiceCode},
		{name: "service code too long", parse: ParseServiceCode, input: "SC0007", wantErr: ErrInvalidServiceCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTagsDropsRepeats(t *testing.T) {
	tags, err := ParseTags([]string{"vip", "regular", "vip"})
	require.NoError(t, err)
	assert.Equal(t, []string{"vip", "regular"}, tags)

	_, err = ParseTags([]string{"vip", "bad tag"})
	assert.ErrorIs(t, err, ErrInvalidTag)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "10", want: "10"},
		{input: "10.50", want: "10.5"},
		{input: "0", want: "0"},
		{input: "-1", wantErr: true},
		{input: "1.234", wantErr: true},
		{input: "ten", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParsePositiveAmount(t *testing.T) {
	got, err := ParsePositiveAmount("0.01")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.01").Equal(got))

	for _, bad := range []string{"0", "0.00", "-3", "1.234", "abc"} {
		_, err := ParsePositiveAmount(bad)
		assert.ErrorIs(t, err, ErrInvalidAmount, bad)
	}
}

func TestParseDuration(t *testing.T) {
	for _, ok := range []string{"0.5", "1", "1.5", "12"} {
		_, err := ParseDuration(ok)
		assert.NoError(t, err, ok)
	}
	for _, bad := range []string{"0", "0.25", "1.2", "12.5", "x"} {
		_, err := ParseDuration(bad)
		assert.ErrorIs(t, err, ErrInvalidDuration, bad)
	}
}

func TestParseDateAndTime(t *testing.T) {
	d, err := ParseDate("28-10-2026")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.October, 28, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("31-02-2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = ParseDate("2026-10-28")
	assert.ErrorIs(t, err, ErrInvalidDate)

	offset, err := ParseTimeOfDay("1430")
	require.NoError(t, err)
	assert.Equal(t, 14*time.Hour+30*time.Minute, offset)

	_, err = ParseTimeOfDay("2460")
	assert.ErrorIs(t, err, ErrInvalidTime)
	_, err = ParseTimeOfDay("930")
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestParseFixedMonthYear(t *testing.T) {
	fixed, err := ParseFixed("Y")
	require.NoError(t, err)
	assert.True(t, fixed)
	fixed, err = ParseFixed("n")
	require.NoError(t, err)
	assert.False(t, fixed)
	_, err = ParseFixed("maybe")
	assert.ErrorIs(t, err, ErrInvalidFixed)

	m, err := ParseMonth("12")
	require.NoError(t, err)
	assert.Equal(t, time.December, m)
	_, err = ParseMonth("13")
	assert.ErrorIs(t, err, ErrInvalidMonth)

	y, err := ParseYear("2026")
	require.NoError(t, err)
	assert.Equal(t, 2026, y)
	_, err = ParseYear("26")
	assert.ErrorIs(t, err, ErrInvalidYear)
}

func TestValidateEntity(t *testing.T) {
	assert.NoError(t, Validate(Client{Name: "Alice", Phone: "91234567", Email: "a@b.com"}))
	assert.ErrorIs(t, Validate(Client{Name: "Alice", Phone: "x", Email: "a@b.com"}), ErrInvalidData)
	assert.ErrorIs(t, Validate(Service{Code: "bad", Title: "Manicure"}), ErrInvalidData)
}

func TestSameText(t *testing.T) {
	assert.True(t, SameText("Lash Lift", "lash lift"))
	assert.True(t, SameText(" Manicure", "MANICURE "))
	assert.True(t, SameText("Straße", "STRASSE"))
	assert.False(t, SameText("Manicure", "Pedicure"))
}
