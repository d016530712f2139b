package utils

import (
	"fmt"
	"math"
	"time"

	"rentable-backend/internal/domain"
)

// DateLayout is the yyyy-mm-dd wire format for reservation dates.
const DateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a UTC midnight time
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd: %w", err)
	}
	return t, nil
}

// FormatDate renders the calendar date part of t as yyyy-mm-dd
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// TruncateToDate drops the clock part so that day arithmetic is done on calendar dates
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidateRange fails with domain.ErrInvalidRange when end is before start
func ValidateRange(start, end time.Time) error {
	if TruncateToDate(end).Before(TruncateToDate(start)) {
		return fmt.Errorf("%w: start %s, end %s", domain.ErrInvalidRange, FormatDate(start), FormatDate(end))
	}
	return nil
}

// InclusiveDays counts calendar days from start to end, both ends included.
// The result is at least 1.
func InclusiveDays(start, end time.Time) (int, error) {
	if err := ValidateRange(start, end); err != nil {
		return 0, err
	}
	s := TruncateToDate(start)
	e := TruncateToDate(end)
	// Both values are UTC midnights, so the difference is a whole number of days.
	days := int(e.Sub(s).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days, nil
}

// CalculateTotalPrice multiplies the per-day rate by the inclusive day count,
// rounded to cents.
func CalculateTotalPrice(pricePerDay float64, start, end time.Time) (float64, error) {
	if pricePerDay < 0 {
		return 0, fmt.Errorf("%w: negative price per day", domain.ErrInvalidInput)
	}
	days, err := InclusiveDays(start, end)
	if err != nil {
		return 0, err
	}
	return RoundCents(pricePerDay * float64(days)), nil
}

// RoundCents rounds a price to two decimal places
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
