package domain

import (
	"fmt"
	"strconv"
	"time"
)

// PeriodMode selects between per-day and per-month query keys.
type PeriodMode string

const (
	PeriodDaily   PeriodMode = "daily"
	PeriodMonthly PeriodMode = "monthly"
)

// DateLayout is the wire format for daily natural keys.
const DateLayout = "2006-01-02"

// Period holds the concrete query parameters resolved from a reference
// date. Daily periods carry QueryDate; monthly periods carry Month+Year.
type Period struct {
	Mode      PeriodMode
	QueryDate string
	Month     string
	Year      string
}

// ResolvePeriod turns a reference date into query parameters. Dates beyond
// now are rejected site-wide: reports never exist for the future.
func ResolvePeriod(mode PeriodMode, ref, now time.Time) (Period, error) {
	switch mode {
	case PeriodDaily:
		// ISO date strings order lexically, so calendar-day comparison
		// works without normalizing time zones.
		if ref.Format(DateLayout) > now.Format(DateLayout) {
			return Period{}, ErrFutureDate
		}
		return Period{Mode: PeriodDaily, QueryDate: ref.Format(DateLayout)}, nil
	case PeriodMonthly:
		if ref.Format("2006-01") > now.Format("2006-01") {
			return Period{}, ErrFutureDate
		}
		return Period{
			Mode:  PeriodMonthly,
			Month: fmt.Sprintf("%02d", int(ref.Month())),
			Year:  fmt.Sprintf("%04d", ref.Year()),
		}, nil
	default:
		return Period{}, fmt.Errorf("unknown period mode %q", mode)
	}
}

// Today resolves the daily period for the current date.
func Today(now time.Time) Period {
	p, _ := ResolvePeriod(PeriodDaily, now, now)
	return p
}

// Yesterday resolves the daily period for the previous date.
func Yesterday(now time.Time) Period {
	p, _ := ResolvePeriod(PeriodDaily, now.AddDate(0, 0, -1), now)
	return p
}

// ThisMonth resolves the monthly period for the current month.
func ThisMonth(now time.Time) Period {
	p, _ := ResolvePeriod(PeriodMonthly, now, now)
	return p
}

// ParseDate parses and validates a daily natural-key date string,
// rejecting empty, malformed and future dates.
func ParseDate(value string, now time.Time) (string, error) {
	if value == "" {
		return "", ErrMissingKey
	}
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return "", ErrInvalidDate
	}
	if _, err := ResolvePeriod(PeriodDaily, d, now); err != nil {
		return "", err
	}
	return d.Format(DateLayout), nil
}

// ParseMonthYear validates monthly natural-key segments, normalizing the
// month to two digits.
func ParseMonthYear(month, year string, now time.Time) (string, string, error) {
	if month == "" || year == "" {
		return "", "", ErrMissingKey
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return "", "", ErrInvalidMonth
	}
	y, err := strconv.Atoi(year)
	if err != nil || y < 2000 || y > 9999 {
		return "", "", ErrInvalidYear
	}
	t := time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
	if t.Format("2006-01") > now.Format("2006-01") {
		return "", "", ErrFutureDate
	}
	return fmt.Sprintf("%02d", m), fmt.Sprintf("%04d", y), nil
}
