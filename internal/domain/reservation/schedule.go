package reservation

import "time"

// ===============================
// Booking rules
// ===============================

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	BookingWindowDays = 60

	MinPartySize = 1
	MaxPartySize = 8

	MinNameLen  = 2
	MaxNameLen  = 50
	MinPhoneLen = 10
	MaxPhoneLen = 15
)

// ServiceTimes is the fixed set of bookable half-hour dinner slots.
var ServiceTimes = []string{
	"17:00",
	"17:30",
	"18:00",
	"18:30",
	"19:00",
	"19:30",
	"20:00",
	"20:30",
	"21:00",
	"21:30",
}

func IsServiceTime(hm string) bool {
	for _, t := range ServiceTimes {
		if t == hm {
			return true
		}
	}
	return false
}

func IsValidPartySize(n int) bool {
	return n >= MinPartySize && n <= MaxPartySize
}

// WithinBookingWindow reports whether date falls between today and
// today+BookingWindowDays, inclusive. Both are compared at day precision.
func WithinBookingWindow(date, today time.Time) bool {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}

	d := day(date)
	start := day(today)
	end := start.AddDate(0, 0, BookingWindowDays)

	return !d.Before(start) && !d.After(end)
}

// FormatDateLong renders a stored YYYY-MM-DD date the way it appears in
// customer emails, e.g. "January 2, 2006". Falls back to the raw value when
// the stored date does not parse.
func FormatDateLong(dateStr string) string {
	d, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return dateStr
	}
	return d.Format("January 2, 2006")
}
