// Package availability computes which calendar dates are unavailable for a
// requested slot, given a venue's bookings. Only approved bookings block; the
// computation is pure and is re-run in full on every request, there is no
// incremental cache.
package availability

import (
	"sort"
	"time"

	"bling/models"
	"bling/slots"
)

const dateLayout = "2006-01-02"

// DateKey normalizes a timestamp to its calendar date. Bookings are stored at
// a fixed reference time, but anything on the same UTC day maps to one key.
func DateKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// ParseDateKey parses a YYYY-MM-DD key back into a UTC midnight time.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(dateLayout, key)
}

// ComputeBlockedDates returns the set of dates, keyed YYYY-MM-DD, that must be
// rejected for the requested slot. Callers are expected to pass bookings
// already filtered to approved ones for a single venue, but the status filter
// is applied again here so an unfiltered caller cannot leak pending or
// declined dates into the blocked set. Malformed records (zero date, unknown
// slot) are skipped rather than failing the whole computation.
func ComputeBlockedDates(bookings []models.Booking, requested slots.Slot) map[string]struct{} {
	blocked := make(map[string]struct{})
	for _, b := range bookings {
		if b.Status != models.StatusApproved {
			continue
		}
		if b.Date.IsZero() || !b.Slot.Valid() {
			continue
		}
		if slots.Conflicts(requested, b.Slot) {
			blocked[DateKey(b.Date)] = struct{}{}
		}
	}
	return blocked
}

// BlockedDateList is ComputeBlockedDates flattened to a sorted slice, for JSON
// responses.
func BlockedDateList(bookings []models.Booking, requested slots.Slot) []string {
	blocked := ComputeBlockedDates(bookings, requested)
	list := make([]string, 0, len(blocked))
	for k := range blocked {
		list = append(list, k)
	}
	sort.Strings(list)
	return list
}

// IsBlocked reports whether date is unavailable for the requested slot. Used
// by the submission guard to re-validate a chosen date against freshly
// fetched bookings.
func IsBlocked(bookings []models.Booking, requested slots.Slot, date time.Time) bool {
	_, hit := ComputeBlockedDates(bookings, requested)[DateKey(date)]
	return hit
}
