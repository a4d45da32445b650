// Package slots defines the half-day and full-day time partitions a venue can
// be booked for, and the conflict rule between two bookings on the same date.
package slots

// Slot is a time partition of a calendar date. Day and Night each occupy one
// half of the date; FullDay occupies both.
type Slot string

const (
	Day     Slot = "day"
	Night   Slot = "night"
	FullDay Slot = "full_day"
)

// Parse returns the Slot for s, or false if s is not a known slot value.
func Parse(s string) (Slot, bool) {
	switch Slot(s) {
	case Day, Night, FullDay:
		return Slot(s), true
	}
	return "", false
}

// Valid reports whether s is one of the three known slot values.
func (s Slot) Valid() bool {
	_, ok := Parse(string(s))
	return ok
}

// Conflicts reports whether a booking for the requested slot collides with an
// existing booking on the same date. A full-day booking collides with
// everything, in both directions. Day and Night never collide with each other.
func Conflicts(requested, existing Slot) bool {
	if requested == FullDay || existing == FullDay {
		return true
	}
	return requested == existing
}
