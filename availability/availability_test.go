package availability

import (
	"reflect"
	"testing"
	"time"

	"bling/models"
	"bling/slots"
)

func day(s string) time.Time {
	t, err := ParseDateKey(s)
	if err != nil {
		panic(err)
	}
	return t
}

func booking(date, slot, status string) models.Booking {
	return models.Booking{
		ID:     "b1",
		Date:   day(date),
		Slot:   slots.Slot(slot),
		Status: status,
	}
}

func TestDayRequestIgnoresApprovedNight(t *testing.T) {
	bookings := []models.Booking{booking("2025-06-01", "night", models.StatusApproved)}
	blocked := ComputeBlockedDates(bookings, slots.Day)
	if len(blocked) != 0 {
		t.Fatalf("expected empty blocked set, got %v", blocked)
	}
}

func TestFullDayBlocksEveryRequest(t *testing.T) {
	bookings := []models.Booking{booking("2025-06-01", "full_day", models.StatusApproved)}
	for _, requested := range []slots.Slot{slots.Day, slots.Night, slots.FullDay} {
		blocked := ComputeBlockedDates(bookings, requested)
		if _, ok := blocked["2025-06-01"]; !ok {
			t.Errorf("full_day booking should block a %s request", requested)
		}
	}
}

func TestPendingNeverBlocks(t *testing.T) {
	bookings := []models.Booking{booking("2025-06-01", "day", models.StatusPending)}
	blocked := ComputeBlockedDates(bookings, slots.Day)
	if len(blocked) != 0 {
		t.Fatalf("pending booking must not block, got %v", blocked)
	}
}

func TestDeclinedNeverBlocks(t *testing.T) {
	bookings := []models.Booking{booking("2025-06-01", "day", models.StatusDeclined)}
	blocked := ComputeBlockedDates(bookings, slots.Day)
	if len(blocked) != 0 {
		t.Fatalf("declined booking must not block, got %v", blocked)
	}
}

func TestOnlyConflictingDatesBlocked(t *testing.T) {
	bookings := []models.Booking{
		booking("2025-06-01", "day", models.StatusApproved),
		booking("2025-06-02", "night", models.StatusApproved),
	}
	blocked := ComputeBlockedDates(bookings, slots.Night)
	want := map[string]struct{}{"2025-06-02": {}}
	if !reflect.DeepEqual(blocked, want) {
		t.Fatalf("got %v, want %v", blocked, want)
	}
}

func TestFullDayRequestBlockedByEitherHalf(t *testing.T) {
	bookings := []models.Booking{
		booking("2025-06-01", "day", models.StatusApproved),
		booking("2025-06-01", "night", models.StatusApproved),
	}
	blocked := ComputeBlockedDates(bookings, slots.FullDay)
	if len(blocked) != 1 {
		t.Fatalf("same date should appear once, got %v", blocked)
	}
	if _, ok := blocked["2025-06-01"]; !ok {
		t.Fatal("expected 2025-06-01 blocked for a full_day request")
	}
}

func TestMalformedRecordsSkipped(t *testing.T) {
	bookings := []models.Booking{
		{ID: "nodate", Slot: slots.Day, Status: models.StatusApproved},
		{ID: "badslot", Date: day("2025-06-03"), Slot: "brunch", Status: models.StatusApproved},
		booking("2025-06-04", "day", models.StatusApproved),
	}
	blocked := ComputeBlockedDates(bookings, slots.Day)
	want := map[string]struct{}{"2025-06-04": {}}
	if !reflect.DeepEqual(blocked, want) {
		t.Fatalf("got %v, want %v", blocked, want)
	}
}

func TestIdempotent(t *testing.T) {
	bookings := []models.Booking{
		booking("2025-06-01", "full_day", models.StatusApproved),
		booking("2025-06-05", "day", models.StatusApproved),
		booking("2025-06-09", "night", models.StatusApproved),
	}
	first := ComputeBlockedDates(bookings, slots.Day)
	second := ComputeBlockedDates(bookings, slots.Day)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same input produced different sets: %v vs %v", first, second)
	}
}

func TestBlockedDateListSorted(t *testing.T) {
	bookings := []models.Booking{
		booking("2025-06-09", "day", models.StatusApproved),
		booking("2025-06-01", "day", models.StatusApproved),
		booking("2025-06-05", "full_day", models.StatusApproved),
	}
	list := BlockedDateList(bookings, slots.Day)
	want := []string{"2025-06-01", "2025-06-05", "2025-06-09"}
	if !reflect.DeepEqual(list, want) {
		t.Fatalf("got %v, want %v", list, want)
	}
}

func TestIsBlockedNormalizesTimeOfDay(t *testing.T) {
	bookings := []models.Booking{booking("2025-06-01", "day", models.StatusApproved)}
	// Same calendar day at a different time still counts.
	noon := day("2025-06-01").Add(12 * time.Hour)
	if !IsBlocked(bookings, slots.Day, noon) {
		t.Fatal("expected noon on a blocked date to be blocked")
	}
	if IsBlocked(bookings, slots.Night, noon) {
		t.Fatal("night request must not be blocked by a day booking")
	}
}

func TestEmptyInputFailsOpen(t *testing.T) {
	if blocked := ComputeBlockedDates(nil, slots.FullDay); len(blocked) != 0 {
		t.Fatalf("nil input should yield an empty set, got %v", blocked)
	}
}
