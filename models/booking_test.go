package models

import "testing"

func TestCanTransitionOwnerFlow(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusDeclined, true},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusDeclined, false},
		{StatusApproved, StatusPending, false},
		{StatusDeclined, StatusApproved, false},
		{StatusDeclined, StatusPending, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to, false); got != c.want {
			t.Errorf("CanTransition(%s, %s, owner) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestCanTransitionAdminOverride(t *testing.T) {
	if !CanTransition(StatusApproved, StatusDeclined, true) {
		t.Error("admin should be able to decline an approved booking")
	}
	if !CanTransition(StatusDeclined, StatusApproved, true) {
		t.Error("admin should be able to approve a declined booking")
	}
	if CanTransition(StatusApproved, StatusPending, true) {
		t.Error("nothing returns to pending, even for admins")
	}
}

func TestValidEventType(t *testing.T) {
	gig := Booking{EventType: EventTypeGig, Gig: &GigDetails{ApplicantRole: "artist"}}
	if !gig.ValidEventType() {
		t.Error("gig booking with gig details should be valid")
	}

	private := Booking{EventType: EventTypePrivate, Private: &PrivateEventDetails{ExpectedGuests: 40}}
	if !private.ValidEventType() {
		t.Error("private booking with private details should be valid")
	}

	both := Booking{EventType: EventTypeGig, Gig: &GigDetails{}, Private: &PrivateEventDetails{}}
	if both.ValidEventType() {
		t.Error("booking carrying both variants should be invalid")
	}

	neither := Booking{EventType: EventTypePrivate}
	if neither.ValidEventType() {
		t.Error("private booking without details should be invalid")
	}

	unknown := Booking{EventType: "wedding", Private: &PrivateEventDetails{}}
	if unknown.ValidEventType() {
		t.Error("unknown event type should be invalid")
	}
}
