package booking

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"bling/models"
	"bling/slots"
)

func TestConfirmationPayloadVerifies(t *testing.T) {
	b := models.Booking{
		ID:      "b123",
		VenueID: "v456",
		Date:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Slot:    slots.Night,
	}

	payload := confirmationPayload(b)
	parts := strings.Split(payload, "|")
	if len(parts) != 4 {
		t.Fatalf("expected 4 payload parts, got %d: %q", len(parts), payload)
	}
	if parts[0] != "b123" || parts[1] != "v456" || parts[2] != "2025-06-01" {
		t.Fatalf("unexpected payload data: %q", payload)
	}

	data := strings.Join(parts[:3], "|")
	h := hmac.New(sha256.New, hmacSecret())
	h.Write([]byte(data))
	want := base64.StdEncoding.EncodeToString(h.Sum(nil))
	if parts[3] != want {
		t.Fatal("signature does not verify")
	}
}

func TestBroadcastWithoutSubscribers(t *testing.T) {
	// Must not panic or leak state for unknown venues.
	Broadcast("no-such-venue", []byte(`{"action":"created"}`))

	mu.Lock()
	defer mu.Unlock()
	if len(subscribers["no-such-venue"]) != 0 {
		t.Fatal("broadcast must not create subscriber entries")
	}
}
