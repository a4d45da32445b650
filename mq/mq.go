package mq

import (
	"context"
	"encoding/json"
	"log"

	"bling/rdx"
)

const bookingChannel = "booking-events"

// BookingEvent is published whenever a booking is created or changes status,
// so interested listeners (the venue dashboard socket) see it without polling.
type BookingEvent struct {
	Action    string `json:"action"` // created, status_changed
	BookingID string `json:"bookingId"`
	VenueID   string `json:"venueId"`
	Date      string `json:"date"`
	Slot      string `json:"slot"`
	Status    string `json:"status"`
}

// Emit publishes a booking event to Redis. Failures are logged, not returned:
// notifications are best effort and must never fail the booking mutation.
func Emit(ctx context.Context, event BookingEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event: %v", err)
		return
	}
	if err := rdx.Conn.Publish(ctx, bookingChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event to Redis: %v", err)
	}
}

// StartNotifyWorker subscribes to booking events and hands each one to the
// broadcast function, keyed by venue. Runs until the process exits.
func StartNotifyWorker(broadcast func(venueID string, payload []byte)) {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, bookingChannel)
	ch := sub.Channel()

	log.Println("[NotifyWorker] Listening for booking events...")

	for msg := range ch {
		var event BookingEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[NotifyWorker] Failed to parse event: %v", err)
			continue
		}
		broadcast(event.VenueID, []byte(msg.Payload))
	}
}
