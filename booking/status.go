package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"bling/availability"
	"bling/db"
	"bling/models"
	"bling/mq"
	"bling/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpdateBookingStatus resolves a request: the venue owner approves or
// declines a pending booking, or an admin forces a flip between the two
// terminal states. Approving one request does not touch competing pending
// requests for the same date; the owner declines those individually.
//
// Endpoint: PATCH /api/bookings/:bookingid/status
func UpdateBookingStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("bookingid")
	if bookingID == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	requestingUserID := utils.GetUserIDFromRequest(r)
	if requestingUserID == "" {
		http.Error(w, "Invalid user", http.StatusUnauthorized)
		return
	}
	isAdmin := utils.GetRoleFromRequest(r) == models.RoleAdmin

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if body.Status != models.StatusApproved && body.Status != models.StatusDeclined {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := db.BookingsCollection.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	if booking.OwnerID != requestingUserID && !isAdmin {
		http.Error(w, "not your venue", http.StatusForbidden)
		return
	}
	if !models.CanTransition(booking.Status, body.Status, isAdmin) {
		http.Error(w, "invalid transition", http.StatusConflict)
		return
	}

	// Single-record atomic flip: the filter pins the status we just read, so
	// a concurrent resolution of the same request loses cleanly.
	res := db.BookingsCollection.FindOneAndUpdate(ctx,
		bson.M{"id": bookingID, "status": booking.Status},
		bson.M{"$set": bson.M{"status": body.Status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Booking
	if err := res.Decode(&updated); err != nil {
		http.Error(w, "conflict", http.StatusConflict)
		return
	}

	mq.Emit(ctx, mq.BookingEvent{
		Action:    "status_changed",
		BookingID: updated.ID,
		VenueID:   updated.VenueID,
		Date:      availability.DateKey(updated.Date),
		Slot:      string(updated.Slot),
		Status:    updated.Status,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "booking": updated})
}
