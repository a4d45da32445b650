package booking

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"bling/availability"
	"bling/db"
	"bling/models"
	"bling/mq"
	"bling/slots"
	"bling/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func genID() string {
	return "b" + utils.GenerateRandomDigitString(22)
}

// bookerID identifies the requester. Guests may submit without an account.
func bookerID(r *http.Request) string {
	if id := utils.GetUserIDFromRequest(r); id != "" {
		return id
	}
	return "guest"
}

type createRequest struct {
	VenueID     string                      `json:"venueId"`
	Date        string                      `json:"date"` // YYYY-MM-DD
	Slot        string                      `json:"slot"`
	EventType   string                      `json:"eventType"`
	BookerName  string                      `json:"bookerName"`
	BookerEmail string                      `json:"bookerEmail"`
	BookerPhone string                      `json:"bookerPhone"`
	Message     string                      `json:"message"`
	Gig         *models.GigDetails          `json:"gig"`
	Private     *models.PrivateEventDetails `json:"private"`
}

// fetchApprovedBookings loads the bookings that participate in availability
// for one venue.
func fetchApprovedBookings(ctx context.Context, venueID string) ([]models.Booking, error) {
	cur, err := db.BookingsCollection.Find(ctx, bson.M{
		"venueId": venueID,
		"status":  models.StatusApproved,
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetAvailability returns the blocked dates for a venue and requested slot,
// plus the minimum selectable date. Recomputed fresh on every call.
//
// Endpoint: GET /api/venues/:venueid/availability?slot=day|night|full_day
func GetAvailability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	venueID := ps.ByName("venueid")

	slot, ok := slots.Parse(r.URL.Query().Get("slot"))
	if !ok {
		http.Error(w, "invalid slot", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	bookings, err := fetchApprovedBookings(ctx, venueID)
	if err != nil {
		// Unlike the pure resolver, the API boundary distinguishes a store
		// failure from an empty booking set.
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"blockedDates": availability.BlockedDateList(bookings, slot),
		"minDate":      availability.DateKey(time.Now()),
	})
}

// CreateBooking submits a booking request. The chosen date is re-validated
// against freshly fetched bookings; a date that became blocked since the
// caller rendered its calendar is rejected with a retry prompt. Overlapping
// pending requests for the same date are allowed: pending never blocks, and
// the owner settles contention by declining all but one.
func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.VenueID == "" || req.Date == "" || req.BookerName == "" || req.BookerEmail == "" {
		http.Error(w, "missing fields", http.StatusBadRequest)
		return
	}

	slot, ok := slots.Parse(req.Slot)
	if !ok {
		http.Error(w, "invalid slot", http.StatusBadRequest)
		return
	}
	date, err := availability.ParseDateKey(req.Date)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}
	if today, _ := availability.ParseDateKey(availability.DateKey(time.Now())); date.Before(today) {
		http.Error(w, "date is in the past", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var venue models.Venue
	if err := db.VenuesCollection.FindOne(ctx, bson.M{"venueid": req.VenueID}).Decode(&venue); err != nil {
		http.Error(w, "venue not found", http.StatusNotFound)
		return
	}
	if venue.Status != models.VenueStatusApproved {
		http.Error(w, "venue not bookable", http.StatusConflict)
		return
	}

	booking := models.Booking{
		ID:          genID(),
		VenueID:     venue.VenueID,
		VenueName:   venue.Name,
		OwnerID:     venue.OwnerID,
		BookerID:    bookerID(r),
		BookerName:  req.BookerName,
		BookerEmail: req.BookerEmail,
		BookerPhone: req.BookerPhone,
		Date:        date,
		Slot:        slot,
		Status:      models.StatusPending,
		EventType:   req.EventType,
		Message:     req.Message,
		Source:      models.SourceWebRequest,
		Gig:         req.Gig,
		Private:     req.Private,
		CreatedAt:   time.Now(),
	}
	if !booking.ValidEventType() {
		http.Error(w, "invalid event type details", http.StatusBadRequest)
		return
	}

	// Submission guard: optimistic re-check against fresh data. A fetch
	// failure falls open to pending, which never blocks anything and still
	// passes through owner review.
	existing, err := fetchApprovedBookings(ctx, booking.VenueID)
	if err != nil {
		log.Printf("Availability re-check failed for venue %s: %v", booking.VenueID, err)
	} else if availability.IsBlocked(existing, slot, date) {
		utils.RespondWithJSON(w, http.StatusConflict, utils.M{
			"ok":     false,
			"reason": "retry-with-fresh-data",
		})
		return
	}

	if _, err := db.BookingsCollection.InsertOne(ctx, booking); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	mq.Emit(ctx, mq.BookingEvent{
		Action:    "created",
		BookingID: booking.ID,
		VenueID:   booking.VenueID,
		Date:      availability.DateKey(booking.Date),
		Slot:      string(booking.Slot),
		Status:    booking.Status,
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"ok": true, "booking": booking})
}

// CreateManualBooking lets a venue owner record an offline booking. Manual
// bookings are approved immediately, so they must pass the same blocked-date
// check a web request gets at approval time.
func CreateManualBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestingUserID := utils.GetUserIDFromRequest(r)
	if requestingUserID == "" {
		http.Error(w, "Invalid user", http.StatusUnauthorized)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	slot, ok := slots.Parse(req.Slot)
	if !ok {
		http.Error(w, "invalid slot", http.StatusBadRequest)
		return
	}
	date, err := availability.ParseDateKey(req.Date)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var venue models.Venue
	if err := db.VenuesCollection.FindOne(ctx, bson.M{"venueid": req.VenueID}).Decode(&venue); err != nil {
		http.Error(w, "venue not found", http.StatusNotFound)
		return
	}
	if venue.OwnerID != requestingUserID {
		http.Error(w, "not your venue", http.StatusForbidden)
		return
	}

	existing, err := fetchApprovedBookings(ctx, venue.VenueID)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if availability.IsBlocked(existing, slot, date) {
		utils.RespondWithJSON(w, http.StatusConflict, utils.M{"ok": false, "reason": "date-blocked"})
		return
	}

	booking := models.Booking{
		ID:          genID(),
		VenueID:     venue.VenueID,
		VenueName:   venue.Name,
		OwnerID:     venue.OwnerID,
		BookerID:    requestingUserID,
		BookerName:  req.BookerName,
		BookerEmail: req.BookerEmail,
		BookerPhone: req.BookerPhone,
		Date:        date,
		Slot:        slot,
		Status:      models.StatusApproved,
		EventType:   req.EventType,
		Message:     req.Message,
		Source:      models.SourceManual,
		Gig:         req.Gig,
		Private:     req.Private,
		CreatedAt:   time.Now(),
	}
	if !booking.ValidEventType() {
		http.Error(w, "invalid event type details", http.StatusBadRequest)
		return
	}

	if _, err := db.BookingsCollection.InsertOne(ctx, booking); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	mq.Emit(ctx, mq.BookingEvent{
		Action:    "created",
		BookingID: booking.ID,
		VenueID:   booking.VenueID,
		Date:      availability.DateKey(booking.Date),
		Slot:      string(booking.Slot),
		Status:    booking.Status,
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"ok": true, "booking": booking})
}

// ListBookings returns the requests for venues the caller owns, optionally
// filtered by venue and status.
func ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestingUserID := utils.GetUserIDFromRequest(r)
	if requestingUserID == "" {
		http.Error(w, "Invalid user", http.StatusUnauthorized)
		return
	}

	filter := bson.M{"ownerId": requestingUserID}
	if venueID := r.URL.Query().Get("venueId"); venueID != "" {
		filter["venueId"] = venueID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	listBookings(w, r, filter)
}

// GetMyBookings returns the caller's own requests across all venues.
func GetMyBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestingUserID := utils.GetUserIDFromRequest(r)
	if requestingUserID == "" {
		http.Error(w, "Invalid user", http.StatusUnauthorized)
		return
	}
	listBookings(w, r, bson.M{"bookerId": requestingUserID})
}

func listBookings(w http.ResponseWriter, r *http.Request, filter bson.M) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cur, err := db.BookingsCollection.Find(ctx, filter,
		options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"bookings": bookings})
}
