package admin

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"bling/db"
	"bling/models"
	"bling/rdx"
	"bling/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// ListVenues returns venues of every status for the moderation queue,
// optionally filtered: GET /api/admin/venues?status=pending
func ListVenues(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := db.VenuesCollection.Find(ctx, filter)
	if err != nil {
		http.Error(w, `{"error":"Failed to fetch venues"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var venues []models.Venue
	if err := cursor.All(ctx, &venues); err != nil {
		http.Error(w, `{"error":"Error processing venues"}`, http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"venues": venues})
}

// SetVenueStatus approves or rejects a venue listing.
//
// Endpoint: PATCH /api/admin/venues/:venueid/status
func SetVenueStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	venueID := ps.ByName("venueid")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if body.Status != models.VenueStatusApproved && body.Status != models.VenueStatusRejected {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.VenuesCollection.UpdateOne(ctx,
		bson.M{"venueid": venueID},
		bson.M{"$set": bson.M{"status": body.Status, "updated_at": time.Now()}},
	)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Venue not found", http.StatusNotFound)
		return
	}

	invalidateVenueCaches(venueID)
	utils.SendResponse(w, http.StatusOK, utils.M{"venueid": venueID, "status": body.Status}, "Venue status updated", nil)
}

// DeleteVenue hard-deletes a venue and all of its bookings. Admin purge path;
// normal flow never hard-deletes.
func DeleteVenue(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	venueID := ps.ByName("venueid")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.VenuesCollection.DeleteOne(ctx, bson.M{"venueid": venueID})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Venue not found", http.StatusNotFound)
		return
	}

	if _, err := db.BookingsCollection.DeleteMany(ctx, bson.M{"venueId": venueID}); err != nil {
		log.Printf("Failed to delete bookings for venue %s: %v", venueID, err)
	}

	invalidateVenueCaches(venueID)
	w.WriteHeader(http.StatusNoContent)
}

// Stats summarizes the system for the admin dashboard.
func Stats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	venueCounts := make(map[string]int64)
	for _, status := range []string{models.VenueStatusPending, models.VenueStatusApproved, models.VenueStatusRejected} {
		n, err := db.VenuesCollection.CountDocuments(ctx, bson.M{"status": status})
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		venueCounts[status] = n
	}

	bookingCounts := make(map[string]int64)
	for _, status := range []string{models.StatusPending, models.StatusApproved, models.StatusDeclined} {
		n, err := db.BookingsCollection.CountDocuments(ctx, bson.M{"status": status})
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		bookingCounts[status] = n
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"venues":   venueCounts,
		"bookings": bookingCounts,
	})
}

func invalidateVenueCaches(venueID string) {
	for _, key := range []string{"venues:approved", "venue:" + venueID} {
		if _, err := rdx.RdxDel(key); err != nil {
			log.Printf("Cache deletion failed for %s: %v", key, err)
		}
	}
}
