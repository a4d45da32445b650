package venues

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"bling/db"
	"bling/models"
	"bling/rdx"
	"bling/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const venueListCacheKey = "venues:approved"

// CreateVenue registers a new venue owned by the requesting host. The venue
// starts pending and becomes publicly visible once an admin approves it.
func CreateVenue(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestingUserID := utils.GetUserIDFromRequest(r)
	if requestingUserID == "" {
		http.Error(w, "Invalid user", http.StatusUnauthorized)
		return
	}

	var venue models.Venue
	if err := json.NewDecoder(r.Body).Decode(&venue); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if venue.Name == "" {
		http.Error(w, "Venue name is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if venue.Slug == "" {
		venue.Slug = GenerateSlug(venue.Name)
	}
	if !IsValidSlug(venue.Slug) {
		http.Error(w, "Invalid slug", http.StatusBadRequest)
		return
	}
	available, err := isSlugAvailable(ctx, venue.Slug, "")
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if !available {
		http.Error(w, "Slug already taken", http.StatusConflict)
		return
	}

	venue.VenueID = "v" + utils.GenerateRandomDigitString(10)
	venue.OwnerID = requestingUserID
	venue.Status = models.VenueStatusPending
	venue.CreatedAt = time.Now()
	venue.UpdatedAt = venue.CreatedAt

	if _, err := db.VenuesCollection.InsertOne(ctx, venue); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	invalidateListCache()
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"venue": venue})
}

// GetVenues returns the public venue listing: approved venues only. The
// fallback venue, configured at startup, is served when the store has no
// approved venues yet so the marketplace always has one bookable space.
func GetVenues(fallback *models.Venue) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		// Try cache
		if cached, _ := rdx.RdxGet(venueListCacheKey); cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}

		cur, err := db.VenuesCollection.Find(ctx, bson.M{"status": models.VenueStatusApproved})
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch venues")
			return
		}
		defer cur.Close(ctx)

		var list []models.Venue
		if err := cur.All(ctx, &list); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Error processing venues")
			return
		}

		if len(list) == 0 && fallback != nil {
			list = []models.Venue{*fallback}
		}

		data, _ := json.Marshal(utils.M{"venues": list})
		if err := rdx.RdxSet(venueListCacheKey, string(data)); err != nil {
			log.Printf("Venue list cache write failed: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}
}

func GetVenue(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	fetchVenue(w, r, bson.M{"venueid": ps.ByName("venueid")})
}

func GetVenueBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	fetchVenue(w, r, bson.M{"slug": ps.ByName("slug")})
}

func fetchVenue(w http.ResponseWriter, r *http.Request, filter bson.M) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var venue models.Venue
	err := db.VenuesCollection.FindOne(ctx, filter).Decode(&venue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Venue not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error", http.StatusInternalServerError)
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"venue": venue})
}

// GetMyVenues lists the requesting owner's venues regardless of status.
func GetMyVenues(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestingUserID := utils.GetUserIDFromRequest(r)
	if requestingUserID == "" {
		http.Error(w, "Invalid user", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cur, err := db.VenuesCollection.Find(ctx, bson.M{"ownerId": requestingUserID})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer cur.Close(ctx)

	var list []models.Venue
	if err := cur.All(ctx, &list); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"venues": list})
}

// EditVenue lets the owner update descriptive fields. Status is owned by the
// admin flow and cannot be changed here; slug changes are re-validated.
func EditVenue(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	venueID := ps.ByName("venueid")
	requestingUserID := utils.GetUserIDFromRequest(r)
	if requestingUserID == "" {
		http.Error(w, "Invalid user", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var existing models.Venue
	if err := db.VenuesCollection.FindOne(ctx, bson.M{"venueid": venueID}).Decode(&existing); err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Venue not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error", http.StatusInternalServerError)
		}
		return
	}
	if existing.OwnerID != requestingUserID {
		http.Error(w, "You are not authorized to edit this venue", http.StatusForbidden)
		return
	}

	var input models.Venue
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	update := bson.M{"updated_at": time.Now()}
	if input.Name != "" {
		update["name"] = input.Name
	}
	if input.Slug != "" && input.Slug != existing.Slug {
		if !IsValidSlug(input.Slug) {
			http.Error(w, "Invalid slug", http.StatusBadRequest)
			return
		}
		available, err := isSlugAvailable(ctx, input.Slug, venueID)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		if !available {
			http.Error(w, "Slug already taken", http.StatusConflict)
			return
		}
		update["slug"] = input.Slug
	}
	if input.Description != "" {
		update["description"] = input.Description
	}
	if input.Address != "" {
		update["address"] = input.Address
	}
	if input.City != "" {
		update["city"] = input.City
	}
	if input.Capacity > 0 {
		update["capacity"] = input.Capacity
	}
	if input.VenueType != "" {
		update["venueType"] = input.VenueType
	}
	if len(input.VenueSubTypes) > 0 {
		update["venueSubTypes"] = input.VenueSubTypes
	}
	if len(input.Amenities) > 0 {
		update["amenities"] = input.Amenities
	}
	if len(input.AddOns) > 0 {
		update["addOns"] = input.AddOns
	}
	if input.ContactEmail != "" {
		update["contactEmail"] = input.ContactEmail
	}
	if input.ContactPhone != "" {
		update["contactPhone"] = input.ContactPhone
	}

	_, err := db.VenuesCollection.UpdateOne(ctx, bson.M{"venueid": venueID}, bson.M{"$set": update})
	if err != nil {
		http.Error(w, "Error updating venue", http.StatusInternalServerError)
		return
	}

	invalidateVenueCache(venueID)
	utils.SendResponse(w, http.StatusOK, utils.M{"venueid": venueID}, "Venue updated", nil)
}

func invalidateListCache() {
	if _, err := rdx.RdxDel(venueListCacheKey); err != nil {
		log.Printf("Cache deletion failed for %s: %v", venueListCacheKey, err)
	}
}

func invalidateVenueCache(venueID string) {
	invalidateListCache()
	if _, err := rdx.RdxDel(fmt.Sprintf("venue:%s", venueID)); err != nil {
		log.Printf("Cache deletion failed for venue ID %s: %v", venueID, err)
	}
}
