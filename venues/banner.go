package venues

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"bling/db"
	"bling/filemgr"
	"bling/models"
	"bling/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EditVenueBanner replaces a venue's banner image. Owner only.
func EditVenueBanner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	venueID := ps.ByName("venueid")

	requestingUserID := utils.GetUserIDFromRequest(r)
	if requestingUserID == "" {
		http.Error(w, "Invalid user", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var venue models.Venue
	err := db.VenuesCollection.FindOne(ctx, bson.M{"venueid": venueID}).Decode(&venue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Venue not found", http.StatusNotFound)
		} else {
			http.Error(w, "db error", http.StatusInternalServerError)
		}
		return
	}
	if venue.OwnerID != requestingUserID {
		http.Error(w, "You are not authorized to edit this venue", http.StatusForbidden)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("banner")
	if err != nil {
		http.Error(w, "Banner file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	banner, thumb, err := filemgr.SaveVenueBanner(file, header)
	if err != nil {
		http.Error(w, fmt.Sprintf("Banner upload failed: %v", err), http.StatusBadRequest)
		return
	}

	_, err = db.VenuesCollection.UpdateOne(ctx,
		bson.M{"venueid": venueID},
		bson.M{"$set": bson.M{
			"banner":      banner,
			"bannerThumb": thumb,
			"updated_at":  time.Now(),
		}},
	)
	if err != nil {
		http.Error(w, "Error updating venue", http.StatusInternalServerError)
		return
	}

	invalidateVenueCache(venueID)
	utils.SendResponse(w, http.StatusOK, utils.M{"banner": banner, "bannerThumb": thumb}, "Banner updated", nil)
}
