package booking

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"time"

	"bling/availability"
	"bling/db"
	"bling/models"
	"bling/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

func hmacSecret() []byte {
	if s := os.Getenv("CONFIRMATION_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("dev-only-confirmation-secret")
}

// confirmationPayload returns bookingId|venueId|date|signature for the QR
// code, so a door check can verify the confirmation offline.
func confirmationPayload(b models.Booking) string {
	data := fmt.Sprintf("%s|%s|%s", b.ID, b.VenueID, availability.DateKey(b.Date))
	h := hmac.New(sha256.New, hmacSecret())
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// PrintConfirmation renders a PDF confirmation for an approved booking,
// downloadable by the booker or the venue owner.
//
// Endpoint: GET /api/bookings/:bookingid/confirmation
func PrintConfirmation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("bookingid")

	requestingUserID := utils.GetUserIDFromRequest(r)
	if requestingUserID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := db.BookingsCollection.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking); err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}
	if booking.BookerID != requestingUserID && booking.OwnerID != requestingUserID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if booking.Status != models.StatusApproved {
		http.Error(w, "Booking is not approved", http.StatusConflict)
		return
	}

	qrPNG, err := qrcode.Encode(confirmationPayload(booking), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	slotLabel := map[string]string{
		"day":      "Day",
		"night":    "Night",
		"full_day": "Full Day",
	}[string(booking.Slot)]

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Confirmation")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Venue: %s", booking.VenueName))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s", availability.DateKey(booking.Date)))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Slot: %s", slotLabel))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Booked by: %s", booking.BookerName))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Reference: %s", booking.ID))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=booking-"+booking.ID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
