package routes

import (
	"net/http"

	"bling/admin"
	"bling/auth"
	"bling/booking"
	"bling/middleware"
	"bling/models"
	"bling/ratelim"
	"bling/venues"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/venuepic/*filepath", http.Dir("static/venuepic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", rl.Limit(auth.RefreshToken))
}

// AddVenueRoutes wires the venue surface. The fallback venue is passed in
// explicitly rather than read from a package global, so the default listing
// is a plain configuration value.
func AddVenueRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, fallback *models.Venue) {
	router.GET("/api/venues", venues.GetVenues(fallback))
	router.GET("/api/venues/venue/:venueid", venues.GetVenue)
	router.GET("/api/venues/slug/:slug", venues.GetVenueBySlug)
	router.GET("/api/venues/mine", middleware.Authenticate(venues.GetMyVenues))
	router.POST("/api/venues", rl.Limit(middleware.Authenticate(venues.CreateVenue)))
	router.PUT("/api/venues/venue/:venueid", middleware.Authenticate(venues.EditVenue))
	router.POST("/api/venues/venue/:venueid/banner", middleware.Authenticate(venues.EditVenueBanner))

	router.GET("/api/venues/venue/:venueid/availability", booking.GetAvailability)
}

func AddBookingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/bookings", rl.Limit(middleware.OptionalAuth(booking.CreateBooking)))
	router.POST("/api/bookings/manual", rl.Limit(middleware.Authenticate(booking.CreateManualBooking)))
	router.GET("/api/bookings/requests", middleware.Authenticate(booking.ListBookings))
	router.GET("/api/bookings/mine", middleware.Authenticate(booking.GetMyBookings))
	router.PATCH("/api/bookings/booking/:bookingid/status", middleware.Authenticate(booking.UpdateBookingStatus))
	router.GET("/api/bookings/booking/:bookingid/confirmation", middleware.Authenticate(booking.PrintConfirmation))

	router.GET("/ws/bookings/:venueid", middleware.Authenticate(booking.HandleWS))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/venues", middleware.RequireRole(models.RoleAdmin, admin.ListVenues))
	router.PATCH("/api/admin/venues/:venueid/status", middleware.RequireRole(models.RoleAdmin, admin.SetVenueStatus))
	router.DELETE("/api/admin/venues/:venueid", middleware.RequireRole(models.RoleAdmin, admin.DeleteVenue))
	router.GET("/api/admin/stats", middleware.RequireRole(models.RoleAdmin, admin.Stats))
}
