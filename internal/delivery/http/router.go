package http

import (
	"net/http"

	"temple-booking/internal/delivery/http/handler"
	"temple-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	bookingHandler  *handler.BookingHandler
	donationHandler *handler.DonationHandler
	adminHandler    *handler.AdminHandler
	authHandler     *handler.AuthHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	bookingHandler *handler.BookingHandler,
	donationHandler *handler.DonationHandler,
	adminHandler *handler.AdminHandler,
	authHandler *handler.AuthHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		bookingHandler:  bookingHandler,
		donationHandler: donationHandler,
		adminHandler:    adminHandler,
		authHandler:     authHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	api.HandleFunc("/auth/login", r.authHandler.Login).Methods(http.MethodPost)

	// Booking routes (public)
	api.HandleFunc("/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings", r.bookingHandler.ListBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}/ticket", r.bookingHandler.GetTicket).Methods(http.MethodGet)

	// Donation routes (public)
	api.HandleFunc("/donations", r.donationHandler.CreateDonation).Methods(http.MethodPost)

	// Admin routes (protected)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.HandleFunc("/bookings", r.adminHandler.ListBookings).Methods(http.MethodGet)
	admin.HandleFunc("/stats", r.adminHandler.GetStats).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/status", r.adminHandler.UpdateBookingStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{id}", r.adminHandler.DeleteBooking).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
