package handler

import (
	"encoding/json"
	"net/http"

	"temple-booking/internal/delivery/dto"
	"temple-booking/internal/usecase"
	"temple-booking/pkg/response"
	"temple-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type AdminHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewAdminHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *AdminHandler {
	return &AdminHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// ListBookings returns the full ledger, or the search result when the q
// parameter is present. An empty q is the unfiltered list.
func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingUsecase.SearchBookings(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.InternalServerError(w, "Failed to list bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.bookingUsecase.GetStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to compute stats")
		return
	}

	response.Success(w, http.StatusOK, "Stats retrieved successfully", stats)
}

func (h *AdminHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	updated, err := h.bookingUsecase.UpdateBookingStatus(r.Context(), vars["id"], req.Status)
	if err != nil {
		if err == usecase.ErrInvalidStatus {
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.InternalServerError(w, "Failed to update booking status")
		return
	}
	if !updated {
		response.NotFound(w, "Booking not found")
		return
	}

	response.Success(w, http.StatusOK, "Booking status updated successfully", nil)
}

func (h *AdminHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	deleted, err := h.bookingUsecase.DeleteBooking(r.Context(), vars["id"])
	if err != nil {
		response.InternalServerError(w, "Failed to delete booking")
		return
	}
	if !deleted {
		response.NotFound(w, "Booking not found")
		return
	}

	response.Success(w, http.StatusOK, "Booking deleted successfully", nil)
}
