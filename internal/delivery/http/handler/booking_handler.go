package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"temple-booking/internal/converter"
	"temple-booking/internal/delivery/dto"
	"temple-booking/internal/usecase"
	"temple-booking/pkg/response"
	"temple-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, converter.ErrUnknownServiceType),
			errors.Is(err, converter.ErrUnknownOffering),
			errors.Is(err, converter.ErrInvalidCount),
			errors.Is(err, converter.ErrInvalidDate):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

// ListBookings serves the query layer. Supported filters, applied one at
// a time: q (search), service_type, from/to (inclusive date range),
// today=true. Without filters the full list is returned in insertion
// order.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	var (
		bookings *dto.BookingListResponse
		err      error
	)
	switch {
	case params.Has("q"):
		bookings, err = h.bookingUsecase.SearchBookings(r.Context(), params.Get("q"))
	case params.Get("service_type") != "":
		bookings, err = h.bookingUsecase.GetBookingsByServiceType(r.Context(), params.Get("service_type"))
	case params.Get("today") == "true":
		bookings, err = h.bookingUsecase.GetTodaysBookings(r.Context())
	case params.Get("from") != "" || params.Get("to") != "":
		bookings, err = h.bookingUsecase.GetBookingsByDateRange(r.Context(), params.Get("from"), params.Get("to"))
	default:
		bookings, err = h.bookingUsecase.GetAllBookings(r.Context())
	}

	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidServiceType), errors.Is(err, usecase.ErrInvalidDateRange):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to list bookings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	booking, err := h.bookingUsecase.GetBooking(r.Context(), vars["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrBookingNotFound) {
			response.NotFound(w, "Booking not found")
			return
		}
		response.InternalServerError(w, "Failed to get booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

func (h *BookingHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	pdf, filename, err := h.bookingUsecase.GenerateTicket(r.Context(), vars["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrBookingNotFound) {
			response.NotFound(w, "Booking not found")
			return
		}
		response.InternalServerError(w, "Failed to generate ticket")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
