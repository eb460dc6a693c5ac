package handler

import (
	"encoding/json"
	"net/http"

	"temple-booking/internal/delivery/dto"
	"temple-booking/internal/usecase"
	"temple-booking/pkg/response"
	"temple-booking/pkg/validator"
)

type DonationHandler struct {
	donationUsecase usecase.DonationUsecase
	validator       *validator.CustomValidator
}

func NewDonationHandler(donationUsecase usecase.DonationUsecase, validator *validator.CustomValidator) *DonationHandler {
	return &DonationHandler{
		donationUsecase: donationUsecase,
		validator:       validator,
	}
}

func (h *DonationHandler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	donation, err := h.donationUsecase.CreateDonation(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to process donation")
		return
	}

	response.Success(w, http.StatusCreated, "Donation received successfully", donation)
}
