package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/httperr"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/httpresp"
	ucReservation "github.com/saiichandraa424-cpu/restaurant-reservations/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC *ucReservation.CreateReservation
}

func NewReservationHandler(createUC *ucReservation.CreateReservation) *ReservationHandler {
	return &ReservationHandler{createUC: createUC}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	PartySize     int    `json:"party_size"`
	Date          string `json:"reservation_date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"reservation_time" binding:"required"` // HH:mm
}

// ======================================================
// CREATE (public intake)
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid reservation data.")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		PartySize:     req.PartySize,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		if code := httperr.BusinessCode(err); code != "" {
			httperr.BadRequest(c, code, intakeMessage(code))
			return
		}

		httperr.Internal(c, "failed_to_create_reservation", httperr.StoreMessage(err))
		return
	}

	httpresp.Created(c, res)
}

func intakeMessage(code string) string {
	switch code {
	case "invalid_name":
		return "Name is required."
	case "invalid_email":
		return "Valid email is required."
	case "invalid_phone":
		return "Valid phone number is required."
	case "invalid_party_size":
		return "Please select between 1 and 8 guests."
	case "invalid_date":
		return "Please select a date."
	case "date_out_of_range":
		return "Please select a date within the next 60 days."
	case "invalid_time":
		return "Please select a valid time for your reservation."
	}
	return "Failed to submit reservation. Please try again."
}
