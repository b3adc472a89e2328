package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/saiichandraa424-cpu/restaurant-reservations/internal/domain/reservation"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/httperr"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/httpresp"
	ucReservation "github.com/saiichandraa424-cpu/restaurant-reservations/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

// AdminReservationHandler is the single workflow surface behind the admin
// screens: list, status transitions, and note edits.
type AdminReservationHandler struct {
	listUC   *ucReservation.ListReservations
	statusUC *ucReservation.UpdateStatus
	notesUC  *ucReservation.UpdateNotes
}

func NewAdminReservationHandler(
	listUC *ucReservation.ListReservations,
	statusUC *ucReservation.UpdateStatus,
	notesUC *ucReservation.UpdateNotes,
) *AdminReservationHandler {
	return &AdminReservationHandler{
		listUC:   listUC,
		statusUC: statusUC,
		notesUC:  notesUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// ======================================================
// LIST
// ======================================================

func (h *AdminReservationHandler) List(c *gin.Context) {
	reservations, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Failed to load reservations.")
		return
	}

	httpresp.List(c, reservations)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *AdminReservationHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid status update data.")
		return
	}

	result, err := h.statusUC.Execute(c.Request.Context(), ucReservation.UpdateStatusInput{
		ID:     id,
		Status: domain.Status(req.Status),
		Note:   req.Note,
	})
	if err != nil {
		writeTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, transitionResponse(result))
}

// ======================================================
// UPDATE NOTES
// ======================================================

func (h *AdminReservationHandler) UpdateNotes(c *gin.Context) {
	id := c.Param("id")

	var req UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid notes data.")
		return
	}

	result, err := h.notesUC.Execute(c.Request.Context(), ucReservation.UpdateNotesInput{
		ID:   id,
		Note: req.Notes,
	})
	if err != nil {
		writeTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, transitionResponse(result))
}

// ======================================================
// HELPERS
// ======================================================

func writeTransitionError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_status"):
		httperr.BadRequest(c, "invalid_status", "Unknown reservation status.")
	case httperr.IsBusiness(err, "reservation_not_found"):
		httperr.NotFound(c, "reservation_not_found", "Reservation not found.")
	default:
		httperr.Internal(c, "failed_to_update_reservation", httperr.StoreMessage(err))
	}
}

func transitionResponse(result *ucReservation.TransitionResult) gin.H {
	resp := gin.H{
		"reservation": result.Reservation,
		"email_sent":  result.EmailSent,
	}

	if !result.EmailSent {
		resp["warning"] = "Could not send notification email to customer."
	}

	return resp
}
