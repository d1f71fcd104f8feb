package handlers

import (
	"fmt"
	"net/http"

	"eventhub/internal/domain/models"
	"eventhub/internal/http/middleware"
	"eventhub/internal/services"
	"eventhub/internal/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Bookings services.BookingService
	Tickets  services.TicketService
}

type updateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h BookingHandler) Create(c *gin.Context) {
	var input services.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := h.Bookings.CreateBooking(middleware.CurrentUserID(c), input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Created(c, "booking created successfully", booking)
}

// List returns every booking for admins, only the caller's own otherwise.
func (h BookingHandler) List(c *gin.Context) {
	p := utils.GetPagination(c, "created_at", "total_price")

	filter := models.BookingFilter{Status: c.Query("status")}
	if middleware.CurrentUserRole(c) != models.RoleSuperAdmin {
		filter.UserID = middleware.CurrentUserID(c)
	}

	bookings, total, err := h.Bookings.ListBookings(filter, p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OKList(c, "bookings fetched successfully", bookings, p, total)
}

func (h BookingHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	booking, err := h.Bookings.GetBooking(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !canAccessBooking(c, booking) {
		Fail(c, http.StatusForbidden, "you do not have access to this booking")
		return
	}
	OK(c, "booking fetched successfully", booking)
}

func (h BookingHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var upd services.BookingUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := h.Bookings.UpdateBooking(id, upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "booking updated successfully", booking)
}

func (h BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req updateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := h.Bookings.UpdateBookingStatus(id, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "booking status updated successfully", booking)
}

func (h BookingHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Bookings.DeleteBooking(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "booking deleted successfully", nil)
}

// Ticket streams the booking's PDF ticket to the owner or an admin.
func (h BookingHandler) Ticket(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	booking, err := h.Bookings.GetBooking(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !canAccessBooking(c, booking) {
		Fail(c, http.StatusForbidden, "you do not have access to this booking")
		return
	}

	pdf, filename, err := h.Tickets.GenerateTicket(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func canAccessBooking(c *gin.Context, booking models.Booking) bool {
	if middleware.CurrentUserRole(c) == models.RoleSuperAdmin {
		return true
	}
	return booking.UserID == middleware.CurrentUserID(c)
}
