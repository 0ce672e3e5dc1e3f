package handlers

import (
	"net/http"

	request "car_maintenance/internal/adapter/http/dto/request"
	response "car_maintenance/internal/adapter/http/dto/response"
	"car_maintenance/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle.
type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// CreateBooking godoc
// @Summary   Book a mechanic for a day
// @Tags      bookings
// @Security  Bearer
// @Accept    json
// @Produce   json
// @Param     body body request.CreateBookingRequest true "Booking"
// @Success   201 {object} response.BookingResponse
// @Failure   400 {object} pkg.HTTPError
// @Failure   409 {object} pkg.HTTPError "SLOT_FULL"
// @Failure   503 {object} pkg.HTTPError "OUTCOME_UNKNOWN"
// @Router    /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeBadRequest(c, "scheduled_at must look like 2026-10-15T09:30")
		return
	}
	booking, err := h.usecase.CreateBooking(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBooking(booking))
}

// ListBookings godoc
// @Summary   List the logged-in user's bookings
// @Tags      bookings
// @Security  Bearer
// @Produce   json
// @Param     role query string false "sender (default) or receiver"
// @Success   200 {array} response.BookingResponse
// @Router    /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.usecase.ListMyBookings(c.Request.Context(), request.ResolveRole(c.Query("role")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// UpdateStatus godoc
// @Summary   Move a booking through its lifecycle
// @Tags      bookings
// @Security  Bearer
// @Accept    json
// @Produce   json
// @Param     key  path string true "Booking record key"
// @Param     body body request.UpdateBookingStatusRequest true "Status change"
// @Success   200 {object} response.BookingResponse
// @Failure   403 {object} pkg.HTTPError
// @Failure   409 {object} pkg.HTTPError "INVALID_TRANSITION"
// @Router    /bookings/{key}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	status, role := payload.Resolve()
	booking, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("key"), status, role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(booking))
}

// RateBooking godoc
// @Summary   Rate a completed booking
// @Tags      bookings
// @Security  Bearer
// @Accept    json
// @Produce   json
// @Param     key  path string true "Booking record key"
// @Param     body body request.RateBookingRequest true "Stars (1-5)"
// @Success   200 {object} response.BookingResponse
// @Failure   409 {object} pkg.HTTPError "INVALID_TRANSITION"
// @Router    /bookings/{key}/rating [patch]
func (h *BookingHandler) RateBooking(c *gin.Context) {
	var payload request.RateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	booking, err := h.usecase.Rate(c.Request.Context(), c.Param("key"), payload.Stars)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(booking))
}
