package handlers

import (
	"log"
	"net/http"
	"strings"

	request "car_maintenance/internal/adapter/http/dto/request"
	response "car_maintenance/internal/adapter/http/dto/response"
	"car_maintenance/internal/adapter/http/middleware"
	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase"
	"car_maintenance/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// MechanicHandler serves the mechanic directory and the logged-in mechanic's listing.
type MechanicHandler struct {
	directory usecase.IDirectoryUseCase
	mechanics usecase.IMechanicUseCase
	bookings  usecase.IBookingUseCase
}

func NewMechanicHandler(directory usecase.IDirectoryUseCase, mechanics usecase.IMechanicUseCase, bookings usecase.IBookingUseCase) *MechanicHandler {
	return &MechanicHandler{directory: directory, mechanics: mechanics, bookings: bookings}
}

// ListMechanics godoc
// @Summary   Browse mechanics, excluding the caller's own listing
// @Tags      mechanics
// @Security  Bearer
// @Produce   json
// @Param     q query string false "Search by name, workshop or service"
// @Success   200 {array} response.MechanicResponse
// @Router    /mechanics [get]
func (h *MechanicHandler) ListMechanics(c *gin.Context) {
	me, _ := middleware.IdentityFrom(c)
	ctx := c.Request.Context()

	var (
		list []entities.Mechanic
		err  error
	)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		list, err = h.directory.SearchMechanics(ctx, me.Email, q)
	} else {
		list, err = h.directory.ListMechanics(ctx, me.Email)
	}
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]response.MechanicResponse, 0, len(list))
	for _, m := range list {
		out = append(out, response.FromMechanic(m, h.mechanics.ImageURL(ctx, m.ImageRef)))
	}
	c.JSON(http.StatusOK, out)
}

// Availability godoc
// @Summary   Check whether a mechanic is free on a day
// @Tags      mechanics
// @Security  Bearer
// @Produce   json
// @Param     email path  string true  "Mechanic email"
// @Param     date  query string false "YYYY-MM-DD, defaults to today"
// @Success   200 {object} response.AvailabilityResponse
// @Router    /mechanics/{email}/availability [get]
func (h *MechanicHandler) Availability(c *gin.Context) {
	email := c.Param("email")
	day, given, err := request.ParseDay(c.Query("date"))
	if err != nil {
		writeBadRequest(c, "date must look like 2026-10-15")
		return
	}

	var available bool
	if given {
		available, err = h.bookings.CheckAvailability(c.Request.Context(), email, day)
	} else {
		available, err = h.bookings.CheckAvailabilityToday(c.Request.Context(), email)
	}
	if err != nil {
		writeError(c, err)
		return
	}

	res := response.AvailabilityResponse{MechanicEmail: entities.NormalizeEmail(email), Available: available}
	if given {
		res.Date = entities.BookingDate(day)
	}
	c.JSON(http.StatusOK, res)
}

// GetMyProfile godoc
// @Summary   The logged-in mechanic's listing
// @Tags      mechanics
// @Security  Bearer
// @Produce   json
// @Success   200 {object} response.MechanicResponse
// @Failure   404 {object} pkg.HTTPError
// @Router    /mechanics/me [get]
func (h *MechanicHandler) GetMyProfile(c *gin.Context) {
	m, err := h.mechanics.GetMyProfile(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMechanic(m, h.mechanics.ImageURL(c.Request.Context(), m.ImageRef)))
}

// UpsertMyProfile godoc
// @Summary   Create or update the logged-in mechanic's listing
// @Tags      mechanics
// @Security  Bearer
// @Accept    json
// @Produce   json
// @Param     body body request.MechanicProfileRequest true "Listing"
// @Success   200 {object} response.MechanicResponse
// @Failure   400 {object} pkg.HTTPError
// @Router    /mechanics/me [put]
func (h *MechanicHandler) UpsertMyProfile(c *gin.Context) {
	var payload request.MechanicProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	m, err := h.mechanics.UpsertMyProfile(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMechanic(m, h.mechanics.ImageURL(c.Request.Context(), m.ImageRef)))
}

// UploadLogo godoc
// @Summary   Upload the workshop logo
// @Tags      mechanics
// @Security  Bearer
// @Accept    multipart/form-data
// @Produce   json
// @Param     logo formData file true "png or jpeg, up to 5 MiB"
// @Success   201 {object} response.LogoResponse
// @Failure   400 {object} pkg.HTTPError
// @Failure   503 {object} pkg.HTTPError
// @Router    /mechanics/me/logo [post]
func (h *MechanicHandler) UploadLogo(c *gin.Context) {
	fh, err := c.FormFile("logo")
	if err != nil {
		writeBadRequest(c, "multipart field \"logo\" is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Printf("[mechanic][handler] warning: failed to close upload: %v", closeErr)
		}
	}()

	ref, err := h.mechanics.UploadLogo(c.Request.Context(), interfaces.MediaUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.LogoResponse{ImageRef: ref, ImageURL: h.mechanics.ImageURL(c.Request.Context(), ref)})
}
