package handlers

import (
	"log"
	"net/http"

	request "car_maintenance/internal/adapter/http/dto/request"
	response "car_maintenance/internal/adapter/http/dto/response"
	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase"
	"car_maintenance/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// ReportHandler runs scans and lists saved reports.
type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// SubmitMedia godoc
// @Summary  Analyze an image or a video
// @Description No bearer token is required. The report is attributed to the device session open on this
// @Description server, not to the caller, and is saved only when such a session exists. The scan result
// @Description is returned either way.
// @Tags     reports
// @Accept   multipart/form-data
// @Produce  json
// @Param    kind  path     string true "image or video"
// @Param    media formData file   true "Captured media"
// @Success  200 {object} response.ScanResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  413 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError "INFERENCE_FAILED"
// @Failure  502 {object} pkg.HTTPError
// @Router   /reports/{kind} [post]
func (h *ReportHandler) SubmitMedia(c *gin.Context) {
	kind := entities.MediaKind(c.Param("kind"))
	if !kind.IsValid() {
		writeError(c, usecase.ErrUnsupportedKind)
		return
	}
	fh, err := c.FormFile("media")
	if err != nil {
		writeError(c, usecase.ErrMediaRequired)
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Printf("[report][handler] warning: failed to close upload: %v", closeErr)
		}
	}()

	result, err := h.usecase.SubmitMedia(c.Request.Context(), kind, interfaces.MediaUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReportResult(result))
}

// ListReports godoc
// @Summary   The logged-in user's reports, newest first
// @Tags      reports
// @Security  Bearer
// @Produce   json
// @Success   200 {array} response.ReportResponse
// @Router    /reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	reports, err := h.usecase.ListMyReports(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReports(reports))
}

// LiveScan godoc
// @Summary  Detect defects on a single camera frame
// @Tags     reports
// @Accept   json
// @Produce  json
// @Param    body body request.LiveScanRequest true "Base64 frame"
// @Success  200 {object} response.LiveScanResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /scans/live [post]
func (h *ReportHandler) LiveScan(c *gin.Context) {
	var payload request.LiveScanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	frame, err := payload.Decode()
	if err != nil {
		writeError(c, usecase.ErrLiveImageRequired)
		return
	}
	detections, err := h.usecase.LiveScan(c.Request.Context(), frame)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.LiveScanResponse{Detections: detections})
}
