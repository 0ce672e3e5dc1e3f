package interfaces

import (
	"context"
	"encoding/json"
	"io"

	"car_maintenance/internal/domain/entities"
)

// MediaUpload is a captured image or video forwarded to the inference service.
type MediaUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// IInferenceGateway abstracts the external defect-analysis service.
//
// Analyze returns the annotated output URL exactly as sent by the service (possibly
// relative). An explicit error field in the response is returned wrapped in
// apperr.ErrInference; transport failures and non-2xx answers wrap apperr.ErrNetwork.
type IInferenceGateway interface {
	Analyze(ctx context.Context, kind entities.MediaKind, media MediaUpload) (outputURL string, err error)
	LiveAnalyze(ctx context.Context, image []byte) (detections json.RawMessage, err error)
	BaseURL() string
}
