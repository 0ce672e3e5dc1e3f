package request

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidImage = errors.New("image must be base64 encoded")

// LiveScanRequest carries one camera frame, base64 encoded, optionally as a data URI.
type LiveScanRequest struct {
	Image string `json:"image" binding:"required"`
}

func (r LiveScanRequest) Decode() ([]byte, error) {
	v := strings.TrimSpace(r.Image)
	if i := strings.Index(v, ";base64,"); strings.HasPrefix(v, "data:") && i >= 0 {
		v = v[i+len(";base64,"):]
	}
	raw, err := base64.StdEncoding.DecodeString(v)
	if err != nil || len(raw) == 0 {
		return nil, ErrInvalidImage
	}
	return raw, nil
}
