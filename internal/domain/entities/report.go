package entities

import "time"

type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

func (k MediaKind) IsValid() bool {
	return k == MediaKindImage || k == MediaKindVideo
}

// Report is the persisted outcome of a scan. Reports are append-only and owned by Email.
type Report struct {
	RecordKey string    `json:"record_key"`
	Email     string    `json:"email"`
	Type      MediaKind `json:"type"`
	OutputURL string    `json:"output_url"`
	Timestamp time.Time `json:"timestamp"`
}
