package response

import (
	"encoding/json"
	"time"

	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase"
)

type ReportResponse struct {
	RecordKey string    `json:"record_key"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	OutputURL string    `json:"output_url"`
	Timestamp time.Time `json:"timestamp"`
}

func FromReport(r entities.Report) ReportResponse {
	return ReportResponse{
		RecordKey: r.RecordKey,
		Email:     r.Email,
		Type:      string(r.Type),
		OutputURL: r.OutputURL,
		Timestamp: r.Timestamp,
	}
}

func FromReports(in []entities.Report) []ReportResponse {
	out := make([]ReportResponse, 0, len(in))
	for _, r := range in {
		out = append(out, FromReport(r))
	}
	return out
}

// ScanResponse is the outcome of a media scan. Report is omitted when nothing was saved.
type ScanResponse struct {
	Kind      string          `json:"kind"`
	OutputURL string          `json:"output_url"`
	Persisted bool            `json:"persisted"`
	Report    *ReportResponse `json:"report,omitempty"`
}

func FromReportResult(r usecase.ReportResult) ScanResponse {
	out := ScanResponse{Kind: string(r.Kind), OutputURL: r.OutputURL, Persisted: r.Persisted}
	if r.Report != nil {
		rep := FromReport(*r.Report)
		out.Report = &rep
	}
	return out
}

type LiveScanResponse struct {
	Detections json.RawMessage `json:"detections"`
}
