package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"car_maintenance/internal/domain/apperr"
	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase/interfaces"
)

const (
	MaxImageSize = 10 << 20
	MaxVideoSize = 100 << 20
)

var (
	ErrMediaRequired      = fmt.Errorf("%w: a media file is required", apperr.ErrValidation)
	ErrUnsupportedKind    = fmt.Errorf("%w: media kind must be image or video", apperr.ErrValidation)
	ErrUnsupportedFormat  = fmt.Errorf("%w: unsupported file format", apperr.ErrValidation)
	ErrMediaTooLarge      = fmt.Errorf("%w: media file is too large", apperr.ErrValidation)
	ErrLiveImageRequired  = fmt.Errorf("%w: a camera frame is required", apperr.ErrValidation)
	errMediaLimitExceeded = errors.New("media exceeds size limit")
)

var allowedExtensions = map[entities.MediaKind][]string{
	entities.MediaKindImage: {".jpg", ".jpeg", ".png", ".webp", ".heic"},
	entities.MediaKindVideo: {".mp4", ".mov", ".m4v", ".3gp", ".webm"},
}

// ReportResult is what the caller sees after a scan.
// Report is set only when the result was persisted for the logged-in user.
type ReportResult struct {
	Kind      entities.MediaKind
	OutputURL string
	Persisted bool
	Report    *entities.Report
}

// IReportUseCase is the scan pipeline: upload media for analysis, normalize the
// annotated output URL and keep a report for logged-in users.
//
// Report persistence is best-effort: a scan without a session, or whose report write
// fails, still returns the annotated result.

type IReportUseCase interface {
	SubmitMedia(ctx context.Context, kind entities.MediaKind, media interfaces.MediaUpload) (ReportResult, error)
	ListReportsFor(ctx context.Context, email string) ([]entities.Report, error)
	ListMyReports(ctx context.Context) ([]entities.Report, error)
	LiveScan(ctx context.Context, image []byte) (json.RawMessage, error)
}

type ReportUseCase struct {
	inference interfaces.IInferenceGateway
	reports   interfaces.IReportRepository
	identity  interfaces.IIdentityProvider
	now       func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(inference interfaces.IInferenceGateway, reports interfaces.IReportRepository, identity interfaces.IIdentityProvider) *ReportUseCase {
	return &ReportUseCase{inference: inference, reports: reports, identity: identity, now: time.Now}
}

func (u *ReportUseCase) SubmitMedia(ctx context.Context, kind entities.MediaKind, media interfaces.MediaUpload) (ReportResult, error) {
	if err := validateMedia(kind, media); err != nil {
		return ReportResult{}, err
	}
	media.Body = &limitedReader{r: media.Body, remaining: maxSize(kind)}

	raw, err := u.inference.Analyze(ctx, kind, media)
	if err != nil {
		inferenceCallsTotal.WithLabelValues(string(kind), "error").Inc()
		if errors.Is(err, errMediaLimitExceeded) {
			return ReportResult{}, ErrMediaTooLarge
		}
		log.Printf("[report][usecase] analysis failed kind=%s err=%v", kind, err)
		return ReportResult{}, err
	}
	inferenceCallsTotal.WithLabelValues(string(kind), "ok").Inc()

	result := ReportResult{Kind: kind, OutputURL: QualifyOutputURL(u.inference.BaseURL(), raw)}

	owner, ok, err := u.identity.Current(ctx)
	if err != nil {
		log.Printf("[report][usecase] session lookup failed, report not persisted err=%v", err)
		reportPersistFailuresTotal.Inc()
		return result, nil
	}
	if !ok {
		log.Printf("[report][usecase] no session, report not persisted kind=%s", kind)
		return result, nil
	}

	rep, err := u.reports.Create(ctx, entities.Report{
		Email:     owner.Email,
		Type:      kind,
		OutputURL: result.OutputURL,
		Timestamp: u.now().UTC(),
	})
	if err != nil {
		reportPersistFailuresTotal.Inc()
		log.Printf("[report][usecase] warning: report persist failed email=%s err=%v", owner.Email, err)
		return result, nil
	}
	result.Persisted = true
	result.Report = &rep
	log.Printf("[report][usecase] report saved record_key=%s email=%s kind=%s", rep.RecordKey, owner.Email, kind)
	return result, nil
}

// ListReportsFor returns email's reports, newest first.
func (u *ReportUseCase) ListReportsFor(ctx context.Context, email string) ([]entities.Report, error) {
	if entities.NormalizeEmail(email) == "" {
		return nil, apperr.Validation("email is required")
	}
	all, err := u.reports.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Report, 0)
	for _, r := range all {
		if entities.SameEmail(r.Email, email) {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b entities.Report) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return out, nil
}

func (u *ReportUseCase) ListMyReports(ctx context.Context) ([]entities.Report, error) {
	me, err := u.identity.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	return u.ListReportsFor(ctx, me.Email)
}

// LiveScan runs detection on a single camera frame. Nothing is persisted.
func (u *ReportUseCase) LiveScan(ctx context.Context, image []byte) (json.RawMessage, error) {
	if len(image) == 0 {
		return nil, ErrLiveImageRequired
	}
	if len(image) > MaxImageSize {
		return nil, ErrMediaTooLarge
	}
	out, err := u.inference.LiveAnalyze(ctx, image)
	if err != nil {
		inferenceCallsTotal.WithLabelValues("live", "error").Inc()
		log.Printf("[report][usecase] live scan failed err=%v", err)
		return nil, err
	}
	inferenceCallsTotal.WithLabelValues("live", "ok").Inc()
	return out, nil
}

// QualifyOutputURL resolves a service-relative output path against the inference base.
// Absolute http(s) URLs are returned unchanged.
func QualifyOutputURL(base, output string) string {
	output = strings.TrimSpace(output)
	lower := strings.ToLower(output)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return output
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(output, "/")
}

func validateMedia(kind entities.MediaKind, media interfaces.MediaUpload) error {
	if !kind.IsValid() {
		return ErrUnsupportedKind
	}
	if media.Body == nil {
		return ErrMediaRequired
	}
	if media.Size > maxSize(kind) {
		return ErrMediaTooLarge
	}
	ext := strings.ToLower(filepath.Ext(media.Filename))
	if ext == "" {
		if strings.HasPrefix(strings.ToLower(media.ContentType), string(kind)+"/") {
			return nil
		}
		return ErrUnsupportedFormat
	}
	if !slices.Contains(allowedExtensions[kind], ext) {
		return fmt.Errorf("%w: %s files are not accepted for %s scans", ErrUnsupportedFormat, ext, kind)
	}
	return nil
}

func maxSize(kind entities.MediaKind) int64 {
	if kind == entities.MediaKindVideo {
		return MaxVideoSize
	}
	return MaxImageSize
}

// limitedReader fails once more than remaining bytes are read.
type limitedReader struct {
	r         io.Reader
	remaining int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		return n, errMediaLimitExceeded
	}
	return n, err
}
