package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"car_maintenance/internal/domain/apperr"
	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase/interfaces"
	mock_interfaces "car_maintenance/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const inferenceBase = "https://scan.example.com"

var reportNow = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

type reportFixture struct {
	uc        *ReportUseCase
	inference *mock_interfaces.MockIInferenceGateway
	reports   *mock_interfaces.MockIReportRepository
	identity  *mock_interfaces.MockIIdentityProvider
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &reportFixture{
		inference: mock_interfaces.NewMockIInferenceGateway(ctrl),
		reports:   mock_interfaces.NewMockIReportRepository(ctrl),
		identity:  mock_interfaces.NewMockIIdentityProvider(ctrl),
	}
	f.uc = NewReportUseCase(f.inference, f.reports, f.identity)
	f.uc.now = func() time.Time { return reportNow }
	f.inference.EXPECT().BaseURL().Return(inferenceBase).AnyTimes()
	return f
}

func photo() interfaces.MediaUpload {
	return interfaces.MediaUpload{Filename: "bumper.JPG", ContentType: "image/jpeg", Size: 4, Body: strings.NewReader("jpeg")}
}

func TestQualifyOutputURL(t *testing.T) {
	cases := []struct {
		base, output, want string
	}{
		{inferenceBase, "/out/1.jpg", inferenceBase + "/out/1.jpg"},
		{inferenceBase + "/", "out/1.jpg", inferenceBase + "/out/1.jpg"},
		{inferenceBase, "https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{inferenceBase, "HTTP://cdn.example.com/a.mp4", "HTTP://cdn.example.com/a.mp4"},
	}
	for _, tc := range cases {
		if got := QualifyOutputURL(tc.base, tc.output); got != tc.want {
			t.Fatalf("QualifyOutputURL(%q, %q): expected %q got %q", tc.base, tc.output, tc.want, got)
		}
	}
}

func TestReportUseCase_SubmitMedia_PersistsForSession(t *testing.T) {
	f := newReportFixture(t)
	f.inference.EXPECT().Analyze(gomock.Any(), entities.MediaKindImage, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ entities.MediaKind, m interfaces.MediaUpload) (string, error) {
			body, err := io.ReadAll(m.Body)
			if err != nil || string(body) != "jpeg" {
				t.Fatalf("unexpected media body %q err=%v", body, err)
			}
			return "/out/1.jpg", nil
		})
	f.identity.EXPECT().Current(gomock.Any()).Return(customer, true, nil)
	f.reports.EXPECT().Create(gomock.Any(), entities.Report{
		Email:     customer.Email,
		Type:      entities.MediaKindImage,
		OutputURL: inferenceBase + "/out/1.jpg",
		Timestamp: reportNow,
	}).DoAndReturn(func(_ context.Context, r entities.Report) (entities.Report, error) {
		r.RecordKey = "-r1"
		return r, nil
	})

	res, err := f.uc.SubmitMedia(context.Background(), entities.MediaKindImage, photo())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Persisted || res.Report == nil || res.Report.RecordKey != "-r1" {
		t.Fatalf("expected persisted report, got %+v", res)
	}
	if res.OutputURL != inferenceBase+"/out/1.jpg" {
		t.Fatalf("unexpected output url %q", res.OutputURL)
	}
}

func TestReportUseCase_SubmitMedia_AbsoluteURLUnchanged(t *testing.T) {
	f := newReportFixture(t)
	f.inference.EXPECT().Analyze(gomock.Any(), entities.MediaKindVideo, gomock.Any()).Return("https://cdn.example.com/v.mp4", nil)
	f.identity.EXPECT().Current(gomock.Any()).Return(entities.Identity{}, false, nil)

	res, err := f.uc.SubmitMedia(context.Background(), entities.MediaKindVideo, interfaces.MediaUpload{
		Filename: "clip.mp4", Size: 3, Body: strings.NewReader("mp4"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OutputURL != "https://cdn.example.com/v.mp4" {
		t.Fatalf("absolute url must pass through, got %q", res.OutputURL)
	}
	if res.Persisted || res.Report != nil {
		t.Fatalf("anonymous scans are not persisted: %+v", res)
	}
}

func TestReportUseCase_SubmitMedia_PersistFailureStillReturnsResult(t *testing.T) {
	f := newReportFixture(t)
	f.inference.EXPECT().Analyze(gomock.Any(), gomock.Any(), gomock.Any()).Return("out/2.jpg", nil)
	f.identity.EXPECT().Current(gomock.Any()).Return(customer, true, nil)
	f.reports.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Report{}, fmt.Errorf("%w: status 503", apperr.ErrNetwork))

	res, err := f.uc.SubmitMedia(context.Background(), entities.MediaKindImage, photo())
	if err != nil {
		t.Fatalf("persist failure must not fail the scan: %v", err)
	}
	if res.Persisted || res.OutputURL != inferenceBase+"/out/2.jpg" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestReportUseCase_SubmitMedia_SessionLookupFailure(t *testing.T) {
	f := newReportFixture(t)
	f.inference.EXPECT().Analyze(gomock.Any(), gomock.Any(), gomock.Any()).Return("/out/3.jpg", nil)
	f.identity.EXPECT().Current(gomock.Any()).Return(entities.Identity{}, false, errors.New("disk"))

	res, err := f.uc.SubmitMedia(context.Background(), entities.MediaKindImage, photo())
	if err != nil || res.Persisted {
		t.Fatalf("expected unpersisted result, got %+v err=%v", res, err)
	}
}

func TestReportUseCase_SubmitMedia_InferenceErrors(t *testing.T) {
	cases := []error{
		fmt.Errorf("%w: no vehicle detected", apperr.ErrInference),
		fmt.Errorf("%w: connection refused", apperr.ErrNetwork),
	}
	for _, want := range cases {
		t.Run(want.Error(), func(t *testing.T) {
			f := newReportFixture(t)
			f.inference.EXPECT().Analyze(gomock.Any(), gomock.Any(), gomock.Any()).Return("", want)

			_, err := f.uc.SubmitMedia(context.Background(), entities.MediaKindImage, photo())
			if !errors.Is(err, want) {
				t.Fatalf("expected %v, got %v", want, err)
			}
		})
	}
}

func TestReportUseCase_SubmitMedia_StreamOverLimit(t *testing.T) {
	f := newReportFixture(t)
	f.inference.EXPECT().Analyze(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ entities.MediaKind, m interfaces.MediaUpload) (string, error) {
			_, err := io.Copy(io.Discard, m.Body)
			return "", fmt.Errorf("build upload: %w", err)
		})

	big := bytes.NewReader(make([]byte, MaxImageSize+1))
	_, err := f.uc.SubmitMedia(context.Background(), entities.MediaKindImage, interfaces.MediaUpload{
		Filename: "big.png", Size: 0, Body: big,
	})
	if !errors.Is(err, ErrMediaTooLarge) {
		t.Fatalf("expected ErrMediaTooLarge, got %v", err)
	}
}

func TestReportUseCase_SubmitMedia_Validation(t *testing.T) {
	cases := []struct {
		name  string
		kind  entities.MediaKind
		media interfaces.MediaUpload
		want  error
	}{
		{"unknown kind", "audio", photo(), ErrUnsupportedKind},
		{"no body", entities.MediaKindImage, interfaces.MediaUpload{Filename: "a.jpg"}, ErrMediaRequired},
		{"declared too large", entities.MediaKindImage, interfaces.MediaUpload{Filename: "a.jpg", Size: MaxImageSize + 1, Body: strings.NewReader("x")}, ErrMediaTooLarge},
		{"video as image", entities.MediaKindImage, interfaces.MediaUpload{Filename: "a.mp4", Body: strings.NewReader("x")}, ErrUnsupportedFormat},
		{"no extension wrong type", entities.MediaKindVideo, interfaces.MediaUpload{Filename: "blob", ContentType: "image/png", Body: strings.NewReader("x")}, ErrUnsupportedFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newReportFixture(t)
			_, err := f.uc.SubmitMedia(context.Background(), tc.kind, tc.media)
			if !errors.Is(err, tc.want) || !errors.Is(err, apperr.ErrValidation) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("no extension with matching content type", func(t *testing.T) {
		f := newReportFixture(t)
		f.inference.EXPECT().Analyze(gomock.Any(), entities.MediaKindVideo, gomock.Any()).Return("/out/v.mp4", nil)
		f.identity.EXPECT().Current(gomock.Any()).Return(entities.Identity{}, false, nil)

		_, err := f.uc.SubmitMedia(context.Background(), entities.MediaKindVideo, interfaces.MediaUpload{
			Filename: "blob", ContentType: "video/mp4", Body: strings.NewReader("x"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestReportUseCase_ListReportsFor(t *testing.T) {
	f := newReportFixture(t)
	f.reports.EXPECT().ListAll(gomock.Any()).Return([]entities.Report{
		{RecordKey: "-old", Email: "a@x.com", Timestamp: reportNow.Add(-2 * time.Hour)},
		{RecordKey: "-other", Email: "b@x.com", Timestamp: reportNow},
		{RecordKey: "-new", Email: "A@X.com", Timestamp: reportNow},
	}, nil)

	got, err := f.uc.ListReportsFor(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].RecordKey != "-new" || got[1].RecordKey != "-old" {
		t.Fatalf("expected newest first for a@x.com, got %+v", got)
	}

	if _, err := f.uc.ListReportsFor(context.Background(), " "); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestReportUseCase_ListMyReports_RequiresSession(t *testing.T) {
	f := newReportFixture(t)
	f.identity.EXPECT().RequireIdentity(gomock.Any()).Return(entities.Identity{}, ErrNoSession)

	if _, err := f.uc.ListMyReports(context.Background()); !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestReportUseCase_LiveScan(t *testing.T) {
	t.Run("returns detections", func(t *testing.T) {
		f := newReportFixture(t)
		f.inference.EXPECT().LiveAnalyze(gomock.Any(), []byte("frame")).Return(json.RawMessage(`[{"label":"dent"}]`), nil)

		out, err := f.uc.LiveScan(context.Background(), []byte("frame"))
		if err != nil || string(out) != `[{"label":"dent"}]` {
			t.Fatalf("unexpected detections %s err=%v", out, err)
		}
	})

	t.Run("empty frame", func(t *testing.T) {
		f := newReportFixture(t)
		if _, err := f.uc.LiveScan(context.Background(), nil); !errors.Is(err, ErrLiveImageRequired) {
			t.Fatalf("expected ErrLiveImageRequired, got %v", err)
		}
	})
}
