package inference

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	"car_maintenance/internal/domain/apperr"
	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase/interfaces"
)

const (
	imagePath = "/analyze_al"
	videoPath = "/analyze-video_al"
	livePath  = "/live-analyze"

	defaultTimeout = 120 * time.Second
)

var ErrMissingInferenceURL = errors.New("missing INFERENCE_BASE_URL")

// analysisResponse covers both the image and the video endpoint answers.
type analysisResponse struct {
	YoloResult *struct {
		AnnotatedImage string `json:"annotated_image"`
	} `json:"yolo_result"`
	OutputVideo string `json:"output_video"`
	OutputURL   string `json:"output_url"`
	Error       string `json:"error"`
}

type Gateway struct {
	base    string
	timeout time.Duration
	http    *http.Client
}

var _ interfaces.IInferenceGateway = (*Gateway)(nil)

func NewGateway(baseURL string, timeout time.Duration, hc *http.Client) (*Gateway, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		log.Printf("[inference][gateway] missing INFERENCE_BASE_URL")
		return nil, ErrMissingInferenceURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if hc == nil {
		hc = &http.Client{}
	}
	log.Printf("[inference][gateway] client initialized base=%s", base)
	return &Gateway{base: base, timeout: timeout, http: hc}, nil
}

func (g *Gateway) BaseURL() string {
	return g.base
}

func (g *Gateway) Analyze(ctx context.Context, kind entities.MediaKind, media interfaces.MediaUpload) (string, error) {
	var path, field string
	switch kind {
	case entities.MediaKindImage:
		path, field = imagePath, "image"
	case entities.MediaKindVideo:
		path, field = videoPath, "video"
	default:
		return "", apperr.Validation("unsupported media kind %q", kind)
	}
	log.Printf("[inference][gateway] analyze start kind=%s file=%s size=%d", kind, media.Filename, media.Size)

	if media.Body == nil {
		return "", apperr.Validation("%s file is required", field)
	}
	upload := newMultipartUpload(field, media)
	raw, status, err := g.post(ctx, path, upload.contentType, upload)
	if readErr := upload.finish(); readErr != nil {
		log.Printf("[inference][gateway] analyze upload aborted kind=%s err=%v", kind, readErr)
		return "", fmt.Errorf("read %s upload: %w", field, readErr)
	}
	if err != nil {
		log.Printf("[inference][gateway] analyze transport failed kind=%s err=%v", kind, err)
		return "", fmt.Errorf("%w: inference %s: %v", apperr.ErrNetwork, path, err)
	}

	var resp analysisResponse
	decodeErr := json.Unmarshal(raw, &resp)
	if decodeErr == nil && resp.Error != "" {
		log.Printf("[inference][gateway] analyze rejected kind=%s status=%d error=%q", kind, status, resp.Error)
		return "", fmt.Errorf("%w: %s", apperr.ErrInference, resp.Error)
	}
	if status/100 != 2 {
		log.Printf("[inference][gateway] analyze failed kind=%s status=%d", kind, status)
		return "", fmt.Errorf("%w: inference %s: status %d", apperr.ErrNetwork, path, status)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("%w: unreadable inference response: %v", apperr.ErrInference, decodeErr)
	}

	out := resp.OutputURL
	if kind == entities.MediaKindImage && resp.YoloResult != nil && resp.YoloResult.AnnotatedImage != "" {
		out = resp.YoloResult.AnnotatedImage
	}
	if kind == entities.MediaKindVideo && resp.OutputVideo != "" {
		out = resp.OutputVideo
	}
	if out == "" {
		return "", fmt.Errorf("%w: response carried no annotated output", apperr.ErrInference)
	}
	log.Printf("[inference][gateway] analyze success kind=%s output=%s", kind, out)
	return out, nil
}

func (g *Gateway) LiveAnalyze(ctx context.Context, image []byte) (json.RawMessage, error) {
	if len(image) == 0 {
		return nil, apperr.Validation("image is required")
	}
	payload, err := json.Marshal(map[string]string{"image": base64.StdEncoding.EncodeToString(image)})
	if err != nil {
		return nil, err
	}

	raw, status, err := g.post(ctx, livePath, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Printf("[inference][gateway] live scan transport failed err=%v", err)
		return nil, fmt.Errorf("%w: inference %s: %v", apperr.ErrNetwork, livePath, err)
	}
	if status/100 != 2 {
		log.Printf("[inference][gateway] live scan failed status=%d", status)
		return nil, fmt.Errorf("%w: inference %s: status %d", apperr.ErrNetwork, livePath, status)
	}

	var resp struct {
		Detections json.RawMessage `json:"detections"`
		Error      string          `json:"error"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: unreadable live scan response: %v", apperr.ErrInference, err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("%w: %s", apperr.ErrInference, resp.Error)
	}
	if len(resp.Detections) > 0 && string(resp.Detections) != "null" {
		return resp.Detections, nil
	}
	return json.RawMessage(raw), nil
}

func (g *Gateway) post(ctx context.Context, path, contentType string, body io.Reader) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.base+path, body)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", contentType)

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("[inference][gateway] warning: failed to close body: %v", closeErr)
		}
	}()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return raw, resp.StatusCode, nil
}

// multipartUpload streams the form body through a pipe so large videos are never
// held in memory.
type multipartUpload struct {
	*io.PipeReader
	contentType string
	done        chan struct{}
	readErr     error
}

func newMultipartUpload(field string, media interfaces.MediaUpload) *multipartUpload {
	pr, pw := io.Pipe()
	w := multipart.NewWriter(pw)
	u := &multipartUpload{PipeReader: pr, contentType: w.FormDataContentType(), done: make(chan struct{})}

	go func() {
		defer close(u.done)
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filepath.Base(media.Filename)))
		ct := media.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)

		part, err := w.CreatePart(h)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		src := &sourceReader{r: media.Body}
		if _, err := io.Copy(part, src); err != nil {
			u.readErr = src.err
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(w.Close())
	}()
	return u
}

// finish releases the writer goroutine and reports a failure to read the upload itself.
func (u *multipartUpload) finish() error {
	_ = u.PipeReader.Close()
	<-u.done
	return u.readErr
}

// sourceReader remembers read errors from the upload, as opposed to pipe errors.
type sourceReader struct {
	r   io.Reader
	err error
}

func (s *sourceReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		s.err = err
	}
	return n, err
}
