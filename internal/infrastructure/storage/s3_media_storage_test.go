package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"car_maintenance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, endpoint string) *S3MediaStorage {
	t.Helper()
	client := s3.New(s3.Options{
		Region:       "us-east-1",
		Credentials:  credentials.NewStaticCredentialsProvider("local", "local", ""),
		BaseEndpoint: aws.String(endpoint),
		UsePathStyle: true,
	})
	st, err := NewS3MediaStorage(client, "logos-bucket")
	require.NoError(t, err)
	st.now = func() time.Time { return time.Unix(1700000000, 0) }
	return st
}

func TestNewS3MediaStorage_RequiresBucket(t *testing.T) {
	_, err := NewS3MediaStorage(s3.New(s3.Options{Region: "us-east-1"}), "")
	assert.ErrorIs(t, err, ErrMissingBucket)
}

func TestS3MediaStorage_Put(t *testing.T) {
	var mu sync.Mutex
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotPath, gotMethod = r.URL.Path, r.Method
		mu.Unlock()
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	st := newTestStorage(t, srv.URL)
	key, err := st.Put(context.Background(), " Mo@Garage.com", interfaces.MediaUpload{
		Filename:    "My Logo.PNG",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("\x89PNG"),
	})
	require.NoError(t, err)
	assert.Equal(t, "logos/mo_garage.com/1700000000_my_logo.png", key)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/logos-bucket/"+key, gotPath)
}

func TestS3MediaStorage_URL(t *testing.T) {
	st := newTestStorage(t, "http://127.0.0.1:9")

	empty, err := st.URL(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, empty)

	legacy, err := st.URL(context.Background(), "https://cdn.example.com/a.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.png", legacy)

	signed, err := st.URL(context.Background(), "logos/x/1_a.png")
	require.NoError(t, err)
	assert.Contains(t, signed, "/logos-bucket/logos/x/1_a.png")
	assert.Contains(t, signed, "X-Amz-Signature=")
}
