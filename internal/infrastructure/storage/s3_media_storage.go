package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const presignExpiry = time.Hour

var ErrMissingBucket = errors.New("missing MEDIA_BUCKET")

var unsafeKeyChars = regexp.MustCompile(`[^a-z0-9._-]+`)

// S3MediaStorage keeps mechanic logos in a private bucket.
//
// Object keys: logos/{owner}/{unix}_{filename}. Reads go through presigned URLs.
type S3MediaStorage struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	now     func() time.Time
}

var _ interfaces.IMediaStorage = (*S3MediaStorage)(nil)

func NewS3MediaStorage(client *s3.Client, bucket string) (*S3MediaStorage, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, ErrMissingBucket
	}
	return &S3MediaStorage{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		now:     time.Now,
	}, nil
}

func (s *S3MediaStorage) Put(ctx context.Context, ownerEmail string, media interfaces.MediaUpload) (string, error) {
	if media.Body == nil {
		return "", errors.New("logo body is required")
	}
	key := fmt.Sprintf("logos/%s/%d_%s",
		sanitizeKeyPart(entities.NormalizeEmail(ownerEmail)),
		s.now().Unix(),
		sanitizeKeyPart(strings.ToLower(filepath.Base(media.Filename))),
	)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        media.Body,
		ContentType: aws.String(media.ContentType),
	}
	if media.Size > 0 {
		input.ContentLength = aws.Int64(media.Size)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		log.Printf("[mechanic][storage] upload failed key=%s err=%v", key, err)
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	log.Printf("[mechanic][storage] upload success key=%s", key)
	return key, nil
}

func (s *S3MediaStorage) URL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	// Legacy listings store a full image URL instead of an object key.
	if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key, nil
	}
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = presignExpiry
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return req.URL, nil
}

func sanitizeKeyPart(s string) string {
	s = unsafeKeyChars.ReplaceAllString(strings.ToLower(s), "_")
	if s == "" {
		return "unnamed"
	}
	return s
}
