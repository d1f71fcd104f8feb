package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Storage is the blob seam services depend on: upload returns a public URL,
// delete takes that URL back.
type Storage interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, fileURL string) error
}

// Spaces uploads to a DigitalOcean Spaces bucket (S3-compatible API).
type Spaces struct {
	client   *minio.Client
	endpoint string
	bucket   string
	prefix   string
}

func NewSpaces(endpoint, accessKey, secretKey, bucket string) (*Spaces, error) {
	host := strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
	client, err := minio.New(host, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: true,
	})
	if err != nil {
		return nil, err
	}
	return &Spaces{
		client:   client,
		endpoint: "https://" + host,
		bucket:   bucket,
		prefix:   "eventhub",
	}, nil
}

// Upload stores the blob under a unique key and returns its public URL.
func (s *Spaces) Upload(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error) {
	key := fmt.Sprintf("%s/%d_%s_%s", s.prefix, time.Now().Unix(), uuid.NewString()[:8], sanitizeFilename(filename))

	_, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"x-amz-acl": "public-read"},
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key), nil
}

// Delete removes the object addressed by a URL previously returned by Upload.
func (s *Spaces) Delete(ctx context.Context, fileURL string) error {
	key := strings.TrimPrefix(fileURL, fmt.Sprintf("%s/%s/", s.endpoint, s.bucket))
	if key == fileURL || key == "" {
		return fmt.Errorf("url %q does not belong to bucket %s", fileURL, s.bucket)
	}
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_")
	return replacer.Replace(name)
}
