package journalarchive

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/daily-secrets/internal/domain/journal"
)

// S3Storage writes exports to an S3-compatible bucket (R2, MinIO, AWS).
type S3Storage struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
	ready  atomic.Bool
}

// Options configures S3Storage.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
}

// NewS3Storage constructs the storage adapter.
func NewS3Storage(opts Options, logger *slog.Logger) (*S3Storage, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(opts.Bucket) == "" {
		return nil, fmt.Errorf("journal archive bucket is required")
	}
	client, err := minio.New(sanitizeEndpoint(opts.Endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure:       useSSL(opts.Endpoint),
		Region:       opts.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}
	return &S3Storage{
		client: client,
		bucket: opts.Bucket,
		logger: logger.With("component", "journalarchive.s3"),
	}, nil
}

func (s *S3Storage) ensureBucket(ctx context.Context) error {
	if s.ready.Load() {
		return nil
	}
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err == nil && exists {
		s.ready.Store(true)
		return nil
	}
	err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "BucketAlreadyOwnedByYou" {
		return err
	}
	s.logger.Info("journal archive bucket ready", "bucket", s.bucket)
	s.ready.Store(true)
	return nil
}

// Put uploads an export document.
func (s *S3Storage) Put(ctx context.Context, key string, data []byte, mimeType string) (journal.StoredObject, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return journal.StoredObject{}, err
	}
	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:      mimeType,
		DisableMultipart: len(data) < 5*1024*1024,
	})
	if err != nil {
		return journal.StoredObject{}, err
	}
	return journal.StoredObject{Key: key, Size: info.Size, ETag: info.ETag}, nil
}

var _ journal.ObjectStorage = (*S3Storage)(nil)

// sanitizeEndpoint strips scheme and path; minio.New wants host[:port].
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if idx := strings.Index(raw, "/"); idx >= 0 {
		raw = raw[:idx]
	}
	return raw
}

func useSSL(endpoint string) bool {
	return !strings.HasPrefix(strings.ToLower(strings.TrimSpace(endpoint)), "http://")
}
