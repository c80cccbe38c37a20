package objectstore

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const defaultRegion = "us-east-1"

// Uploader stores objects in an S3 compatible bucket.
type Uploader interface {
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
}

type MinioOpts func(c *minioConfig)

type minioConfig struct {
	endpoint        string
	bucket          string
	accessKey       string
	secretAccessKey string
	region          string
	useSSL          bool
}

func newConfig(opts ...MinioOpts) *minioConfig {
	cfg := &minioConfig{
		useSSL: false,
		region: defaultRegion,
	}

	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

type MinioUploader struct {
	cfg    *minioConfig
	client *minio.Client
}

// Make sure we conform to Uploader interface
var _ Uploader = (*MinioUploader)(nil)

func NewMinioUploader(opts ...MinioOpts) (*MinioUploader, error) {
	cfg := newConfig(opts...)
	if cfg.bucket == "" {
		return nil, fmt.Errorf("bucket is required")
	}

	// Initialize minio client object.
	minioClient, err := minio.New(cfg.endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.accessKey, cfg.secretAccessKey, ""),
		Secure: cfg.useSSL,
		Region: cfg.region,
	})
	if err != nil {
		return nil, err
	}

	return &MinioUploader{cfg: cfg, client: minioClient}, nil
}

// Put uploads data under name and returns the object location as bucket/name.
func (s *MinioUploader) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, s.cfg.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", name, s.cfg.bucket, err)
	}
	return fmt.Sprintf("%s/%s", s.cfg.bucket, name), nil
}

func (s *MinioUploader) Type() string {
	return "minio"
}

func WithEndpoint(endpoint string) MinioOpts {
	return func(c *minioConfig) {
		c.endpoint = endpoint
	}
}

func WithBucket(bucket string) MinioOpts {
	return func(c *minioConfig) {
		c.bucket = bucket
	}
}

func WithAccessKey(accessKey string) MinioOpts {
	return func(c *minioConfig) {
		c.accessKey = accessKey
	}
}

func WithSecretKey(secretKey string) MinioOpts {
	return func(c *minioConfig) {
		c.secretAccessKey = secretKey
	}
}

func WithRegion(region string) MinioOpts {
	return func(c *minioConfig) {
		c.region = region
	}
}

func WithSSL(useSSL bool) MinioOpts {
	return func(c *minioConfig) {
		c.useSSL = useSSL
	}
}
