package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"

	"github.com/dtroode/aigate/internal/logger"
	"github.com/dtroode/aigate/internal/model"
)

// ErrUnavailable is returned by Save when the store was never reachable.
var ErrUnavailable = errors.New("object storage unavailable")

// Internal adapter interface to enable mocking without a real MinIO server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader *bytes.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// Wrapper to adapt *minio.Client to minioAPI.
type minioClientWrapper struct{ c *minio.Client }

func (w minioClientWrapper) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return w.c.BucketExists(ctx, bucketName)
}
func (w minioClientWrapper) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return w.c.MakeBucket(ctx, bucketName, opts)
}
func (w minioClientWrapper) PutObject(ctx context.Context, bucketName, objectName string, reader *bytes.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return w.c.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}

var _ model.ObjectStore = (*Client)(nil)

// Client is the blob-store facade. Construction always succeeds: the bucket
// probe runs once at startup and a failed probe pins the client unavailable
// for the process lifetime.
type Client struct {
	api       minioAPI
	bucket    string
	available bool
	logger    *logger.Logger
}

// NewClient creates a storage client using a real *minio.Client instance.
func NewClient(ctx context.Context, client *minio.Client, bucket string, logger *logger.Logger) *Client {
	return NewClientWithAPI(ctx, minioClientWrapper{c: client}, bucket, logger)
}

// NewClientWithAPI allows injecting a mockable API (used in tests).
func NewClientWithAPI(ctx context.Context, api minioAPI, bucket string, logger *logger.Logger) *Client {
	c := &Client{
		api:    api,
		bucket: bucket,
		logger: logger,
	}

	if err := c.ensureBucketExists(ctx); err != nil {
		logger.Error("Storage: bucket probe failed, persistence disabled", "bucket", bucket, "error", err.Error())
		return c
	}

	c.available = true
	logger.Info("Storage: initialized", "bucket", bucket)
	return c
}

// NewDisabled creates a client with no backing store; every Save reports
// ErrUnavailable. Used when storage is not configured.
func NewDisabled(logger *logger.Logger) *Client {
	logger.Warn("Storage: not configured, transaction logs will be dropped")
	return &Client{logger: logger}
}

// Available reports whether the startup probe succeeded.
func (c *Client) Available() bool {
	return c.available
}

// Save uploads data under key with the given content type, overwriting any
// previous object at the same key.
func (c *Client) Save(ctx context.Context, key string, data []byte, contentType string) error {
	if !c.available {
		return ErrUnavailable
	}

	_, err := c.api.PutObject(ctx, c.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}

	return nil
}

// ensureBucketExists creates the bucket if it doesn't exist.
func (c *Client) ensureBucketExists(ctx context.Context) error {
	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := c.api.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		c.logger.Info("Storage: created bucket", "bucket", c.bucket)
	}

	return nil
}
