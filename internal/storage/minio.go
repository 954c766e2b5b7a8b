package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"appshot/internal/config"
)

const presignExpiry = 24 * time.Hour

// Client wraps a MinIO client for publishing export archives.
type Client struct {
	client     *minio.Client
	bucketName string
}

// NewClient initializes the MinIO client from config and ensures the
// target bucket exists.
func NewClient(cfg config.MinIOConfig) (*Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("make bucket %q: %w", cfg.Bucket, err)
		}
	}

	return &Client{client: client, bucketName: cfg.Bucket}, nil
}

// UploadArchive stores a finished export archive under the given key.
func (c *Client) UploadArchive(ctx context.Context, objectName string, data []byte) error {
	opts := minio.PutObjectOptions{ContentType: "application/zip"}
	if _, err := c.client.PutObject(ctx, c.bucketName, objectName, bytes.NewReader(data), int64(len(data)), opts); err != nil {
		return fmt.Errorf("put object %q: %w", objectName, err)
	}
	return nil
}

// PresignedURL returns a time-limited download URL for an uploaded archive.
func (c *Client) PresignedURL(ctx context.Context, objectName string) (string, error) {
	u, err := c.client.PresignedGetObject(ctx, c.bucketName, objectName, presignExpiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign object %q: %w", objectName, err)
	}
	return u.String(), nil
}
