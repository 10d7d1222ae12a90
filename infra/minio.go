package infra

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/ola007-cpu/webApp/config"
	"github.com/ola007-cpu/webApp/utils"
)

type MinioClient struct {
	Client   *minio.Client
	Endpoint string
	Bucket   string
	ensured  atomic.Bool
}

// InitMinioClient builds the MinIO-backed object store. Missing
// configuration does not abort startup; operations against the
// unconfigured client fail with ErrStorageUnavailable instead.
func InitMinioClient(cfg *config.EnvConfig) *MinioClient {
	m := &MinioClient{
		Endpoint: cfg.Minio.Endpoint,
		Bucket:   cfg.Storage.Bucket,
	}

	if cfg.Minio.Endpoint == "" || cfg.Minio.AccessKey == "" || cfg.Minio.SecretKey == "" {
		log.Println("MinIO credentials not configured, object storage is unavailable")
		return m
	}

	client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		log.Printf("Failed to initialize MinIO client: %v", err)
		return m
	}

	m.Client = client
	return m
}

// ensureBucket creates the bucket if absent, once per process lifetime.
func (m *MinioClient) ensureBucket(ctx context.Context) error {
	if m.ensured.Load() {
		return nil
	}

	exists, err := m.Client.BucketExists(ctx, m.Bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		err = m.Client.MakeBucket(ctx, m.Bucket, minio.MakeBucketOptions{})
		if err != nil {
			// Lost a create race with another process, not an error.
			exists, errExists := m.Client.BucketExists(ctx, m.Bucket)
			if errExists != nil || !exists {
				return fmt.Errorf("create bucket: %w", err)
			}
		}
	}

	m.ensured.Store(true)
	return nil
}

func (m *MinioClient) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	if m.Client == nil {
		return "", fmt.Errorf("%w: minio client not configured", utils.ErrStorageUnavailable)
	}
	if err := m.ensureBucket(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrStorageUnavailable, err)
	}

	_, err := m.Client.PutObject(ctx, m.Bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("%w: put object %q: %v", utils.ErrStorageUnavailable, key, err)
	}

	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(m.Client.EndpointURL().String(), "/"), m.Bucket, key), nil
}

func (m *MinioClient) PresignedURL(ctx context.Context, location string, ttl time.Duration) (string, error) {
	if m.Client == nil {
		return "", fmt.Errorf("%w: minio client not configured", utils.ErrSigning)
	}

	key, err := ObjectKeyFromLocation(location)
	if err != nil {
		return "", err
	}

	signed, err := m.Client.PresignedGetObject(ctx, m.Bucket, key, ttl, url.Values{})
	if err != nil {
		return "", fmt.Errorf("%w: presign %q: %v", utils.ErrSigning, key, err)
	}
	return signed.String(), nil
}
