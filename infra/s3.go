package infra

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/ola007-cpu/webApp/config"
	"github.com/ola007-cpu/webApp/utils"
)

// S3Client is the AWS-S3-compatible object store provider. A custom
// endpoint switches the client to path-style addressing so it also
// works against S3-compatible services.
type S3Client struct {
	Client   *s3.Client
	Presign  *s3.PresignClient
	Endpoint string
	Region   string
	Bucket   string
	ensured  atomic.Bool
}

func InitS3Client(cfg *config.EnvConfig) *S3Client {
	c := &S3Client{
		Endpoint: cfg.S3.Endpoint,
		Region:   cfg.S3.Region,
		Bucket:   cfg.Storage.Bucket,
	}

	if cfg.S3.AccessKey == "" || cfg.S3.SecretKey == "" {
		log.Println("S3 credentials not configured, object storage is unavailable")
		return c
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		),
	)
	if err != nil {
		log.Printf("Failed to load S3 configuration: %v", err)
		return c
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
			o.UsePathStyle = true
		}
	})

	c.Client = client
	c.Presign = s3.NewPresignClient(client)
	return c
}

func (c *S3Client) ensureBucket(ctx context.Context) error {
	if c.ensured.Load() {
		return nil
	}

	_, err := c.Client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(c.Bucket)})
	if err != nil {
		_, err = c.Client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(c.Bucket)})
		if err != nil {
			var owned *types.BucketAlreadyOwnedByYou
			var exists *types.BucketAlreadyExists
			if !errors.As(err, &owned) && !errors.As(err, &exists) {
				return fmt.Errorf("create bucket: %w", err)
			}
		}
	}

	c.ensured.Store(true)
	return nil
}

func (c *S3Client) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	if c.Client == nil {
		return "", fmt.Errorf("%w: s3 client not configured", utils.ErrStorageUnavailable)
	}
	if err := c.ensureBucket(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrStorageUnavailable, err)
	}

	_, err := c.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.Bucket),
		Key:           aws.String(key),
		Body:          reader,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: put object %q: %v", utils.ErrStorageUnavailable, key, err)
	}

	if c.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(c.Endpoint, "/"), c.Bucket, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.Bucket, c.Region, key), nil
}

func (c *S3Client) PresignedURL(ctx context.Context, location string, ttl time.Duration) (string, error) {
	if c.Presign == nil {
		return "", fmt.Errorf("%w: s3 client not configured", utils.ErrSigning)
	}

	key, err := ObjectKeyFromLocation(location)
	if err != nil {
		return "", err
	}

	req, err := c.Presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("%w: presign %q: %v", utils.ErrSigning, key, err)
	}
	return req.URL, nil
}
