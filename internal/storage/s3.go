package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// S3Config holds the settings for an S3 compatible bucket
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	MaxBytes        int64
}

// S3ImageStore stores build images in an S3 bucket
type S3ImageStore struct {
	client   s3iface.S3API
	bucket   string
	maxBytes int64
}

// NewS3ImageStore creates an S3 backed image store. A custom endpoint (e.g. MinIO) switches to path-style addressing.
func NewS3ImageStore(cfg S3Config) (*S3ImageStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return NewS3ImageStoreWithClient(s3.New(sess), cfg.Bucket, cfg.MaxBytes), nil
}

// NewS3ImageStoreWithClient wraps an existing S3 client
func NewS3ImageStoreWithClient(client s3iface.S3API, bucket string, maxBytes int64) *S3ImageStore {
	return &S3ImageStore{client: client, bucket: bucket, maxBytes: maxBytes}
}

func (s *S3ImageStore) StoreImage(ctx context.Context, data []byte, contentType string) (string, error) {
	if err := ValidateImage(data, contentType, s.maxBytes); err != nil {
		return "", err
	}

	key := newImageKey(contentType)
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return key, nil
}

func (s *S3ImageStore) ReleaseImage(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}

	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(ref),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}
