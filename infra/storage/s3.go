// Package storage implements the blob-store contract against an
// S3-compatible object store (AWS S3, MinIO, or a hosted storage gateway).
package storage

import (
	"bytes"
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/locali/locali/pkg/config"
	pkgstorage "github.com/locali/locali/pkg/storage"
)

// S3Store is a thin wrapper over the AWS SDK v2 S3 client.
type S3Store struct {
	client        *s3.Client
	publicBaseURL string
}

var _ pkgstorage.BlobStore = (*S3Store)(nil)

// New builds an S3 client from the storage configuration. Empty credentials
// fall back to the process environment. A custom endpoint switches the
// client to any S3-compatible store.
func New(ctx context.Context, cfg config.StorageConfig) (*S3Store, error) {
	conf := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		conf = append(conf, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		conf = append(conf, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	sess, err := awsconfig.LoadDefaultConfig(ctx, conf...)
	if err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){}
	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.ForcePathStyle
		})
	}

	return &S3Store{
		client:        s3.NewFromConfig(sess, opts...),
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, bucket, object string, data []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(object),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	_, err := s.client.PutObject(ctx, input)
	return err
}

func (s *S3Store) Remove(ctx context.Context, bucket, object string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(object),
	})
	return err
}

func (s *S3Store) PublicURL(bucket, object string) string {
	return s.publicBaseURL + "/" + bucket + "/" + object
}
