package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/cliento-portal/config"
	"github.com/cliento-portal/utils"
)

// S3Store implements BlobStore against an S3-compatible backend (AWS S3 or
// MinIO). Single bucket; references map to object keys directly.
type S3Store struct {
	client *s3.Client
	bucket string
}

// S3Config holds explicit construction parameters (mostly for tests). For
// prod we rely primarily on environment variables.
type S3Config struct {
	Region    string
	Bucket    string
	Endpoint  string // optional; if set enables custom endpoint (e.g. MinIO)
	PathStyle bool
}

// NewS3Store creates an S3 blob store from S3Config.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &S3Store{client: client, bucket: cfg.Bucket}, nil
}

// OpenS3FromEnv constructs an S3 store from process environment.
//
//	BLOB_S3_BUCKET=<bucket> (required)
//	BLOB_S3_REGION=<region> (default us-east-1)
//	BLOB_S3_ENDPOINT=<url>  (optional, for MinIO)
//	BLOB_S3_PATH_STYLE=true|false (default false)
//	AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (optional, default chain)
func OpenS3FromEnv(ctx context.Context) (*S3Store, error) {
	bucket := config.GetEnv("BLOB_S3_BUCKET", "")
	if bucket == "" {
		return nil, fmt.Errorf("BLOB_S3_BUCKET required for s3 blob store")
	}
	cfg := S3Config{
		Bucket:    bucket,
		Region:    config.GetEnv("BLOB_S3_REGION", ""),
		Endpoint:  config.GetEnv("BLOB_S3_ENDPOINT", ""),
		PathStyle: strings.EqualFold(config.GetEnv("BLOB_S3_PATH_STYLE", "false"), "true"),
	}
	return NewS3Store(ctx, cfg)
}

func (s *S3Store) Store(ctx context.Context, r io.Reader, filename string, meta Metadata) (string, error) {
	ref := utils.GenerateID()
	input := &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &ref,
		Body:   r,
		Metadata: map[string]string{
			"project-id": meta.ProjectID,
			"uploader":   meta.Uploader,
			"filename":   filename,
		},
	}
	if meta.MimeType != "" {
		input.ContentType = &meta.MimeType
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", err
	}
	return ref, nil
}

func (s *S3Store) Retrieve(ctx context.Context, ref string) (io.ReadCloser, string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &ref})
	if err != nil {
		if isNotFound(err) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}
	mimeType := "application/octet-stream"
	if out.ContentType != nil {
		mimeType = *out.ContentType
	}
	return out.Body, mimeType, nil
}

func (s *S3Store) Delete(ctx context.Context, ref string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: &s.bucket, Key: &ref})
	return err
}

func (s *S3Store) GetUploader(ctx context.Context, ref string) (string, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{Bucket: &s.bucket, Key: &ref})
	if err != nil {
		if isNotFound(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return out.Metadata["uploader"], nil
}

func isNotFound(err error) bool {
	var noKey *types.NoSuchKey
	if errors.As(err, &noKey) {
		return true
	}
	var notFound *types.NotFound
	return errors.As(err, &notFound)
}
