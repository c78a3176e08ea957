// Package s3 stores original photo images in an S3 bucket (or any
// S3-compatible server) behind the store.BlobStore interface.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/phrazzld/photoalbum-api/internal/config"
	"github.com/phrazzld/photoalbum-api/internal/platform/logger"
	"github.com/phrazzld/photoalbum-api/internal/store"
)

// Client is the subset of the S3 API used by BlobStore. *s3.Client implements it.
type Client interface {
	PutObject(ctx context.Context, in *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, in *awss3.DeleteObjectInput, optFns ...func(*awss3.Options)) (*awss3.DeleteObjectOutput, error)
}

// NewClient builds an S3 client from the storage configuration. Static keys
// and a custom endpoint are only applied when configured; otherwise the
// default AWS credential chain and endpoint resolution are used.
func NewClient(ctx context.Context, cfg config.StorageConfig) (*awss3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

// BlobStore implements store.BlobStore on top of S3.
type BlobStore struct {
	client Client
	bucket string
	logger *slog.Logger
}

var _ store.BlobStore = (*BlobStore)(nil)

// NewBlobStore creates a blob store writing to bucket.
// If logger is nil, a default logger will be used.
func NewBlobStore(client Client, bucket string, logger *slog.Logger) *BlobStore {
	if client == nil {
		// ALLOW-PANIC
		panic("s3 client cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BlobStore{
		client: client,
		bucket: bucket,
		logger: logger.With(slog.String("component", "blob_store")),
	}
}

// Put implements store.BlobStore.Put.
func (s *BlobStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		log.Error("failed to put blob",
			slog.String("error", err.Error()),
			slog.Int64("size", size))
		return store.NewStoreError("blob", "put", "failed to upload object", err)
	}

	log.Debug("blob stored", slog.Int64("size", size))
	return nil
}

// Get implements store.BlobStore.Get.
// Returns store.ErrBlobNotFound if the key does not exist.
func (s *BlobStore) Get(ctx context.Context, key string) (*store.Blob, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	out, err := s.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			log.Warn("blob not found")
			return nil, store.ErrBlobNotFound
		}
		log.Error("failed to get blob", slog.String("error", err.Error()))
		return nil, store.NewStoreError("blob", "get", "failed to download object", err)
	}

	return &store.Blob{
		Body:          out.Body,
		ContentType:   aws.ToString(out.ContentType),
		ContentLength: aws.ToInt64(out.ContentLength),
	}, nil
}

// Delete implements store.BlobStore.Delete. S3 treats deleting a missing key
// as success; a 404 from an S3-compatible server is treated the same way.
func (s *BlobStore) Delete(ctx context.Context, key string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil && !isNotFound(err) {
		log.Error("failed to delete blob", slog.String("error", err.Error()))
		return store.NewStoreError("blob", "delete", "failed to delete object", err)
	}

	log.Debug("blob deleted")
	return nil
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var respErr *awshttp.ResponseError
	return errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusNotFound
}
