package resource

import (
	"context"
	"errors"
	"fmt"
	"io"

	"zoo-food-costs/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
)

// objectGetter is the subset of the S3 client used by s3Source.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3Source implements Source for resources stored in AWS S3.
type s3Source struct {
	client objectGetter
	bucket string
	logger zerolog.Logger
}

// NewS3Source creates a new S3-based resource source.
func NewS3Source(ctx context.Context, bucket, region string, logger zerolog.Logger) (Source, error) {
	logger = logger.With().Str("component", "s3-source").Logger()

	// Load AWS configuration
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 source initialised")

	return newS3Source(s3.NewFromConfig(cfg), bucket, logger), nil
}

func newS3Source(client objectGetter, bucket string, logger zerolog.Logger) *s3Source {
	return &s3Source{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Open streams the object stored under key.
func (s *s3Source) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	s.logger.Debug().
		Str("bucket", s.bucket).
		Str("key", key).
		Msg("fetching resource from S3")

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		var notFound *types.NotFound
		if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
			s.logger.Warn().
				Str("bucket", s.bucket).
				Str("key", key).
				Msg("resource not found in S3")
			return nil, model.NotFoundError("s3://"+s.bucket+"/"+key, err)
		}
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to get object from S3")
		return nil, model.IOError("s3://"+s.bucket+"/"+key, err)
	}

	return result.Body, nil
}

// fallbackSource tries S3 first, then falls back to the local file system.
type fallbackSource struct {
	s3Source   Source
	fileSource Source
	s3Prefix   string
	logger     zerolog.Logger
}

// NewFallbackSource creates a source that tries S3 first, then falls back to local
// files. If s3Source is nil, it only uses the file source.
func NewFallbackSource(s3Source, fileSource Source, s3Prefix string, logger zerolog.Logger) Source {
	return &fallbackSource{
		s3Source:   s3Source,
		fileSource: fileSource,
		s3Prefix:   s3Prefix,
		logger:     logger.With().Str("component", "fallback-source").Logger(),
	}
}

// Open prepends the S3 prefix for the S3 attempt and uses name as-is locally.
func (s *fallbackSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if s.s3Source != nil {
		key := s.s3Prefix + name

		rc, err := s.s3Source.Open(ctx, key)
		if err == nil {
			return rc, nil
		}

		s.logger.Warn().
			Err(err).
			Str("s3_key", key).
			Msg("failed to load from S3, falling back to local file system")
	}

	return s.fileSource.Open(ctx, name)
}
