package store

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mapfs-io/mapfs/internal/retry"
	"github.com/mapfs-io/mapfs/pkg/mapfs"
)

// S3Config configures an S3Store. Endpoint is optional and mainly useful for
// S3-compatible services (MinIO and friends); AccessKey/SecretKey are
// optional and fall back to the default AWS credential chain.
type S3Config struct {
	Bucket    string
	Prefix    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// S3Store keeps one object per key under a bucket prefix. All objects under
// the prefix are loaded when the store is opened; Flush uploads written keys
// and deletes removed ones, each batch retried on transient transport
// errors. Object key = prefix + map key (map keys already start with "/").
type S3Store struct {
	snapshot
	client  *s3.Client
	bucket  string
	prefix  string
	logger  mapfs.Logger
	flusher *retry.Executor
}

// DefaultS3Prefix anchors all entry objects when no prefix is configured.
const DefaultS3Prefix = "mapfs"

// OpenS3Store connects to the bucket and loads every object under the prefix.
func OpenS3Store(ctx context.Context, cfg S3Config, logger mapfs.Logger) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required: %w", mapfs.ErrInvalidConfig)
	}
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultS3Prefix
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	s := &S3Store{
		snapshot: newSnapshot(),
		client:   client,
		bucket:   cfg.Bucket,
		prefix:   cfg.Prefix,
		logger:   logger,
	}
	s.flusher = retry.NewExecutor(
		retry.NewTransportErrorClassifier(),
		retry.NewExponentialBackoff(3),
	).WithOnRetry(func(attempt int, err error, delay time.Duration) {
		logger.Verbose("retrying s3 flush (attempt %d) in %s: %v", attempt+1, delay, err)
	})

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *S3Store) objectKey(key string) string {
	return s.prefix + key
}

func (s *S3Store) mapKey(objectKey string) string {
	return strings.TrimPrefix(objectKey, s.prefix)
}

func (s *S3Store) load(ctx context.Context) error {
	entries := make(map[string]string)

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix + "/"),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("%w: list objects: %v", mapfs.ErrConnectionFailed, err)
		}
		for _, object := range page.Contents {
			value, err := s.getObject(ctx, *object.Key)
			if err != nil {
				return err
			}
			entries[s.mapKey(*object.Key)] = value
		}
	}

	s.seed(entries)
	return nil
}

func (s *S3Store) getObject(ctx context.Context, objectKey string) (string, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return "", fmt.Errorf("get object %s: %w", objectKey, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return "", fmt.Errorf("read object %s: %w", objectKey, err)
	}
	return string(data), nil
}

// Flush persists pending changes with a background context.
func (s *S3Store) Flush() error {
	return s.FlushContext(context.Background())
}

// FlushContext uploads written keys and deletes removed ones. S3 has no
// multi-object transaction, so a failure mid-flush can leave the bucket
// partially updated; the dirty set is kept so a later Flush converges.
func (s *S3Store) FlushContext(ctx context.Context) error {
	written, removed := s.changes()
	if len(written) == 0 && len(removed) == 0 {
		return nil
	}

	err := s.flusher.Execute(ctx, func(ctx context.Context) error {
		for _, key := range removed {
			_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    aws.String(s.objectKey(key)),
			})
			if err != nil {
				return fmt.Errorf("delete object %s: %w", key, err)
			}
		}
		for key, value := range written {
			_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    aws.String(s.objectKey(key)),
				Body:   strings.NewReader(value),
			})
			if err != nil {
				return fmt.Errorf("put object %s: %w", key, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", mapfs.ErrFlushFailed, err)
	}

	s.clearChanges()
	return nil
}
