// Package s3 stores each collection as one object in an S3-compatible
// bucket.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"admanager/internal/config/configs"
	"admanager/internal/core/port"
)

// KVStore implements port.KV. Keys map to objects under prefix.
type KVStore struct {
	client *s3.Client
	bucket string
	prefix string
}

var _ port.KV = (*KVStore)(nil)

// New builds a client from the default AWS credential chain.
func New(ctx context.Context, cfg configs.S3) (*KVStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewWithClient(NewClient(awsCfg, cfg), cfg.Bucket, cfg.Prefix), nil
}

// NewClient applies the endpoint and addressing options of cfg.
func NewClient(awsCfg aws.Config, cfg configs.S3) *s3.Client {
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		// S3-compatible services reject the default trailing checksums.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})
}

func NewWithClient(client *s3.Client, bucket, prefix string) *KVStore {
	return &KVStore{client: client, bucket: bucket, prefix: prefix}
}

func (s *KVStore) objectKey(key string) string {
	return s.prefix + key + ".json"
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if isNotFound(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("s3 get %s: %w", key, err)
	}
	defer func() { _ = out.Body.Close() }()
	data, err := io.ReadAll(out.Body)
	if err != nil {
		return "", false, fmt.Errorf("s3 read %s: %w", key, err)
	}
	return string(data), true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(key)),
		Body:        strings.NewReader(value),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return fmt.Errorf("s3 put %s: %w", key, err)
	}
	return nil
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var re *awshttp.ResponseError
	return errors.As(err, &re) && re.HTTPStatusCode() == http.StatusNotFound
}
