package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/cardwise/perktrack/internal/config"
	"github.com/cardwise/perktrack/internal/logger"
)

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ReportStore writes summary exports to an S3-compatible bucket.
type ReportStore struct {
	client objectPutter
	bucket string
	root   string
}

func NewReportStore(ctx context.Context, cfg config.SpacesConfig) (*ReportStore, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("spaces: key, secret and bucket are required")
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.digitaloceanspaces.com", cfg.Region)
	}
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{URL: endpoint}, nil
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithEndpointResolverWithOptions(resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.Key, cfg.Secret, "")),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("spaces: load config: %w", err)
	}

	return newReportStore(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Root), nil
}

func newReportStore(client objectPutter, bucket, root string) *ReportStore {
	return &ReportStore{
		client: client,
		bucket: bucket,
		root:   strings.Trim(root, "/"),
	}
}

func (s *ReportStore) Bucket() string {
	return s.bucket
}

// SummaryKey is the object key for a user's annual summary.
func (s *ReportStore) SummaryKey(userID string, year int) string {
	return path.Join(s.root, "summaries", userID, fmt.Sprintf("%d.json", year))
}

// PutJSON marshals v and uploads it under key. It returns the key written.
func (s *ReportStore) PutJSON(ctx context.Context, key string, v any) (string, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("spaces: encode %s: %w", key, err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String("application/json"),
		CacheControl: aws.String("private, max-age=0"),
	})
	if err != nil {
		logger.LogError("Report upload failed", err, slog.String("key", key))
		return "", fmt.Errorf("spaces: upload %s: %w", key, err)
	}

	logger.LogSystem("Report uploaded",
		slog.String("bucket", s.bucket),
		slog.String("key", key),
		slog.Int("bytes", len(body)))
	return key, nil
}
