package monthobj

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/starbook-app/starbook/internal/domain/auspice"
)

// ObjectPublisher writes month documents to an S3-compatible bucket,
// the origin the public site reads /data/general/{year}/{MM}.json from.
type ObjectPublisher struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

// NewObjectPublisher constructs the publisher.
func NewObjectPublisher(endpoint, accessKey, secretKey, bucket, region string, logger *slog.Logger) (*ObjectPublisher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cleanEndpoint := sanitizeEndpoint(endpoint)
	useSSL := strings.HasPrefix(strings.ToLower(endpoint), "https")
	client, err := minio.New(cleanEndpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure:       useSSL,
		Region:       region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init object client: %w", err)
	}
	return &ObjectPublisher{client: client, bucket: bucket, logger: logger.With("component", "monthobj.object")}, nil
}

func (p *ObjectPublisher) ensureBucket(ctx context.Context) error {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err == nil && exists {
		return nil
	}
	err = p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "BucketAlreadyOwnedByYou" {
		return err
	}
	return nil
}

// Publish uploads the month document to {year}/{MM}.json.
func (p *ObjectPublisher) Publish(ctx context.Context, month auspice.Month) error {
	if err := p.ensureBucket(ctx); err != nil {
		return err
	}
	data, err := encodeMonth(month)
	if err != nil {
		return err
	}
	key := MonthKey(month.Year, month.Month)
	_, err = p.client.PutObject(ctx, p.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:      "application/json",
		DisableMultipart: true, // month documents stay far below part size
	})
	if err != nil {
		return err
	}
	p.logger.Debug("month published", "key", key, "bytes", len(data))
	return nil
}

var _ auspice.Publisher = (*ObjectPublisher)(nil)

// sanitizeEndpoint removes schemes and paths to satisfy minio.New expectations.
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if strings.Contains(raw, "/") {
		parts := strings.Split(raw, "/")
		raw = parts[0]
	}
	return raw
}
