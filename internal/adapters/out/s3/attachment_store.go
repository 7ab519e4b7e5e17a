// Package s3 keeps order attachments in an S3 bucket.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// Config selects the bucket. Static keys are optional; without them the
// default AWS credential chain is used. Endpoint points the client at an
// S3-compatible server and switches to path-style addressing.
type Config struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

// AttachmentStore implements ports.AttachmentStore.
type AttachmentStore struct {
	client  *awss3.Client
	presign *awss3.PresignClient
	bucket  string
	region  string
	logger  *slog.Logger
}

func NewAttachmentStore(ctx context.Context, cfg Config, logger *slog.Logger) (*AttachmentStore, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errs.NewConfigurationError("S3_BUCKET_NAME", "set the bucket that holds order attachments")
	}
	if strings.TrimSpace(cfg.Region) == "" {
		return nil, errs.NewConfigurationError("AWS_REGION", "set the region of the attachment bucket")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errs.NewConfigurationErrorWithCause("AWS_ACCESS_KEY_ID", "check the AWS credentials", err)
	}

	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &AttachmentStore{
		client:  client,
		presign: awss3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		region:  cfg.Region,
		logger:  logger.With("component", "s3_store", "bucket", cfg.Bucket),
	}, nil
}

// PublicURL is the virtual-hosted URL recorded for a stored object. Every key
// segment is percent-encoded.
func (s *AttachmentStore) PublicURL(key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, strings.Join(segments, "/"))
}

func (s *AttachmentStore) Store(ctx context.Context, key string, blob ports.Blob) (string, error) {
	body, size, err := seekable(blob)
	if err != nil {
		return "", errs.NewAdapterError("read upload", err)
	}

	input := &awss3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
	}
	if blob.ContentType != "" {
		input.ContentType = aws.String(blob.ContentType)
	}

	if _, err = s.client.PutObject(ctx, input); err != nil {
		s.logger.ErrorContext(ctx, "upload failed", "key", key, "error", err)
		return "", errs.NewAdapterError("put object", err)
	}
	return s.PublicURL(key), nil
}

func (s *AttachmentStore) ListUnderPrefix(ctx context.Context, prefix string) ([]ports.StoredObject, error) {
	paginator := awss3.NewListObjectsV2Paginator(s.client, &awss3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})

	var objects []ports.StoredObject
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errs.NewAdapterError("list objects", err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if key == "" || strings.HasSuffix(key, "/") {
				continue
			}
			objects = append(objects, ports.StoredObject{
				Key:          key,
				DisplayName:  path.Base(key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}
	return objects, nil
}

func (s *AttachmentStore) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, awss3.WithPresignExpires(ttl))
	if err != nil {
		return "", errs.NewAdapterError("presign", err)
	}
	return req.URL, nil
}

// seekable returns a body the SDK can rewind for signing, and its length.
func seekable(blob ports.Blob) (io.ReadSeeker, int64, error) {
	if blob.Body == nil {
		return bytes.NewReader(nil), 0, nil
	}
	if rs, ok := blob.Body.(io.ReadSeeker); ok && blob.Size > 0 {
		return rs, blob.Size, nil
	}
	data, err := io.ReadAll(blob.Body)
	if err != nil {
		return nil, 0, err
	}
	return bytes.NewReader(data), int64(len(data)), nil
}
