package output

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// UploadTimeout bounds a single object upload
const UploadTimeout = 10 * time.Second

// S3Config holds the object storage settings
type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

// objectPutter is the part of the S3 client used for uploads
type objectPutter interface {
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

// S3Uploader stores rendered images in an S3 compatible bucket
type S3Uploader struct {
	client objectPutter
	bucket string
	logger core.Logger
}

// NewS3Uploader creates an uploader with static credentials and path-style
// addressing, which S3 compatible stores such as MinIO require
func NewS3Uploader(config S3Config, logger core.Logger) (*S3Uploader, error) {
	if config.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is not configured")
	}

	awsConfig := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, ""),
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	return newS3Uploader(s3.New(sess), config.Bucket, logger), nil
}

func newS3Uploader(client objectPutter, bucket string, logger core.Logger) *S3Uploader {
	if logger == nil {
		logger = renderer.NopLogger{}
	}
	return &S3Uploader{client: client, bucket: bucket, logger: logger}
}

// Upload puts data under key in the configured bucket
func (u *S3Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	u.logger.Printf("Uploaded %s to S3 (%d bytes)\n", key, size)
	return nil
}
