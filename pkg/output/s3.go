package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// ErrUploadDisabled is returned when no bucket is configured
var ErrUploadDisabled = errors.New("upload disabled: no S3 bucket configured")

// DefaultUploadTimeout bounds a single upload
const DefaultUploadTimeout = 10 * time.Second

// S3Config describes an S3-compatible bucket for publishing renders
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string // Empty for AWS; set for MinIO, Spaces, R2...
	Region    string
	Bucket    string
	PublicURL string // Optional base URL objects are served from
	ACL       string // e.g. "public-read"; empty leaves the bucket default
}

// S3ConfigFromEnv reads the bucket settings from S3_* environment variables.
// CDN_URL sets the public base URL.
func S3ConfigFromEnv() S3Config {
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = "us-east-1"
	}
	return S3Config{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    region,
		Bucket:    os.Getenv("S3_BUCKET"),
		PublicURL: os.Getenv("CDN_URL"),
		ACL:       os.Getenv("S3_ACL"),
	}
}

// Enabled reports whether a bucket has been configured
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// S3Uploader publishes encoded images to a bucket
type S3Uploader struct {
	client  s3iface.S3API
	config  S3Config
	Timeout time.Duration
}

// NewS3Uploader creates an uploader with static credentials and path-style
// addressing, which S3-compatible stores expect
func NewS3Uploader(config S3Config) (*S3Uploader, error) {
	if !config.Enabled() {
		return nil, ErrUploadDisabled
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
	return newS3Uploader(s3.New(sess), config), nil
}

func newS3Uploader(client s3iface.S3API, config S3Config) *S3Uploader {
	return &S3Uploader{client: client, config: config, Timeout: DefaultUploadTimeout}
}

// Upload stores data under key and returns the object's URL
func (u *S3Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if u.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.Timeout)
		defer cancel()
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(u.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	}
	if u.config.ACL != "" {
		input.ACL = aws.String(u.config.ACL)
	}

	if _, err := u.client.PutObjectWithContext(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return u.URL(key), nil
}

// URL returns where key is served from
func (u *S3Uploader) URL(key string) string {
	if u.config.PublicURL != "" {
		return strings.TrimSuffix(u.config.PublicURL, "/") + "/" + key
	}
	return fmt.Sprintf("s3://%s/%s", u.config.Bucket, key)
}

// RenderKey builds an object key for a render of sceneID taken at t
func RenderKey(sceneID string, t time.Time, format Format) string {
	return fmt.Sprintf("renders/%s/render_%s%s", sceneID, t.UTC().Format("20060102_150405"), format.Extension())
}
