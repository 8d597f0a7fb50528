package output

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// mockS3 records PutObject calls; other S3API methods are not used
type mockS3 struct {
	s3iface.S3API
	bodies [][]byte
	calls  []*s3.PutObjectInput
	err    error
}

func (m *mockS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	m.bodies = append(m.bodies, body)
	m.calls = append(m.calls, input)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Uploader_Upload(t *testing.T) {
	tests := []struct {
		name        string
		config      S3Config
		expectedURL string
		expectedACL string
	}{
		{
			name:        "public url",
			config:      S3Config{Bucket: "renders", PublicURL: "https://cdn.example.com/", ACL: "public-read"},
			expectedURL: "https://cdn.example.com/renders/spheres/a.png",
			expectedACL: "public-read",
		},
		{
			name:        "bucket url",
			config:      S3Config{Bucket: "renders"},
			expectedURL: "s3://renders/renders/spheres/a.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockS3{}
			uploader := newS3Uploader(mock, tt.config)

			url, err := uploader.Upload(context.Background(), "renders/spheres/a.png", []byte("png-bytes"), FormatPNG.ContentType())
			if err != nil {
				t.Fatalf("Upload failed: %v", err)
			}
			if url != tt.expectedURL {
				t.Errorf("Expected URL %q, got %q", tt.expectedURL, url)
			}

			if len(mock.calls) != 1 {
				t.Fatalf("Expected one PutObject call, got %d", len(mock.calls))
			}
			input := mock.calls[0]
			if aws.StringValue(input.Bucket) != "renders" || aws.StringValue(input.Key) != "renders/spheres/a.png" {
				t.Errorf("Unexpected bucket/key %s/%s", aws.StringValue(input.Bucket), aws.StringValue(input.Key))
			}
			if aws.StringValue(input.ContentType) != "image/png" {
				t.Errorf("Expected image/png, got %s", aws.StringValue(input.ContentType))
			}
			if aws.Int64Value(input.ContentLength) != int64(len("png-bytes")) || string(mock.bodies[0]) != "png-bytes" {
				t.Errorf("Unexpected body %q", mock.bodies[0])
			}
			if aws.StringValue(input.ACL) != tt.expectedACL {
				t.Errorf("Expected ACL %q, got %q", tt.expectedACL, aws.StringValue(input.ACL))
			}
		})
	}
}

func TestS3Uploader_Errors(t *testing.T) {
	failure := errors.New("connection refused")
	uploader := newS3Uploader(&mockS3{err: failure}, S3Config{Bucket: "renders"})

	if _, err := uploader.Upload(context.Background(), "k", nil, "image/png"); !errors.Is(err, failure) {
		t.Errorf("Expected wrapped client error, got %v", err)
	}

	if _, err := NewS3Uploader(S3Config{}); !errors.Is(err, ErrUploadDisabled) {
		t.Errorf("Expected ErrUploadDisabled without a bucket, got %v", err)
	}
}

func TestS3ConfigFromEnv(t *testing.T) {
	t.Setenv("S3_BUCKET", "renders")
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("S3_REGION", "")
	t.Setenv("CDN_URL", "https://cdn.example.com")

	config := S3ConfigFromEnv()
	if !config.Enabled() || config.Bucket != "renders" || config.Endpoint != "http://localhost:9000" {
		t.Errorf("Unexpected config %+v", config)
	}
	if config.Region != "us-east-1" {
		t.Errorf("Expected default region us-east-1, got %q", config.Region)
	}
	if config.PublicURL != "https://cdn.example.com" {
		t.Errorf("Expected CDN_URL as public URL, got %q", config.PublicURL)
	}
}
