package source

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the slice of the S3 client the source needs.
type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3 serves documents from an S3 bucket.
//
// Example:
//
//	client := s3.New(s3.Options{Region: "eu-central-1"})
//	src := source.NewS3(client, "my-bucket", "pages/")
type S3 struct {
	client s3API
	bucket string
	prefix string
}

// NewS3 creates an S3 source reading from the given bucket under prefix.
func NewS3(client *s3.Client, bucket, prefix string) *S3 {
	return newS3(client, bucket, prefix)
}

func newS3(client s3API, bucket, prefix string) *S3 {
	return &S3{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Open fetches the named object.
func (s *S3) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		name = "index.html"
	}
	key := path.Join(s.prefix, name)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", s.bucket, key, err)
	}
	return out.Body, nil
}
