// internal/storage/s3.go
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader stores poster bytes and returns a public URL for them.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, contents []byte) (string, error)
}

// PutObjectAPI is the slice of the S3 client this package uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader writes objects to a bucket under a fixed key prefix. The public
// URL is derived from the bucket and key, never fetched back.
type S3Uploader struct {
	Client PutObjectAPI
	Bucket string
	Prefix string
}

func (u *S3Uploader) Upload(ctx context.Context, filename, contentType string, contents []byte) (string, error) {
	key := u.Prefix + filename

	_, err := u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(contents),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return PublicURL(u.Bucket, key), nil
}

// PublicURL derives the https URL of an object from its bucket and key.
func PublicURL(bucket, key string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, strings.TrimPrefix(key, "/"))
}
