package s3

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// ItfS3 stores uploaded guideline documents and generated speech audio.
type ItfS3 interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	PresignUrl(location string) (string, error)
	DeleteFile(key string) error
}

type s3Client struct {
	client     *s3.S3
	uploader   *s3manager.Uploader
	bucketName string
}

func New() (ItfS3, error) {
	sess, err := newSession()
	if err != nil {
		return nil, err
	}

	return &s3Client{
		client:     s3.New(sess),
		uploader:   s3manager.NewUploader(sess),
		bucketName: os.Getenv("AWS_BUCKET_NAME"),
	}, nil
}

func (s *s3Client) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	input := &s3manager.UploadInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	out, err := s.uploader.UploadWithContext(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return out.Location, nil
}

// PresignUrl returns a 15 minute GET link for an object given its location.
func (s *s3Client) PresignUrl(location string) (string, error) {
	key, err := url.QueryUnescape(KeyFromLocation(location))
	if err != nil {
		return "", fmt.Errorf("failed to decode S3 key: %w", err)
	}

	req, _ := s.client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})

	return req.Presign(15 * time.Minute)
}

func (s *s3Client) DeleteFile(key string) error {
	_, err := s.client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	return err
}

// KeyFromLocation strips the bucket host from an upload location.
func KeyFromLocation(location string) string {
	parts := strings.SplitN(location, ".com/", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return location
}

// ObjectKey builds a unique key under prefix that keeps the original file
// name readable.
func ObjectKey(prefix, id, fileName string) string {
	return path.Join(prefix, fmt.Sprintf("%s-%s", id, path.Base(fileName)))
}

func newSession() (*session.Session, error) {
	return session.NewSession(&aws.Config{
		Region: aws.String(os.Getenv("AWS_REGION")),
		Credentials: credentials.NewStaticCredentials(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		),
	})
}
