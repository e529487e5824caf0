package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var ErrObjectNotFound = errors.New("object not found")

type S3Client interface {
	DownloadFile(ctx context.Context, key string) ([]byte, error)
}

// ObjectGetter is the part of the S3 API the storage client relies on.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type storageClient struct {
	bucket string
	client ObjectGetter
}

func NewStorageClient(ctx context.Context, region, bucket string) (S3Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg)
	return NewStorageClientWith(client, bucket), nil
}

func NewStorageClientWith(client ObjectGetter, bucket string) S3Client {
	return &storageClient{
		bucket: bucket,
		client: client,
	}
}

func (s *storageClient) DownloadFile(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key is empty")
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	var noKey *types.NoSuchKey
	if errors.As(err, &noKey) {
		return nil, fmt.Errorf("s3://%s/%s: %w", s.bucket, key, ErrObjectNotFound)
	}

	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}
