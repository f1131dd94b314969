package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	appconfig "internhub/core/config"
	"internhub/core/logger"
	"internhub/core/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Storage uploads user files (resumes, CVs, company logos) to S3-compatible storage.
type Storage interface {
	Upload(ctx context.Context, folder, filename, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

type s3Storage struct {
	client *s3.Client
	bucket string
}

func NewS3Storage(cfg appconfig.S3Config) Storage {
	client := s3.New(s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: cfg.Endpoint != "",
		BaseEndpoint: endpointOrNil(cfg.Endpoint),
	})
	return &s3Storage{client: client, bucket: cfg.Bucket}
}

func endpointOrNil(endpoint string) *string {
	if endpoint == "" {
		return nil
	}
	return aws.String(endpoint)
}

// Upload stores data under <folder>/<nanoid>_<filename> and returns the object key.
func (s *s3Storage) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (string, error) {
	key := path.Join(folder, fmt.Sprintf("%s_%s", utils.GenerateID(), filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Error("Storage:Upload:PutObject:Error:", err)
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	logger.Info("Storage:Upload:Success", "key", key, "size", len(data))
	return key, nil
}

func (s *s3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Error("Storage:Delete:DeleteObject:Error:", err)
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
