package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// AvatarFieldName is the only multipart field name accepted for avatar uploads.
const AvatarFieldName = "profile-pic"

// S3API is the subset of the S3 client used by StorageService.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// StorageConfig holds object storage settings.
type StorageConfig struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // optional, for S3-compatible backends such as MinIO
}

// StorageService uploads avatar images to an S3 bucket.
type StorageService struct {
	client   S3API
	bucket   string
	region   string
	endpoint string
}

// NewStorageService creates a StorageService backed by a real S3 client
// using static credentials and, when configured, a custom endpoint.
func NewStorageService(cfg StorageConfig) (*StorageService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load object storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewStorageServiceWithClient(client, cfg), nil
}

// NewStorageServiceWithClient creates a StorageService with an injected client.
func NewStorageServiceWithClient(client S3API, cfg StorageConfig) *StorageService {
	return &StorageService{
		client:   client,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: cfg.Endpoint,
	}
}

// UploadAvatar streams one uploaded file into the bucket under a freshly
// generated key, keeping the original file extension, and returns the public
// URL of the stored object.
func (s *StorageService) UploadAvatar(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	key := uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   file,
	}
	if contentType := fileHeader.Header.Get("Content-Type"); contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return s.objectURL(key), nil
}

// objectURL builds the publicly resolvable URL for a stored object.
func (s *StorageService) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
