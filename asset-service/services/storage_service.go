package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"

	"assetdesk-backend/shared/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type StorageService struct {
	client     *minio.Client
	bucketName string
	serverURL  string
}

func NewStorageService() (*StorageService, error) {
	cfg := config.GetConfig()

	// Parse endpoint URL to get host
	parsedURL, err := url.Parse(cfg.MinIOServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid MinIO endpoint: %v", err)
	}

	endpoint := parsedURL.Host
	useSSL := cfg.MinIOUseSSL

	log.Printf("🔗 Connecting to MinIO: %s (SSL: %v)", endpoint, useSSL)

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIORootUser, cfg.MinIORootPassword, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %v", err)
	}

	service := &StorageService{
		client:     minioClient,
		bucketName: cfg.MinIOBucketName,
		serverURL:  strings.TrimRight(cfg.MinIOServerURL, "/"),
	}

	if err := service.initializeBucket(); err != nil {
		return nil, err
	}

	return service, nil
}

func (s *StorageService) initializeBucket() error {
	ctx := context.Background()

	log.Printf("🪣 Checking bucket: %s", s.bucketName)

	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %v", err)
	}

	if !exists {
		err = s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %v", err)
		}
		log.Printf("✅ MinIO bucket '%s' created successfully", s.bucketName)

		// Uploaded assets are served directly from the bucket
		if err := s.setPublicReadPolicy(ctx); err != nil {
			return err
		}
	} else {
		log.Printf("✅ MinIO bucket '%s' already exists", s.bucketName)
	}

	return nil
}

func (s *StorageService) setPublicReadPolicy(ctx context.Context) error {
	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucketName)

	if err := s.client.SetBucketPolicy(ctx, s.bucketName, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %v", err)
	}

	log.Printf("✅ Public read policy set for bucket '%s'", s.bucketName)
	return nil
}

// TestConnection verifies the MinIO connection by listing buckets
func (s *StorageService) TestConnection() error {
	ctx := context.Background()

	buckets, err := s.client.ListBuckets(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to MinIO: %v", err)
	}

	log.Printf("✅ MinIO connection successful. Found %d buckets", len(buckets))
	return nil
}

// UploadObject streams an object into the bucket
func (s *StorageService) UploadObject(ctx context.Context, reader io.Reader, objectKey string, size int64, contentType string) error {
	opts := minio.PutObjectOptions{
		ContentType: contentType,
	}

	_, err := s.client.PutObject(ctx, s.bucketName, objectKey, reader, size, opts)
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %v", objectKey, err)
	}

	log.Printf("⬆️ Object uploaded: %s (%d bytes)", objectKey, size)
	return nil
}

// GetObject opens an object for reading. Caller must close the returned
// reader.
func (s *StorageService) GetObject(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	object, err := s.client.GetObject(ctx, s.bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %v", objectKey, err)
	}
	return object, nil
}

// StatObject returns object metadata, used to verify existence before
// streaming downloads
func (s *StorageService) StatObject(ctx context.Context, objectKey string) (minio.ObjectInfo, error) {
	return s.client.StatObject(ctx, s.bucketName, objectKey, minio.StatObjectOptions{})
}

// RemoveObject deletes an object from the bucket
func (s *StorageService) RemoveObject(ctx context.Context, objectKey string) error {
	err := s.client.RemoveObject(ctx, s.bucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove object %s: %v", objectKey, err)
	}

	log.Printf("🗑️ Object removed: %s", objectKey)
	return nil
}

// FileURL builds the public URL for an object
func (s *StorageService) FileURL(objectKey string) string {
	return fmt.Sprintf("%s/%s/%s", s.serverURL, s.bucketName, objectKey)
}
