package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"SpotiQ/config"
	"SpotiQ/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	minioClient *minio.Client
	minioCfg    *config.Config
)

// InitMinio initializes the MinIO client and makes sure the bucket exists.
func InitMinio(cfg *config.Config) error {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
		Region: cfg.MinioRegion,
	})
	if err != nil {
		return fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{Region: cfg.MinioRegion}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		logger.Info("Created MinIO bucket", logger.String("bucket", cfg.MinioBucket))
	}

	minioClient = client
	minioCfg = cfg
	return nil
}

// GetMinioClient returns the client, or nil when uploads are disabled.
func GetMinioClient() *minio.Client {
	return minioClient
}

// UploadImage stores an image under covers/ and returns its public URL,
// which clients then use as the image field of users and playlists.
func UploadImage(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if minioClient == nil {
		return "", fmt.Errorf("MinIO client not initialized")
	}

	key := "covers/" + objectName
	_, err := minioClient.PutObject(ctx, minioCfg.MinioBucket, key, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", minioCfg.MinioPublicURL, minioCfg.MinioBucket, key), nil
}
