package storage

import (
	"appointment-skill/internal/app/config"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// NewMinio builds the client and makes sure bucketName exists.
func NewMinio(ctx context.Context, driverConfig *config.DriverConfig, bucketName string, log *zap.Logger) (*minio.Client, error) {
	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize minio client: %w", err)
	}

	if bucketName != "" {
		exists, err := minioClient.BucketExists(ctx, bucketName)
		if err != nil {
			return nil, fmt.Errorf("check minio bucket %s: %w", bucketName, err)
		}
		if !exists {
			err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
			if err != nil {
				return nil, fmt.Errorf("create minio bucket %s: %w", bucketName, err)
			}
			log.Info("Created minio bucket", zap.String("bucket_name", bucketName))
		}
	}

	log.Info("Successfully connected to minio", zap.String("endpoint", endPoint))
	return minioClient, nil
}
