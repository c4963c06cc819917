package contracts

import "context"

type StorageService interface {
	PutObject(ctx context.Context, bucketName, objectName string, content []byte, contentType string) error
}
