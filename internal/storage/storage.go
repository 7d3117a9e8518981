// Package storage keeps gallery images on local disk or in S3.
package storage

import (
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/config"
)

type Storage interface {
	// Put stores data under key and returns the public URL of the object.
	Put(ctx context.Context, key string, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

// NewKey builds a unique object key such as "gallery/3f/3f2a...c1.webp".
func NewKey(prefix, ext string) string {
	id := uuid.NewString()
	return path.Join(prefix, id[:2], id+ext)
}

func New(cfg *config.Config) (Storage, error) {
	switch cfg.StorageType {
	case "s3":
		return NewS3Storage(S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PublicURL: cfg.S3PublicURL,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
		})
	case "local", "":
		return NewLocalStorage(cfg.StorageLocalPath, "/media")
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
	}
}
