package service

import (
	"context"
	"io"
)

// UploadResult carries the public URL of a stored image and the storage
// identifier the media host needs to delete it again.
type UploadResult struct {
	URL       string
	StorageID string
}

type MediaStorage interface {
	Upload(ctx context.Context, file io.Reader, contentType, folder string) (*UploadResult, error)
	Delete(ctx context.Context, storageID string) error
	Close() error
}
