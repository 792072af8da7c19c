package storage

import (
	"context"
	"mime/multipart"
)

// StorageService uploads user-submitted media and returns a public URL.
type StorageService interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
}
