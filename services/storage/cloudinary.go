package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage stores images in Cloudinary and serves them over its CDN.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage wraps an initialized Cloudinary client.
func NewCloudinaryStorage(cld *cloudinary.Cloudinary) *CloudinaryStorage {
	return &CloudinaryStorage{cld: cld}
}

// UploadImage streams the multipart file to Cloudinary under the given folder
// and returns the secure delivery URL.
func (s *CloudinaryStorage) UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("upload image: failed to open file: %w", err)
	}
	defer src.Close()

	resp, err := s.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("upload image: empty response from cloudinary")
	}
	return resp.SecureURL, nil
}
