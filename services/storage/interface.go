package storage

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService abstracts the photo storage backend used by the admin panel.
type StorageService interface {
	// UploadFile uploads a local file into the destination folder and returns
	// its permanent public identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a file given its public identifier.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL constructs a public URL for a stored file.
	GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error)
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
