// Package media relays listing images to the external image host.
package media

import (
	"context"
	"fmt"
	"io"

	"pg-booking/pkg/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// File is one image submitted with a listing form.
type File struct {
	Name   string
	Reader io.Reader
}

// Uploader pushes an image to the external host and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file File) (string, error)
}

type cloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(config utils.CloudinaryConfig) (Uploader, error) {
	cld, err := cloudinary.NewFromParams(config.CloudName, config.APIKey, config.APISecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}

	return &cloudinaryUploader{
		cld:    cld,
		folder: config.Folder,
	}, nil
}

func (u *cloudinaryUploader) Upload(ctx context.Context, file File) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file.Reader, uploader.UploadParams{
		Folder: u.folder,
	})
	if err != nil {
		return "", fmt.Errorf("upload image %s: %w", file.Name, err)
	}

	// The SDK can report upload errors in the response body with a nil error
	if resp.SecureURL == "" {
		return "", fmt.Errorf("upload image %s: %s", file.Name, resp.Error.Message)
	}

	return resp.SecureURL, nil
}
