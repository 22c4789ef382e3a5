package config

import (
	"context"
	"io"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageService is the slice of Cloudinary the controllers depend on; tests
// substitute a stub.
type ImageService interface {
	Upload(ctx context.Context, file io.Reader) (url string, publicID string, err error)
	Delete(ctx context.Context, publicID string) error
}

type CloudinaryService struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryService reads CLOUDINARY_CLOUD_NAME / CLOUDINARY_API_KEY /
// CLOUDINARY_API_SECRET (and optional CLOUDINARY_FOLDER) from the
// environment.
func NewCloudinaryService() (*CloudinaryService, error) {
	client, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{client: client, folder: os.Getenv("CLOUDINARY_FOLDER")}, nil
}

func (s *CloudinaryService) Upload(ctx context.Context, file io.Reader) (string, string, error) {
	resp, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{Folder: s.folder})
	if err != nil {
		return "", "", err
	}
	return resp.SecureURL, resp.PublicID, nil
}

func (s *CloudinaryService) Delete(ctx context.Context, publicID string) error {
	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}
