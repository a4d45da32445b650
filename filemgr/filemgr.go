package filemgr

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const bannerDir = "static/venuepic"

var supportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// SaveVenueBanner stores the uploaded banner under static/venuepic and writes
// a 300px-wide thumbnail next to it. Returns the banner and thumbnail paths.
func SaveVenueBanner(file multipart.File, header *multipart.FileHeader) (string, string, error) {
	mimeType := header.Header.Get("Content-Type")
	if !supportedImageTypes[mimeType] {
		return "", "", fmt.Errorf("unsupported image type %q", mimeType)
	}

	img, err := imaging.Decode(file)
	if err != nil {
		return "", "", fmt.Errorf("decode image: %w", err)
	}

	if err := os.MkdirAll(bannerDir, 0755); err != nil {
		return "", "", err
	}

	name := uuid.New().String()
	bannerPath := filepath.Join(bannerDir, name+".jpg")
	thumbPath := filepath.Join(bannerDir, name+"_thumb.jpg")

	if err := imaging.Save(img, bannerPath); err != nil {
		return "", "", fmt.Errorf("save banner: %w", err)
	}

	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		return "", "", fmt.Errorf("save thumbnail: %w", err)
	}

	return "/" + bannerPath, "/" + thumbPath, nil
}
