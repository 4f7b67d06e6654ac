package app

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/truthlens/truthlens/internal/common"
)

var (
	ErrNotAnImage    = errors.New("file is not an image")
	ErrImageTooLarge = errors.New("image exceeds the size limit")
)

// LoadImage reads an image file and enforces the upload boundary checks: the
// content must sniff as an image type and fit within the size limit. Workflow
// code downstream trusts these checks and does not repeat them.
func LoadImage(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error reading image: %w", err)
	}
	if info.Size() > common.MaxImageSizeBytes {
		return nil, ErrImageTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading image: %w", err)
	}

	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return nil, ErrNotAnImage
	}
	return data, nil
}
