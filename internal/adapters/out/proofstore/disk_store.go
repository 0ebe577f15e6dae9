// Package proofstore stores proof-of-delivery images on the local filesystem
// and serves them back by URL. A cloud blob store can replace it behind the
// same port without touching the core.
package proofstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"deliverytrack/internal/pkg/errs"

	"github.com/google/uuid"
)

// DiskProofStore writes each image as a uniquely named file under dir and
// returns baseURL-relative links to it.
type DiskProofStore struct {
	dir     string
	baseURL string
}

// NewDiskProofStore creates a store rooted at dir. The directory is created
// if missing. baseURL is the public prefix under which dir is served.
func NewDiskProofStore(dir string, baseURL string) (*DiskProofStore, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create proof directory: %w", err)
	}

	return &DiskProofStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Store persists the image and returns its public URL. The file name is a
// fresh UUID so concurrent submissions never collide.
func (s *DiskProofStore) Store(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", errs.NewValueIsRequiredError("image")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.New().String() + ".jpg"
	if err := os.WriteFile(filepath.Join(s.dir, name), image, 0o644); err != nil {
		return "", fmt.Errorf("write proof image: %w", err)
	}

	return s.baseURL + "/" + name, nil
}
