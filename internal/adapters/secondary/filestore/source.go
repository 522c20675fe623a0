package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"price-prediction-service/internal/core/domain"
	ports "price-prediction-service/internal/core/ports/output"
)

type fileSource struct {
	path string
}

// NewArtifactSource reads the bundle written by the training job from disk.
func NewArtifactSource(path string) ports.ArtifactSource {
	return &fileSource{path: path}
}

func (s *fileSource) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, s.path)
		}
		return nil, fmt.Errorf("read model artifact %s: %w", s.path, err)
	}
	return data, nil
}

func (s *fileSource) Describe() string {
	return "file:" + s.path
}
