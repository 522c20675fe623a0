package ports

import "context"

// ArtifactSource fetches the serialized model bundle from durable storage.
// Implementations return domain.ErrArtifactNotFound when no bundle exists.
type ArtifactSource interface {
	Fetch(ctx context.Context) ([]byte, error)
	// Describe names the source for logs, e.g. "file:artifacts/model.json".
	Describe() string
}
