package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"price-prediction-service/internal/core/domain"
	ports "price-prediction-service/internal/core/ports/output"
)

// Querier is the part of *pgxpool.Pool the artifact repository needs.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type artifactRepo struct {
	db   Querier
	name string
}

// NewArtifactRepository reads the newest bundle stored under name in the
// model_artifact_bundle table.
func NewArtifactRepository(db Querier, name string) ports.ArtifactSource {
	return &artifactRepo{db: db, name: name}
}

func (r *artifactRepo) Fetch(ctx context.Context) ([]byte, error) {
	query := `
		SELECT payload
		FROM model_artifact_bundle
		WHERE name = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var payload []byte
	if err := r.db.QueryRow(ctx, query, r.name).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: bundle %q", domain.ErrArtifactNotFound, r.name)
		}
		return nil, fmt.Errorf("get model artifact bundle: %w", err)
	}
	return payload, nil
}

func (r *artifactRepo) Describe() string {
	return "postgres:" + r.name
}
