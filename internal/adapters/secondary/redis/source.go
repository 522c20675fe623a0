package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"price-prediction-service/internal/config"
	"price-prediction-service/internal/core/domain"
	ports "price-prediction-service/internal/core/ports/output"
)

// Getter is the part of *redis.Client the source needs.
type Getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

type redisSource struct {
	client Getter
	key    string
}

// NewClient builds a go-redis client from config.
func NewClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewArtifactSource reads the bundle stored under model:<name>:bundle.
func NewArtifactSource(client Getter, name string) ports.ArtifactSource {
	return &redisSource{client: client, key: BundleKey(name)}
}

func BundleKey(name string) string {
	return fmt.Sprintf("model:%s:bundle", name)
}

func (s *redisSource) Fetch(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: redis key %s", domain.ErrArtifactNotFound, s.key)
		}
		return nil, fmt.Errorf("get model artifact from redis: %w", err)
	}
	return data, nil
}

func (s *redisSource) Describe() string {
	return "redis:" + s.key
}
