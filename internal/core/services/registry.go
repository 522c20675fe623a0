package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"price-prediction-service/internal/core/domain"
	ports "price-prediction-service/internal/core/ports/output"
)

// Registry names of the pipelines built into the service.
const (
	ModelDummy      = "dummy"
	ModelRealEstate = "real_estate"
)

// Registry maps model names to pipelines. It is filled at startup and read
// by every request afterwards.
type Registry struct {
	mu        sync.RWMutex
	pipelines map[string]ports.Pipeline
}

func NewRegistry() *Registry {
	return &Registry{pipelines: make(map[string]ports.Pipeline)}
}

// NewDefaultRegistry registers the dummy and real-estate pipelines. It panics
// if a built-in registration fails.
func NewDefaultRegistry(realEstate *RealEstatePipeline) *Registry {
	r := NewRegistry()
	builtins := []struct {
		name     string
		pipeline ports.Pipeline
	}{
		{ModelDummy, DummyPipeline{}},
		{ModelRealEstate, realEstate},
	}
	for _, b := range builtins {
		if err := r.Register(b.name, b.pipeline); err != nil {
			panic(fmt.Sprintf("register built-in model %q: %v", b.name, err))
		}
	}
	return r
}

// Register adds a pipeline under name. A later registration with the same name
// replaces the earlier one.
func (r *Registry) Register(name string, pipeline ports.Pipeline) error {
	if name == "" {
		return domain.ErrInvalidModelName
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.pipelines[name] = pipeline
	return nil
}

func (r *Registry) Predict(ctx context.Context, name string, features map[string]any) (any, error) {
	r.mu.RLock()
	pipeline, ok := r.pipelines[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w '%s'", domain.ErrUnknownModel, name)
	}
	return pipeline.Predict(ctx, features)
}

// Names returns the registered model names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.pipelines))
	for name := range r.pipelines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
