package ports

import "context"

// Pipeline is a named prediction function the registry dispatches to.
type Pipeline interface {
	Predict(ctx context.Context, features map[string]any) (any, error)
}
