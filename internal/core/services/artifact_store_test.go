package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"price-prediction-service/internal/core/domain"
	"price-prediction-service/internal/testutil"
)

// gatedSource serves the golden bundle on the first fetch and blocks every
// later fetch until release is closed.
type gatedSource struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	next    []byte
}

func (g *gatedSource) Fetch(ctx context.Context) ([]byte, error) {
	if g.calls.Add(1) == 1 {
		return testutil.BundleJSON(nil), nil
	}
	close(g.started)
	select {
	case <-g.release:
		return g.next, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (g *gatedSource) Describe() string {
	return "gated"
}

func TestArtifactStore_Load_CachesBundle(t *testing.T) {
	source := new(testutil.MockArtifactSource)
	source.On("Fetch", mock.Anything).Return(testutil.BundleJSON(nil), nil).Once()
	store := NewArtifactStore(source, nil)

	assert.False(t, store.Loaded())

	first, err := store.Load(context.Background())
	require.NoError(t, err)
	second, err := store.Load(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.True(t, store.Loaded())
	source.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestArtifactStore_Load_ConcurrentFirstAccess(t *testing.T) {
	source := new(testutil.MockArtifactSource)
	source.On("Fetch", mock.Anything).
		After(20*time.Millisecond).
		Return(testutil.BundleJSON(nil), nil)
	store := NewArtifactStore(source, nil)

	const callers = 32
	bundles := make([]*domain.ArtifactBundle, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b, err := store.Load(context.Background())
			assert.NoError(t, err)
			bundles[i] = b
		}(i)
	}
	wg.Wait()

	source.AssertNumberOfCalls(t, "Fetch", 1)
	for _, b := range bundles {
		assert.Same(t, bundles[0], b)
	}
}

func TestArtifactStore_Load_NotFoundIsNotCached(t *testing.T) {
	source := new(testutil.MockArtifactSource)
	source.On("Fetch", mock.Anything).Return(nil, fmt.Errorf("%w: model.json", domain.ErrArtifactNotFound))
	recorder := new(testutil.MockRecorder)
	recorder.On("ObserveArtifactLoad", "mock", mock.Anything).Return()
	store := NewArtifactStore(source, recorder)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)

	assert.False(t, store.Loaded())
	source.AssertNumberOfCalls(t, "Fetch", 2)
	recorder.AssertNumberOfCalls(t, "ObserveArtifactLoad", 2)
}

func TestArtifactStore_Load_Corrupt(t *testing.T) {
	m := testutil.BundleMap()
	m["weights"] = []float64{1}

	source := new(testutil.MockArtifactSource)
	source.On("Fetch", mock.Anything).Return(testutil.BundleJSON(m), nil)
	store := NewArtifactStore(source, nil)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCorruptArtifact)
}

func TestArtifactStore_Reload(t *testing.T) {
	updated := testutil.BundleMap()
	updated["bias"] = 1.0

	source := new(testutil.MockArtifactSource)
	source.On("Fetch", mock.Anything).Return(testutil.BundleJSON(nil), nil).Once()
	source.On("Fetch", mock.Anything).Return(testutil.BundleJSON(updated), nil).Once()
	source.On("Fetch", mock.Anything).Return(nil, domain.ErrArtifactNotFound).Once()
	store := NewArtifactStore(source, nil)

	b, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10000000.0, b.Bias)

	require.NoError(t, store.Reload(context.Background()))
	b, err = store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.0, b.Bias)

	err = store.Reload(context.Background())
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	b, err = store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.0, b.Bias)
}

func TestArtifactStore_Load_NotBlockedByReload(t *testing.T) {
	updated := testutil.BundleMap()
	updated["bias"] = 1.0
	source := &gatedSource{
		started: make(chan struct{}),
		release: make(chan struct{}),
		next:    testutil.BundleJSON(updated),
	}
	store := NewArtifactStore(source, nil)

	cached, err := store.Load(context.Background())
	require.NoError(t, err)

	reloaded := make(chan error, 1)
	go func() { reloaded <- store.Reload(context.Background()) }()
	<-source.started

	loaded := make(chan *domain.ArtifactBundle, 1)
	go func() {
		b, _ := store.Load(context.Background())
		loaded <- b
	}()

	select {
	case b := <-loaded:
		assert.Same(t, cached, b)
	case <-time.After(time.Second):
		t.Fatal("Load blocked while Reload was fetching")
	}
	assert.True(t, store.Loaded())

	close(source.release)
	require.NoError(t, <-reloaded)

	b, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.0, b.Bias)
}
