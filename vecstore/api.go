package vecstore

import (
	"context"
	"time"

	pr "github.com/unkn0wn-root/lefloat/provider"
)

// Float is the element type of a stored vector.
type Float interface {
	float32 | float64
}

type SetCostFunc func(storageKey string, raw []byte, dim int) int64

// Store keeps named float vectors in a byte provider. Vectors are framed as
// packed little-endian floats (see lefloat) and validated on every read.
type Store[F Float] interface {
	Enabled() bool
	Close(context.Context) error

	Get(ctx context.Context, key string) (v []F, ok bool, err error)
	Set(ctx context.Context, key string, v []F, ttl time.Duration) error
	Del(ctx context.Context, key string) error

	// Multi-key (order-agnostic return; use your own ordering by keys slice)
	GetMany(ctx context.Context, keys []string) (values map[string][]F, missing []string, err error)
	SetMany(ctx context.Context, items map[string][]F, ttl time.Duration) error

	// Export packs the present keys into one portable batch blob.
	Export(ctx context.Context, keys []string) (blob []byte, missing []string, err error)
	// Import stores every vector in blob and returns how many were written.
	Import(ctx context.Context, blob []byte, ttl time.Duration) (int, error)
}

// Options tune the behavior of the store.
// Only Namespace and Provider are required; others have sensible defaults.
type Options struct {
	// Required
	Namespace string // logical namespace to avoid collisions. e.g. "embed", "sensor"
	Provider  pr.Provider

	Logger         Logger        // if nil, NopLogger is used
	Hooks          Hooks         // if nil, NopHooks is used
	DefaultTTL     time.Duration // 0 => 10m
	MaxDim         int           // 0 => unlimited
	ComputeSetCost SetCostFunc   // default: encoded size in bytes
	Disabled       bool          // default false (enabled)
}

func New[F Float](opts Options) (Store[F], error) {
	s, err := newStore[F](opts)
	if err != nil {
		return nil, err
	}
	return s, nil
}
