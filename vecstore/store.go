package vecstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/unkn0wn-root/lefloat/codec"
	"github.com/unkn0wn-root/lefloat/internal/wire"
	pr "github.com/unkn0wn-root/lefloat/provider"
)

const defaultTTL = 10 * time.Minute

type store[F Float] struct {
	ns             string
	provider       pr.Provider
	codec          codec.Codec[[]F]
	kind           wire.Kind
	log            Logger
	hooks          Hooks
	enabled        bool
	defaultTTL     time.Duration
	maxDim         int
	computeSetCost SetCostFunc
}

func newStore[F Float](opts Options) (*store[F], error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("vecstore: provider is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("vecstore: namespace is required")
	}
	if opts.MaxDim < 0 {
		return nil, fmt.Errorf("vecstore: negative MaxDim %d", opts.MaxDim)
	}

	s := &store[F]{
		ns:       opts.Namespace,
		provider: opts.Provider,
		enabled:  !opts.Disabled,
		maxDim:   opts.MaxDim,
	}
	s.codec, s.kind = vectorCodec[F]()

	// defaults
	s.log = coalesce[Logger](opts.Logger, NopLogger{})
	s.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	s.defaultTTL = coalesce[time.Duration](opts.DefaultTTL, defaultTTL)

	if opts.ComputeSetCost != nil {
		s.computeSetCost = opts.ComputeSetCost
	} else {
		s.computeSetCost = func(_ string, raw []byte, _ int) int64 { return int64(len(raw)) }
	}
	return s, nil
}

// vectorCodec picks the packed little-endian codec for F.
func vectorCodec[F Float]() (codec.Codec[[]F], wire.Kind) {
	var zero F
	switch any(zero).(type) {
	case float32:
		return any(codec.Float32s{}).(codec.Codec[[]F]), wire.KindF32
	default:
		return any(codec.Float64s{}).(codec.Codec[[]F]), wire.KindF64
	}
}

func (s *store[F]) Enabled() bool { return s.enabled }

func (s *store[F]) Close(ctx context.Context) error {
	if s.provider != nil {
		return s.provider.Close(ctx)
	}
	return nil
}

func (s *store[F]) Get(ctx context.Context, key string) ([]F, bool, error) {
	if !s.enabled {
		return nil, false, nil
	}
	k := storageKey(s.ns, key)
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil || !ok {
		return nil, false, err
	}
	kind, payload, err := wire.DecodeVector(raw)
	if err != nil {
		s.selfHeal(ctx, k, "corrupt")
		return nil, false, nil
	}
	if kind != s.kind {
		s.selfHeal(ctx, k, "kind_mismatch")
		return nil, false, nil
	}
	if s.maxDim > 0 && len(payload)/kind.Width() > s.maxDim {
		s.selfHeal(ctx, k, "dimension")
		return nil, false, nil
	}
	v, err := s.codec.Decode(payload)
	if err != nil {
		s.selfHeal(ctx, k, "corrupt")
		return nil, false, nil
	}
	return v, true, nil
}

func (s *store[F]) Set(ctx context.Context, key string, v []F, ttl time.Duration) error {
	if !s.enabled {
		return nil
	}
	if err := s.checkWrite(key, v); err != nil {
		return err
	}
	if ttl == 0 {
		ttl = s.defaultTTL
	}
	k := storageKey(s.ns, key)
	raw, err := s.frame(v)
	if err != nil {
		return err
	}
	ok, err := s.provider.Set(ctx, k, raw, s.computeSetCost(k, raw, len(v)), ttl)
	if err != nil {
		return err
	}
	if !ok {
		s.hooks.ProviderSetRejected(k)
		s.log.Debug("Set rejected by provider (pressure)", Fields{"key": key})
	}
	return nil
}

func (s *store[F]) Del(ctx context.Context, key string) error {
	if !s.enabled {
		return nil
	}
	return s.provider.Del(ctx, storageKey(s.ns, key))
}

func (s *store[F]) GetMany(ctx context.Context, keys []string) (map[string][]F, []string, error) {
	out := make(map[string][]F, len(keys))
	if !s.enabled {
		// if disabled, everything is missing
		missing := make([]string, 0, len(keys))
		missing = append(missing, keys...)
		return out, missing, nil
	}

	var (
		missing []string
		errs    []error
	)
	for _, k := range keys {
		v, ok, err := s.Get(ctx, k)
		switch {
		case err != nil:
			errs = append(errs, &KeyError{Key: k, Err: err})
			missing = append(missing, k)
		case ok:
			out[k] = v
		default:
			missing = append(missing, k)
		}
	}
	return out, missing, errors.Join(errs...)
}

// SetMany validates every vector before writing any of them.
func (s *store[F]) SetMany(ctx context.Context, items map[string][]F, ttl time.Duration) error {
	if !s.enabled || len(items) == 0 {
		return nil
	}
	keys := sortedKeys(items)
	for _, k := range keys {
		if err := s.checkWrite(k, items[k]); err != nil {
			return &KeyError{Key: k, Err: err}
		}
	}

	var errs []error
	for _, k := range keys {
		if err := s.Set(ctx, k, items[k], ttl); err != nil {
			errs = append(errs, &KeyError{Key: k, Err: err})
		}
	}
	return errors.Join(errs...)
}

func (s *store[F]) Export(ctx context.Context, keys []string) ([]byte, []string, error) {
	values, missing, err := s.GetMany(ctx, keys)
	if err != nil {
		return nil, missing, err
	}

	items := make([]wire.BatchItem, 0, len(values))
	// stable iteration order improves determinism
	for _, k := range sortedKeys(values) {
		payload, err := s.codec.Encode(values[k])
		if err != nil {
			return nil, missing, err
		}
		items = append(items, wire.BatchItem{Key: k, Kind: s.kind, Payload: payload})
	}
	blob, err := wire.EncodeBatch(items)
	if err != nil {
		return nil, missing, err
	}
	s.log.Debug("exported vectors", Fields{"ns": s.ns, "count": len(items), "missing": len(missing)})
	return blob, missing, nil
}

func (s *store[F]) Import(ctx context.Context, blob []byte, ttl time.Duration) (int, error) {
	if !s.enabled {
		return 0, nil
	}
	items, err := wire.DecodeBatch(blob)
	if err != nil {
		return 0, err
	}

	var (
		written int
		errs    []error
	)
	for _, it := range items {
		if it.Kind != s.kind {
			errs = append(errs, &KeyError{Key: it.Key, Err: ErrKind})
			continue
		}
		v, err := s.codec.Decode(it.Payload)
		if err != nil {
			errs = append(errs, &KeyError{Key: it.Key, Err: err})
			continue
		}
		if err := s.Set(ctx, it.Key, v, ttl); err != nil {
			errs = append(errs, &KeyError{Key: it.Key, Err: err})
			continue
		}
		written++
	}
	err = errors.Join(errs...)
	if err != nil {
		s.hooks.ImportRejected(len(errs), err)
		s.log.Warn("import skipped items", Fields{"ns": s.ns, "skipped": len(errs), "written": written})
	}
	return written, err
}

func (s *store[F]) frame(v []F) ([]byte, error) {
	payload, err := s.codec.Encode(v)
	if err != nil {
		return nil, err
	}
	return wire.EncodeVector(s.kind, payload)
}

func (s *store[F]) checkWrite(key string, v []F) error {
	if key == "" {
		return ErrEmptyKey
	}
	if s.maxDim > 0 && len(v) > s.maxDim {
		return fmt.Errorf("%w: %d > %d", ErrDimension, len(v), s.maxDim)
	}
	return nil
}

func (s *store[F]) selfHeal(ctx context.Context, k, reason string) {
	_ = s.provider.Del(ctx, k)
	s.hooks.SelfHeal(k, reason)
	s.log.Debug("self-healed entry", Fields{"key": redactKey(k), "reason": reason})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
