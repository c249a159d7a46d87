package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/MrJamesThe3rd/bistro/internal/storage"
)

type txKey struct{}

// Store keeps collections in process memory. Transactions snapshot every
// collection on entry and restore the snapshot if fn fails or panics.
type Store struct {
	mu   sync.Mutex
	data map[storage.Collection][]byte
}

func New() *Store {
	return &Store{data: make(map[storage.Collection][]byte)}
}

func (s *Store) Get(_ context.Context, key storage.Collection) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, ok := s.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return slices.Clone(payload), nil
}

func (s *Store) Put(_ context.Context, key storage.Collection, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = slices.Clone(payload)

	return nil
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.mu.Lock()
	snapshot := maps.Clone(s.data)
	s.mu.Unlock()

	committed := false

	defer func() {
		if committed {
			return
		}

		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
	}()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		return err
	}

	committed = true

	return nil
}
