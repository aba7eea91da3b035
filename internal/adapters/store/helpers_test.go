package store

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

// memRepo is an in-memory ports.SnapshotRepository.
type memRepo[T any] struct {
	mu      sync.Mutex
	snap    T
	saved   bool
	saves   int
	loadErr error
	saveErr error
}

func (r *memRepo[T]) Load(_ context.Context) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loadErr != nil {
		var zero T
		return zero, r.loadErr
	}

	if !r.saved {
		var zero T
		return zero, domain.NewNotFoundError("snapshot", "mem")
	}

	return r.snap, nil
}

func (r *memRepo[T]) Save(_ context.Context, snap T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.saves++

	if r.saveErr != nil {
		return r.saveErr
	}

	r.snap = snap
	r.saved = true

	return nil
}

func (r *memRepo[T]) saveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.saves
}

// plainHasher keeps tests fast; bcrypt is covered in the auth package.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	if password == "explode" {
		return "", errors.New("hash failure")
	}

	return "hashed:" + password, nil
}

func (plainHasher) Verify(hash, password string) bool {
	return strings.TrimPrefix(hash, "hashed:") == password && strings.HasPrefix(hash, "hashed:")
}

func quote(content, author string, categories ...string) domain.Quote {
	return domain.Quote{Content: content, Author: author, Categories: categories}
}
