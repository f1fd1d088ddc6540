// Package memlock is the in-process fallback for LockPort when Redis is not
// configured. It serializes file mutations within a single API instance only.
package memlock

import (
	"context"
	"sync"

	"companydocs/domain/ports"
)

type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	ch   chan struct{} // buffered size 1, token present when free
	refs int
}

func New() ports.LockPort {
	return &KeyedMutex{locks: make(map[string]*entry)}
}

func (m *KeyedMutex) Lock(ctx context.Context, key string) (func(), error) {
	m.mu.Lock()
	e, ok := m.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		e.ch <- struct{}{}
		m.locks[key] = e
	}
	e.refs++
	m.mu.Unlock()

	select {
	case <-e.ch:
	case <-ctx.Done():
		m.release(key, e, false)
		return nil, ctx.Err()
	}

	return func() { m.release(key, e, true) }, nil
}

func (m *KeyedMutex) release(key string, e *entry, held bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if held {
		e.ch <- struct{}{}
	}
	e.refs--
	if e.refs == 0 {
		delete(m.locks, key)
	}
}
