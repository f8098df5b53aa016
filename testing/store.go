// Package testing provides an in-memory host harness -- a provable store, a
// deterministic fake light client, and a mock host context -- so the
// handshake and packet pipeline can be exercised end to end without a real
// chain or a real light client (spec §1 scopes both out of this engine).
package testing

import (
	"strings"

	"github.com/tokenize-x/ibc-core/internal/deterministicmap"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// Store is an in-memory types.KVStore backed by a deterministicmap.Map, so
// Iterate visits keys in the lexicographic order every commitment-affecting
// caller requires (spec §5).
type Store struct {
	m *deterministicmap.Map[string, []byte]
}

var _ ibctypes.KVStore = (*Store)(nil)

// NewStore builds an empty Store.
func NewStore() *Store {
	return &Store{m: deterministicmap.New[string, []byte]()}
}

func (s *Store) Get(key string) ([]byte, bool) { return s.m.Get(key) }

func (s *Store) Set(key string, value []byte) { s.m.Set(key, value) }

func (s *Store) Delete(key string) { s.m.Delete(key) }

func (s *Store) Has(key string) bool {
	_, ok := s.m.Get(key)
	return ok
}

// Iterate visits every key with the given prefix in lexicographic order.
func (s *Store) Iterate(prefix string, fn func(key string, value []byte) bool) {
	s.m.Range(func(key string, value []byte) bool {
		if !strings.HasPrefix(key, prefix) {
			return true
		}
		return fn(key, value)
	})
}
