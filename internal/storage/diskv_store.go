package storage

import (
	"fmt"
	"sort"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvStore is the default Gateway backend: one file per key under a
// base directory.
type DiskvStore struct {
	d *diskv.Diskv
}

func NewDiskvStore(basePath string) *DiskvStore {
	return &DiskvStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

func (s *DiskvStore) Get(key string) ([]byte, error) {
	if !s.d.Has(key) {
		return nil, ErrNotFound
	}
	val, err := s.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return val, nil
}

func (s *DiskvStore) Set(key string, value []byte) error {
	if err := s.d.Write(key, value); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *DiskvStore) Delete(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil {
		return fmt.Errorf("failed to erase key %q: %w", key, err)
	}
	return nil
}

func (s *DiskvStore) Keys() ([]string, error) {
	keys := make([]string, 0)
	for key := range s.d.Keys(nil) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *DiskvStore) Close() error {
	return nil
}
