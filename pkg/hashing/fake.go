package hashing

import (
	"context"

	"github.com/sdejongh/uniqnorris/pkg/models"
)

// FakeHasher implements Hasher with predetermined results for testing
type FakeHasher struct {
	hashes map[string]string
	fails  map[string]error
}

// NewFakeHasher creates a new FakeHasher
func NewFakeHasher() *FakeHasher {
	return &FakeHasher{
		hashes: make(map[string]string),
		fails:  make(map[string]error),
	}
}

// SetHash sets the digest returned for a path
func (h *FakeHasher) SetHash(path, digest string) {
	h.hashes[path] = digest
}

// SetError makes HashFile fail for a path with a ReadError
func (h *FakeHasher) SetError(path string, err error) {
	h.fails[path] = err
}

// HashFile returns the predetermined digest for path
func (h *FakeHasher) HashFile(ctx context.Context, path string) (string, error) {
	if err, ok := h.fails[path]; ok {
		return "", &models.ReadError{Path: path, Err: err}
	}
	if digest, ok := h.hashes[path]; ok {
		return digest, nil
	}
	// Unknown paths hash to themselves, which keeps distinct files distinct
	return "fake-" + path, nil
}

// Algorithm returns a placeholder identifier
func (h *FakeHasher) Algorithm() Algorithm {
	return Algorithm("fake")
}
