package hashing

import (
	"context"
	"crypto/md5"
	"crypto/sha256"
	"fmt"
	"hash"
	"io"
	"os"
	"sync"

	"github.com/sdejongh/uniqnorris/pkg/models"
)

// DefaultChunkSize is the read size used when none is configured
const DefaultChunkSize = 8192

// Algorithm identifies a supported hash algorithm
type Algorithm string

const (
	// MD5 is the default algorithm; content equality needs no
	// cryptographic strength and MD5 is the fastest option
	MD5 Algorithm = "md5"
	// SHA256 is available for callers that want a stronger digest
	SHA256 Algorithm = "sha256"
)

// Hasher computes a content fingerprint for a single file
type Hasher interface {
	// HashFile returns the digest of the file as a lowercase hex string.
	// Failures are reported as *models.ReadError; the caller must treat
	// them as "hash unavailable" rather than aborting the run.
	HashFile(ctx context.Context, path string) (string, error)

	// Algorithm returns the algorithm identifier
	Algorithm() Algorithm
}

// FileHasher streams files through an incremental digest in fixed-size
// chunks. Safe for concurrent use.
type FileHasher struct {
	algorithm Algorithm
	chunkSize int
	pool      *sync.Pool
}

// NewFileHasher creates a hasher for the given algorithm and chunk size
func NewFileHasher(algorithm Algorithm, chunkSize int) (*FileHasher, error) {
	switch algorithm {
	case MD5, SHA256:
	default:
		return nil, fmt.Errorf("unsupported hash algorithm: %s (use: md5, sha256)", algorithm)
	}

	if chunkSize < 512 {
		chunkSize = DefaultChunkSize
	}

	return &FileHasher{
		algorithm: algorithm,
		chunkSize: chunkSize,
		pool: &sync.Pool{
			New: func() interface{} {
				buf := make([]byte, chunkSize)
				return &buf
			},
		},
	}, nil
}

// Algorithm returns the algorithm identifier
func (h *FileHasher) Algorithm() Algorithm {
	return h.algorithm
}

// HashFile computes the digest of the file at path.
// A file that cannot be opened or read yields a *models.ReadError; there
// are no retries, a single failure excludes the file for the whole run.
func (h *FileHasher) HashFile(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", &models.ReadError{Path: path, Err: err}
	}
	defer file.Close()

	digest := h.newDigest()

	bufPtr := h.pool.Get().(*[]byte)
	buf := *bufPtr
	defer h.pool.Put(bufPtr)

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		n, err := file.Read(buf)
		if n > 0 {
			digest.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", &models.ReadError{Path: path, Err: err}
		}
	}

	return fmt.Sprintf("%x", digest.Sum(nil)), nil
}

func (h *FileHasher) newDigest() hash.Hash {
	if h.algorithm == SHA256 {
		return sha256.New()
	}
	return md5.New()
}
