package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/crypto/sha3"
)

// DefaultAlgorithm is used when no algorithm is configured.
const DefaultAlgorithm = "md5"

// Factory returns a fresh hash state.
type Factory func() hash.Hash

// Registry maps algorithm names to hash constructors.
// It is built once and only read afterwards.
type Registry struct {
	factories map[string]Factory
}

// Default holds every algorithm fsaudit ships with.
var Default = NewRegistry(map[string]Factory{
	"md5":      md5.New,
	"sha1":     sha1.New,
	"sha256":   sha256.New,
	"sha384":   sha512.New384,
	"sha512":   sha512.New,
	"sha3-256": func() hash.Hash { return sha3.New256() },
	"sha3-512": func() hash.Hash { return sha3.New512() },
})

// NewRegistry builds a registry from the given factories. Names are
// stored lower-cased.
func NewRegistry(factories map[string]Factory) *Registry {
	r := &Registry{factories: make(map[string]Factory, len(factories))}
	for name, f := range factories {
		r.factories[strings.ToLower(name)] = f
	}
	return r
}

// Lookup returns the constructor registered under name.
// An empty name fails with an error matching both ErrUnknownAlgorithm and
// ErrInvalidArgument.
func (r *Registry) Lookup(name string) (Factory, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: %w: empty algorithm name", ErrUnknownAlgorithm, ErrInvalidArgument)
	}
	f, ok := r.factories[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return f, nil
}

// Calculate reads r to EOF and returns the lower-case hex digest computed
// with the named algorithm.
func (r *Registry) Calculate(algorithm string, rd io.Reader) (string, error) {
	if rd == nil {
		return "", fmt.Errorf("%w: nil reader", ErrInvalidArgument)
	}
	f, err := r.Lookup(algorithm)
	if err != nil {
		return "", err
	}
	h := f()
	if _, err := io.Copy(h, rd); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// CalculateFile hashes the file at path. The file is closed before
// CalculateFile returns.
func (r *Registry) CalculateFile(algorithm, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return r.Calculate(algorithm, file)
}

// Algorithms returns the registered names in lexical order.
func (r *Registry) Algorithms() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Size returns the digest length in bytes of the named algorithm.
func (r *Registry) Size(algorithm string) (int, error) {
	f, err := r.Lookup(algorithm)
	if err != nil {
		return 0, err
	}
	return f().Size(), nil
}

// Calculate hashes rd with an algorithm from the Default registry.
func Calculate(algorithm string, rd io.Reader) (string, error) {
	return Default.Calculate(algorithm, rd)
}
