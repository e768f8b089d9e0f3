// Package checksum provides the registry of hash algorithms used for
// whole-file digests and the digest sidecar file convention.
package checksum

import (
	"crypto/md5"
	"crypto/sha1"
	stdsha256 "crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"sort"

	blake2b "github.com/minio/blake2b-simd"
	sha256 "github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// ErrUnsupported is returned when an algorithm name or sidecar extension
// is not in the registry.
var ErrUnsupported = errors.New("unsupported checksum algorithm")

// algorithms maps the lowercase algorithm identifier used in sidecar
// file extensions to a constructor for the corresponding hash state.
var algorithms = map[string]func() hash.Hash{
	"md4":      md4.New,
	"md5":      md5.New,
	"sha1":     sha1.New,
	"sha224":   stdsha256.New224,
	"sha256":   sha256.New,
	"sha384":   sha512.New384,
	"sha512":   sha512.New,
	"sha3-224": sha3.New224,
	"sha3-256": sha3.New256,
	"sha3-384": sha3.New384,
	"sha3-512": sha3.New512,
	"shake128": func() hash.Hash { return sha3.NewShake128() },
	"shake256": func() hash.Hash { return sha3.NewShake256() },
	"ripemd160": ripemd160.New,
	"blake2s": func() hash.Hash {
		h, err := blake2s.New256(nil)
		if err != nil {
			// Only fails for a bad key; no key is passed here.
			panic(err)
		}
		return h
	},
	"blake2b": blake2b.New512,
	"blake3":  func() hash.Hash { return blake3.New() },
}

// New returns a fresh hash state for the named algorithm.
func New(name string) (hash.Hash, error) {
	ctor, ok := algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
	return ctor(), nil
}

// Supported reports whether the named algorithm is in the registry.
func Supported(name string) bool {
	_, ok := algorithms[name]
	return ok
}

// Names returns the sorted list of supported algorithm identifiers.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
