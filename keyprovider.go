package cretrit

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"os"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// RootKeyProvider derives a Cipher's 32-byte root key from a salt,
// letting the root key itself be produced from a passphrase rather
// than handled as raw bytes throughout the application.
type RootKeyProvider interface {
	// DeriveKey derives a 32-byte root key from salt.
	DeriveKey(salt []byte) ([]byte, error)

	// GenerateSalt produces a fresh random salt of the size this
	// provider expects.
	GenerateSalt() ([]byte, error)
}

// HashFunc selects the digest PBKDF2RootKeyProvider runs underneath.
type HashFunc int

const (
	// SHA256 selects crypto/sha256 as PBKDF2's underlying hash.
	SHA256 HashFunc = iota
	// SHA512 selects crypto/sha512 as PBKDF2's underlying hash.
	SHA512
)

// Argon2Params tunes Argon2idRootKeyProvider. Zero values are
// replaced with the defaults below at construction time.
type Argon2Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltSize    int
}

// PBKDF2Params tunes PBKDF2RootKeyProvider. Zero values are replaced
// with the defaults below at construction time.
type PBKDF2Params struct {
	Iterations int
	SaltSize   int
	HashFunc   HashFunc
}

// Argon2idRootKeyProvider derives a root key from a passphrase with
// Argon2id, the provider recommended for new applications.
type Argon2idRootKeyProvider struct {
	passphrase []byte
	params     Argon2Params
}

// NewArgon2idRootKeyProvider constructs an Argon2idRootKeyProvider for
// passphrase, applying defaults to any zero field of params.
func NewArgon2idRootKeyProvider(passphrase []byte, params Argon2Params) *Argon2idRootKeyProvider {
	if params.Memory == 0 {
		params.Memory = 64 * 1024
	}
	if params.Iterations == 0 {
		params.Iterations = 3
	}
	if params.Parallelism == 0 {
		params.Parallelism = 4
	}
	if params.SaltSize == 0 {
		params.SaltSize = 32
	}

	return &Argon2idRootKeyProvider{passphrase: passphrase, params: params}
}

// DeriveKey derives a 32-byte root key from the provider's passphrase
// and the given salt.
func (p *Argon2idRootKeyProvider) DeriveKey(salt []byte) ([]byte, error) {
	if len(p.passphrase) == 0 {
		return nil, &KeyError{Message: "passphrase cannot be empty"}
	}
	if len(salt) == 0 {
		return nil, &KeyError{Message: "salt cannot be empty"}
	}

	return argon2.IDKey(p.passphrase, salt, p.params.Iterations, p.params.Memory, p.params.Parallelism, 32), nil
}

// GenerateSalt produces a fresh random salt of this provider's
// configured size.
func (p *Argon2idRootKeyProvider) GenerateSalt() ([]byte, error) {
	salt := make([]byte, p.params.SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, &CryptoError{Operation: "GenerateSalt", Message: "reading randomness", Err: err}
	}
	return salt, nil
}

// PBKDF2RootKeyProvider derives a root key from a passphrase with
// PBKDF2, for compatibility with systems that already standardise on
// it.
type PBKDF2RootKeyProvider struct {
	passphrase []byte
	params     PBKDF2Params
}

// NewPBKDF2RootKeyProvider constructs a PBKDF2RootKeyProvider for
// passphrase, applying defaults to any zero field of params.
func NewPBKDF2RootKeyProvider(passphrase []byte, params PBKDF2Params) *PBKDF2RootKeyProvider {
	if params.Iterations == 0 {
		params.Iterations = 210000
	}
	if params.SaltSize == 0 {
		params.SaltSize = 32
	}

	return &PBKDF2RootKeyProvider{passphrase: passphrase, params: params}
}

// DeriveKey derives a 32-byte root key from the provider's passphrase
// and the given salt.
func (p *PBKDF2RootKeyProvider) DeriveKey(salt []byte) ([]byte, error) {
	if len(p.passphrase) == 0 {
		return nil, &KeyError{Message: "passphrase cannot be empty"}
	}
	if len(salt) == 0 {
		return nil, &KeyError{Message: "salt cannot be empty"}
	}

	var hashFunc func() hash.Hash
	switch p.params.HashFunc {
	case SHA256:
		hashFunc = sha256.New
	case SHA512:
		hashFunc = sha512.New
	default:
		return nil, &KeyError{Message: fmt.Sprintf("unsupported hash function: %v", p.params.HashFunc)}
	}

	return pbkdf2.Key(p.passphrase, salt, p.params.Iterations, 32, hashFunc), nil
}

// GenerateSalt produces a fresh random salt of this provider's
// configured size.
func (p *PBKDF2RootKeyProvider) GenerateSalt() ([]byte, error) {
	salt := make([]byte, p.params.SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, &CryptoError{Operation: "GenerateSalt", Message: "reading randomness", Err: err}
	}
	return salt, nil
}

// EnvRootKeyProvider reads a hex-encoded 32-byte root key directly
// from an environment variable, ignoring the salt passed to
// DeriveKey; it exists for deployments that manage key material
// outside this package entirely.
type EnvRootKeyProvider struct {
	envVar   string
	saltSize int
}

// NewEnvRootKeyProvider constructs an EnvRootKeyProvider that reads
// envVar.
func NewEnvRootKeyProvider(envVar string) *EnvRootKeyProvider {
	return &EnvRootKeyProvider{envVar: envVar, saltSize: 32}
}

// DeriveKey returns the 32-byte key decoded from the environment
// variable's hex contents.
func (e *EnvRootKeyProvider) DeriveKey(salt []byte) ([]byte, error) {
	keyHex := os.Getenv(e.envVar)
	if keyHex == "" {
		return nil, &KeyError{Message: fmt.Sprintf("environment variable %s not set", e.envVar)}
	}

	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, &KeyError{Message: fmt.Sprintf("environment variable %s is not valid hex", e.envVar), Err: err}
	}

	if len(key) != 32 {
		return nil, &KeyError{Message: fmt.Sprintf("key from environment variable %s must be 32 bytes, got %d", e.envVar, len(key))}
	}

	return key, nil
}

// GenerateSalt produces a fresh random salt; EnvRootKeyProvider
// ignores it on DeriveKey but callers still need one to keep a
// uniform RootKeyProvider-based rotation flow.
func (e *EnvRootKeyProvider) GenerateSalt() ([]byte, error) {
	salt := make([]byte, e.saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, &CryptoError{Operation: "GenerateSalt", Message: "reading randomness", Err: err}
	}
	return salt, nil
}
