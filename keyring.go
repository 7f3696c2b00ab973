package cretrit

import (
	"sync"

	"github.com/google/uuid"
)

// KeyringEntry is one tagged Cipher held by a CipherKeyring.
type KeyringEntry struct {
	ID     uuid.UUID
	Cipher *Cipher
}

// CipherKeyring manages several Ciphers, all built from the same
// Params and Comparator but distinct root keys, tagged by uuid.UUID so
// old keys can be kept around during a rotation. New encryptions
// always go through the current entry; the others exist so a batch
// migration job can know how to re-derive values it already holds the
// plaintext for.
//
// Unlike the teacher's MultiKeyProvider, a CipherKeyring has no notion
// of "try each key until one works": CRE ciphertext cannot be
// decrypted, so a key rotation must start from the plaintext, not
// from the old ciphertext. CipherKeyring exists to make that
// re-encryption workflow well-typed rather than to recover from a
// wrong key.
type CipherKeyring struct {
	params     Params
	comparator Comparator

	mu      sync.RWMutex
	entries map[uuid.UUID]*Cipher
	current uuid.UUID
}

// NewCipherKeyring creates a keyring for params and comparator, with
// no entries yet. Call AddKey at least once before using Current.
func NewCipherKeyring(params Params, comparator Comparator) (*CipherKeyring, error) {
	if comparator == nil {
		return nil, ErrNilComparator
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &CipherKeyring{
		params:     params,
		comparator: comparator,
		entries:    make(map[uuid.UUID]*Cipher),
	}, nil
}

// AddKey derives a Cipher from rootKey, adds it to the keyring under a
// freshly generated ID, and makes it the current entry used for new
// encryptions.
func (kr *CipherKeyring) AddKey(rootKey []byte) (uuid.UUID, error) {
	c, err := NewCipher(kr.params, kr.comparator, rootKey)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()

	kr.mu.Lock()
	defer kr.mu.Unlock()
	kr.entries[id] = c
	kr.current = id

	return id, nil
}

// Current returns the Cipher currently used for new encryptions. It
// fails if AddKey has never been called.
func (kr *CipherKeyring) Current() (*Cipher, error) {
	kr.mu.RLock()
	defer kr.mu.RUnlock()

	c, ok := kr.entries[kr.current]
	if !ok {
		return nil, &KeyError{Message: "keyring has no current entry; call AddKey first"}
	}
	return c, nil
}

// CurrentID returns the ID of the current entry.
func (kr *CipherKeyring) CurrentID() (uuid.UUID, error) {
	kr.mu.RLock()
	defer kr.mu.RUnlock()

	if _, ok := kr.entries[kr.current]; !ok {
		return uuid.Nil, &KeyError{Message: "keyring has no current entry; call AddKey first"}
	}
	return kr.current, nil
}

// Get returns the Cipher tagged id, or ok=false if no such entry
// exists.
func (kr *CipherKeyring) Get(id uuid.UUID) (*Cipher, bool) {
	kr.mu.RLock()
	defer kr.mu.RUnlock()

	c, ok := kr.entries[id]
	return c, ok
}

// RemoveKey discards the entry tagged id. It fails if id is the
// current entry: rotate onto a new key with AddKey before retiring
// the old one.
func (kr *CipherKeyring) RemoveKey(id uuid.UUID) error {
	kr.mu.Lock()
	defer kr.mu.Unlock()

	if id == kr.current {
		return &KeyError{Message: "cannot remove the current keyring entry"}
	}
	if _, ok := kr.entries[id]; !ok {
		return &KeyError{Message: "no such keyring entry"}
	}
	delete(kr.entries, id)
	return nil
}

// Rotate re-encrypts every value in plaintexts under the keyring's
// current Cipher, producing full ciphertexts. Since CRE ciphertext
// carries no decryption trapdoor, migrating old ciphertext to a new
// key is only possible by re-encrypting from the plaintext the caller
// already holds.
func (kr *CipherKeyring) Rotate(plaintexts []*PlainText) ([]*CipherText, error) {
	current, err := kr.Current()
	if err != nil {
		return nil, err
	}

	out := make([]*CipherText, len(plaintexts))
	for i, pt := range plaintexts {
		ct, err := current.FullEncrypt(pt)
		if err != nil {
			return nil, err
		}
		out[i] = ct
	}
	return out, nil
}
