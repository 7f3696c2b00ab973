package cretrit

import (
	"encoding/hex"
	"os"
	"testing"
)

func TestArgon2idRootKeyProvider(t *testing.T) {
	p := NewArgon2idRootKeyProvider([]byte("correct horse battery staple"), Argon2Params{})

	salt, err := p.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}

	k1, err := p.DeriveKey(salt)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if len(k1) != 32 {
		t.Fatalf("DeriveKey produced a %d-byte key, want 32", len(k1))
	}

	k2, err := p.DeriveKey(salt)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if string(k1) != string(k2) {
		t.Error("DeriveKey is not deterministic for the same salt")
	}

	otherSalt, err := p.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}
	k3, err := p.DeriveKey(otherSalt)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if string(k1) == string(k3) {
		t.Error("DeriveKey produced identical keys for different salts")
	}
}

func TestArgon2idRootKeyProviderRejectsEmptyPassphrase(t *testing.T) {
	p := NewArgon2idRootKeyProvider(nil, Argon2Params{})
	salt := make([]byte, 32)
	if _, err := p.DeriveKey(salt); err == nil {
		t.Fatal("expected an error for an empty passphrase")
	} else if !IsKeyError(err) {
		t.Errorf("expected a KeyError, got %T: %v", err, err)
	}
}

func TestPBKDF2RootKeyProvider(t *testing.T) {
	p := NewPBKDF2RootKeyProvider([]byte("hunter2"), PBKDF2Params{HashFunc: SHA256, Iterations: 1000})

	salt, err := p.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}

	k, err := p.DeriveKey(salt)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if len(k) != 32 {
		t.Fatalf("DeriveKey produced a %d-byte key, want 32", len(k))
	}
}

func TestPBKDF2RootKeyProviderRejectsUnknownHashFunc(t *testing.T) {
	p := NewPBKDF2RootKeyProvider([]byte("hunter2"), PBKDF2Params{HashFunc: HashFunc(99), Iterations: 1000})
	salt := make([]byte, 32)
	if _, err := p.DeriveKey(salt); err == nil {
		t.Fatal("expected an error for an unknown hash function")
	}
}

func TestEnvRootKeyProvider(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	keyHex := hex.EncodeToString(key)

	const envVar = "CRETRIT_TEST_ROOT_KEY"
	os.Setenv(envVar, keyHex)
	defer os.Unsetenv(envVar)

	p := NewEnvRootKeyProvider(envVar)
	got, err := p.DeriveKey(nil)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if hex.EncodeToString(got) != keyHex {
		t.Errorf("DeriveKey returned %x, want %x", got, key)
	}
}

func TestEnvRootKeyProviderMissingVar(t *testing.T) {
	p := NewEnvRootKeyProvider("CRETRIT_TEST_ROOT_KEY_DOES_NOT_EXIST")
	if _, err := p.DeriveKey(nil); err == nil {
		t.Fatal("expected an error for a missing environment variable")
	} else if !IsKeyError(err) {
		t.Errorf("expected a KeyError, got %T: %v", err, err)
	}
}
