// Package cretrit implements the Lewi-Wu comparison-revealing
// encryption scheme: ciphertexts that can be compared for equality or
// order without ever being decrypted.
//
// # Overview
//
// A plaintext is an unsigned integer decomposed into N digits of base
// W (a PlainText). Encrypting it under a Cipher produces a CipherText
// made of two independent halves:
//
//   - a right half, which any number of parties may hold and which
//     alone reveals nothing about the plaintext;
//   - an optional left half, which carries the trapdoor information
//     needed to compare against someone else's right half.
//
// Two comparators are provided: EqualityComparator (M=2), which only
// distinguishes equal from not-equal, and OrderingComparator (M=3),
// which additionally reveals less-than/greater-than. The ere and ore
// subpackages wrap the generic types below with each comparator fixed,
// for callers who only need one.
//
// # Basic Usage
//
//	params := cretrit.Params{N: 8, W: 256}
//	cipher, err := cretrit.NewCipher(params, cretrit.OrderingComparator{}, rootKey)
//	if err != nil {
//	    panic(err)
//	}
//
//	pt, err := cretrit.NewPlainText(params, 31337)
//	ct, err := cipher.FullEncrypt(pt)
//
//	bs, err := ct.MarshalBinary()
//	rt, err := cretrit.UnmarshalCipherText(params, cretrit.OrderingComparator{}, bs)
//
//	result, err := ct.Compare(rt) // 0
//
// # Security Considerations
//
// Protected against:
//   - A party holding only right halves learning anything about the
//     underlying plaintexts beyond what successive comparisons reveal.
//   - Two plaintexts encrypted under the same key being linkable
//     across separate right-only ciphertexts without a comparison
//     being explicitly requested by a left-half holder.
//
// Not protected against:
//   - The party holding the left half, who can compare any plaintext
//     of their choosing against any right half they can see.
//   - Frequency analysis across a large number of revealed comparison
//     outcomes (this is a property of comparison-revealing schemes in
//     general, not a defect specific to this implementation).
//   - Side-channel attacks (timing, cache) against the underlying
//     AES/CMAC/ChaCha20 primitives.
//
// # Key Derivation
//
// A Cipher's root key is 32 bytes, from which the PRF subkey and the
// PRP seed are each derived independently via KBKDF (NIST SP 800-108
// counter mode, keyed with CMAC-AES). The hash function is not given
// a subkey of its own: it is keyed per block with a PRF output.
// Applications
// that prefer to start from a passphrase rather than raw key bytes
// can use Argon2idRootKeyProvider or PBKDF2RootKeyProvider to derive
// that root key; CipherKeyring helps manage several root keys tagged
// by ID across a rotation.
//
// # Wire Format
//
// MarshalBinary/UnmarshalCipherText produce and consume a compact
// binary framing: a type byte (0 for right-only, 1 for left+right),
// the big-endian length and bytes of the left half if present, then
// the big-endian length and bytes of the right half. The right half's
// per-block value table is bit-packed: one bit per value for an
// equality comparator, a two-bit prefix code per value for an
// ordering comparator.
package cretrit
