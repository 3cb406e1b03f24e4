package sign

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// PrivKeyLength is the byte width of an expanded ed25519 private key:
	// the 32-byte seed followed by the 32-byte public key derived from it.
	PrivKeyLength = ed25519.PrivateKeySize

	// PubKeyLength is the byte width of an ed25519 public key.
	PubKeyLength = ed25519.PublicKeySize

	// MessageLength is the byte width of the digests this package signs.
	MessageLength = common.HashLength
)

// PrivKey is an expanded ed25519 private key. The layout is the one produced
// by key generation: seed in the first half, public key in the second.
type PrivKey [PrivKeyLength]byte

// PubKey is a raw ed25519 public key.
type PubKey [PubKeyLength]byte

// Message is a 32-byte digest to be signed. Callers hash their payloads
// before signing; this package never hashes for them.
type Message = common.Hash

// PrivKeyFromBytes converts a raw byte slice into a PrivKey. The slice must
// be exactly PrivKeyLength bytes.
func PrivKeyFromBytes(b []byte) (PrivKey, error) {
	if len(b) != PrivKeyLength {
		return PrivKey{}, fmt.Errorf("invalid private key length %d, want %d", len(b), PrivKeyLength)
	}
	return PrivKey(b), nil
}

// PubKeyFromBytes converts a raw byte slice into a PubKey. The slice must be
// exactly PubKeyLength bytes.
func PubKeyFromBytes(b []byte) (PubKey, error) {
	if len(b) != PubKeyLength {
		return PubKey{}, fmt.Errorf("invalid public key length %d, want %d", len(b), PubKeyLength)
	}
	return PubKey(b), nil
}

// Bytes returns the private key as a byte slice.
func (p PrivKey) Bytes() []byte { return p[:] }

// String implements fmt.Stringer without exposing key material.
func (p PrivKey) String() string { return "<private key>" }

// GoString keeps %#v output free of key material as well.
func (p PrivKey) GoString() string { return p.String() }

// Bytes returns the public key as a byte slice.
func (p PubKey) Bytes() []byte { return p[:] }

// Hex returns the 0x-prefixed hex encoding of the public key.
func (p PubKey) Hex() string { return hexutil.Encode(p[:]) }

func (p PubKey) String() string { return p.Hex() }

// KeyPair holds an ed25519 private key together with its public key. The
// public key is always the one derived from the private key: construction
// goes through GenerateKeyPair or KeyPairFromPrivKey, which enforce it.
type KeyPair struct {
	privKey PrivKey
	pubKey  PubKey
}

// GenerateKeyPair returns a new random key pair. It panics if the system
// randomness source fails.
func GenerateKeyPair() KeyPair {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(fmt.Sprintf("sign: key generation: %v", err))
	}
	return KeyPair{privKey: PrivKey(priv), pubKey: PubKey(pub)}
}

// KeyPairFromPrivKey reconstructs a key pair from an existing private key.
// The public key is re-derived from the seed half and checked against the
// redundant half carried in the key; a mismatch means the key material is
// corrupt and is reported as ErrInvalidPrivateKey.
func KeyPairFromPrivKey(priv PrivKey) (KeyPair, error) {
	derived := ed25519.NewKeyFromSeed(priv[:ed25519.SeedSize])
	pub := derived.Public().(ed25519.PublicKey)
	if subtle.ConstantTimeCompare(pub, priv[ed25519.SeedSize:]) != 1 {
		return KeyPair{}, fmt.Errorf("%w: public key half does not match seed", ErrInvalidPrivateKey)
	}
	return KeyPair{privKey: priv, pubKey: PubKey(pub)}, nil
}

// PrivKey returns the pair's private key.
func (kp KeyPair) PrivKey() PrivKey { return kp.privKey }

// PubKey returns the pair's public key.
func (kp KeyPair) PubKey() PubKey { return kp.pubKey }

// String implements fmt.Stringer, rendering only the public half.
func (kp KeyPair) String() string { return "KeyPair(" + kp.pubKey.Hex() + ")" }
