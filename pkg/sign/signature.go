package sign

import (
	"crypto/ed25519"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// SignatureLength is the byte width of a composite signature: the
	// detached signature followed by the signer's public key.
	SignatureLength = sigLength + PubKeyLength

	// sigLength is the width of the detached ed25519 signature half. The
	// 64/96 split is defined here and nowhere else; all half access goes
	// through Sig and PubKey.
	sigLength = ed25519.SignatureSize
)

// Signature is a self-contained detached signature: the 64-byte ed25519
// signature over a 32-byte digest followed by the 32-byte public key that
// produced it. Carrying the key lets any holder verify the value and learn
// the signer's identity without outside context.
//
// The zero value is not a valid signature and fails verification like any
// other forged value. Signatures compare with == over all 96 bytes and are
// usable as map keys.
//
// On the wire a Signature RLP-encodes as a single 96-byte string and
// CBOR-encodes as a definite-length array of 96 byte elements; both decoders
// reject any other length. JSON uses the 0x-prefixed hex form.
type Signature [SignatureLength]byte

// SignatureFromBytes converts a raw byte slice into a Signature. The slice
// must be exactly SignatureLength bytes.
func SignatureFromBytes(b []byte) (Signature, error) {
	if len(b) != SignatureLength {
		return Signature{}, fmt.Errorf("invalid signature length %d, want %d", len(b), SignatureLength)
	}
	return Signature(b), nil
}

// Sign signs the digest msg with priv and returns the composite signature
// carrying the signer's public key. The private key is validated the same
// way KeyPairFromPrivKey validates it; signing is deterministic, so the same
// key and digest always produce the same signature.
func Sign(priv PrivKey, msg Message) (Signature, error) {
	kp, err := KeyPairFromPrivKey(priv)
	if err != nil {
		return Signature{}, err
	}
	var s Signature
	copy(s[:sigLength], ed25519.Sign(ed25519.PrivateKey(priv[:]), msg[:]))
	pub := kp.PubKey()
	copy(s[sigLength:], pub[:])
	return s, nil
}

// Recover returns the public key embedded in the signature after verifying
// the signature over msg under that key. The embedded key is trusted only
// because the check passed; a forged signature or a tampered key half fails
// with ErrInvalidSignature.
func (s Signature) Recover(msg Message) (PubKey, error) {
	pub := s.PubKey()
	if !ed25519.Verify(ed25519.PublicKey(pub[:]), msg[:], s.Sig()) {
		return PubKey{}, ErrInvalidSignature
	}
	return pub, nil
}

// VerifyPublic checks that s was produced over msg by the holder of pub. A
// pub that differs from the embedded key is rejected as ErrInvalidPubKey
// before any cryptography runs; a failed verification is ErrInvalidSignature.
//
// VerifyPublic never returns (false, nil): success is (true, nil) and every
// failure carries an error saying why. VerifyAddress is the query with a
// meaningful negative result.
func (s Signature) VerifyPublic(pub PubKey, msg Message) (bool, error) {
	if s.PubKey() != pub {
		return false, ErrInvalidPubKey
	}
	if !ed25519.Verify(ed25519.PublicKey(pub[:]), msg[:], s.Sig()) {
		return false, ErrInvalidSignature
	}
	return true, nil
}

// VerifyAddress reports whether the key recovered from s derives addr. A
// valid signature from a different signer yields (false, nil); a signature
// that fails verification is an error.
func (s Signature) VerifyAddress(addr Address, msg Message) (bool, error) {
	pub, err := s.Recover(msg)
	if err != nil {
		return false, err
	}
	return PubkeyToAddress(pub) == addr, nil
}

// Sig returns the detached signature half, bytes [0, 64).
func (s Signature) Sig() []byte { return s[:sigLength] }

// PubKey returns the embedded signer public key, bytes [64, 96).
func (s Signature) PubKey() PubKey { return PubKey(s[sigLength:]) }

// Bytes returns all 96 bytes in wire order.
func (s Signature) Bytes() []byte { return s[:] }

// String implements fmt.Stringer as the 0x-prefixed hex of the full value.
func (s Signature) String() string { return hexutil.Encode(s[:]) }

// GoString renders the two halves separately for debugging.
func (s Signature) GoString() string {
	return fmt.Sprintf("Signature{Sig: %s, PubKey: %s}", hexutil.Encode(s.Sig()), s.PubKey())
}
