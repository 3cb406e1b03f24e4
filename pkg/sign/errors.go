package sign

import "errors"

var (
	// ErrInvalidPrivateKey is returned when private key material is
	// malformed: the redundant public-key half does not match the key
	// derived from the seed half.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidPubKey is returned by VerifyPublic when the supplied
	// public key is not the key embedded in the signature.
	ErrInvalidPubKey = errors.New("invalid public key")

	// ErrInvalidSignature is returned when cryptographic verification of
	// a signature fails.
	ErrInvalidSignature = errors.New("invalid signature")
)
