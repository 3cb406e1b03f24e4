package sign

// Verifiable is the contract of a self-contained signature: a value that can
// be verified against the digest it covers and that identifies its signer
// without outside context. Signing stays a package function, so schemes with
// different key types can satisfy the contract without widening it.
type Verifiable interface {
	// Recover returns the signer's public key after verifying the
	// signature over msg.
	Recover(msg Message) (PubKey, error)

	// VerifyPublic checks the signature over msg against pub. It never
	// returns (false, nil); failures are always errors.
	VerifyPublic(pub PubKey, msg Message) (bool, error)

	// VerifyAddress reports whether the signer's derived address is addr.
	VerifyAddress(addr Address, msg Message) (bool, error)

	// Bytes returns the signature in wire order.
	Bytes() []byte
}

// Ensure the composite signature implements the contract at compile time.
var _ Verifiable = Signature{}
