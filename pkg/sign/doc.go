// Package sign implements self-contained ed25519 signatures that carry the
// signer's identity.
//
// A Signature packs the 64-byte detached ed25519 signature and the 32-byte
// public key that produced it into one 96-byte value, so any holder can
// verify it and learn who signed without outside context. Addresses are the
// low 20 bytes of the Keccak-256 digest of a public key, the same derivation
// the surrounding Ethereum tooling uses for its keys.
//
// The core operations are:
//
//   - Sign: produce a composite signature over a 32-byte digest
//   - Signature.Recover: verify and return the embedded public key
//   - Signature.VerifyPublic: check a signature against a known public key
//   - Signature.VerifyAddress: check a signature against a known address
//
// # Security Design
//
// This package follows security best practices by:
//   - Signing digests only; callers hash their payloads first
//   - Validating key material on every reconstruction, so a corrupted
//     private key cannot sign
//   - Trusting the embedded public key only after verification passes
//   - Rendering private keys redacted through fmt to keep key material out
//     of logs
//
// Usage
//
//	// Generate a key pair and sign a digest (provide hash, not raw message)
//	kp := sign.GenerateKeyPair()
//	msg := ethcrypto.Keccak256Hash([]byte("hello world"))
//	sig, err := sign.Sign(kp.PrivKey(), msg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Anyone holding the signature can identify the signer
//	pub, err := sig.Recover(msg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Signed by:", sign.PubkeyToAddress(pub).Hex())
package sign
