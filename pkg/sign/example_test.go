package sign_test

import (
	"fmt"
	"log"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/kyanite-io/edseal/pkg/sign"
)

// ExampleSign demonstrates signing a digest and verifying the result.
func ExampleSign() {
	kp := sign.GenerateKeyPair()

	// Sign a digest (provide hash, not raw message).
	msg := ethcrypto.Keccak256Hash([]byte("hello world"))
	sig, err := sign.Sign(kp.PrivKey(), msg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Signature length:", len(sig.Bytes()))

	ok, err := sig.VerifyPublic(kp.PubKey(), msg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Verified:", ok)
	// Output:
	// Signature length: 96
	// Verified: true
}

// ExampleSignature_Recover demonstrates identifying the signer from the
// signature alone.
func ExampleSignature_Recover() {
	kp := sign.GenerateKeyPair()
	msg := ethcrypto.Keccak256Hash([]byte("transfer 10 tokens"))

	sig, err := sign.Sign(kp.PrivKey(), msg)
	if err != nil {
		log.Fatal(err)
	}

	// The holder of the signature needs no out-of-band key material.
	pub, err := sig.Recover(msg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Recovered the signer:", pub == kp.PubKey())
	// Output:
	// Recovered the signer: true
}

// ExampleSignature_VerifyAddress demonstrates checking a signature against a
// claimed address.
func ExampleSignature_VerifyAddress() {
	signer, err := sign.NewSigner(sign.GenerateKeyPair().PrivKey())
	if err != nil {
		log.Fatal(err)
	}

	msg := ethcrypto.Keccak256Hash([]byte("hello world"))
	sig, err := signer.Sign(msg)
	if err != nil {
		log.Fatal(err)
	}

	ok, err := sig.VerifyAddress(signer.Address(), msg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Signed by the claimed address:", ok)

	stranger := sign.PubkeyToAddress(sign.GenerateKeyPair().PubKey())
	ok, err = sig.VerifyAddress(stranger, msg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Signed by a stranger:", ok)
	// Output:
	// Signed by the claimed address: true
	// Signed by a stranger: false
}

// ExampleSignatureFromBytes demonstrates the strict length check on raw
// input.
func ExampleSignatureFromBytes() {
	_, err := sign.SignatureFromBytes(make([]byte, 32))
	fmt.Println(err)
	// Output:
	// invalid signature length 32, want 96
}
