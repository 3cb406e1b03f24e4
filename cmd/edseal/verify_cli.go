package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/kyanite-io/edseal/pkg/log"
	"github.com/kyanite-io/edseal/pkg/sign"
)

func runVerifyCli(logger log.Logger) {
	logger = logger.WithName("verify")
	if len(os.Args) < 5 {
		logger.Fatal("Usage: edseal verify <signature-hex> <payload-hex> <address-or-pubkey-hex>")
	}

	sig, msg := signatureArgs(logger, os.Args[2], os.Args[3])

	raw, err := hexutil.Decode(os.Args[4])
	if err != nil {
		logger.Fatal("Invalid verifier hex", "error", err)
	}

	var ok bool
	switch len(raw) {
	case sign.AddressLength:
		ok, err = sig.VerifyAddress(common.BytesToAddress(raw), msg)
	case sign.PubKeyLength:
		var pub sign.PubKey
		pub, err = sign.PubKeyFromBytes(raw)
		if err != nil {
			logger.Fatal("Invalid public key", "error", err)
		}
		ok, err = sig.VerifyPublic(pub, msg)
	default:
		logger.Fatal("Expected a 20-byte address or a 32-byte public key", "length", len(raw))
	}
	if err != nil {
		logger.Warn("verification failed", "reason", err)
	}

	fmt.Println("valid:", ok)
}

func runRecoverCli(logger log.Logger) {
	logger = logger.WithName("recover")
	if len(os.Args) < 4 {
		logger.Fatal("Usage: edseal recover <signature-hex> <payload-hex>")
	}

	sig, msg := signatureArgs(logger, os.Args[2], os.Args[3])

	pub, err := sig.Recover(msg)
	if err != nil {
		logger.Fatal("Recovery failed", "error", err)
	}

	fmt.Println("public key:", pub.Hex())
	fmt.Println("address:   ", sign.PubkeyToAddress(pub).Hex())
}

// signatureArgs decodes the signature and payload arguments shared by the
// verify and recover commands. The payload is hashed the same way sign
// hashes it.
func signatureArgs(logger log.Logger, sigHex, payloadHex string) (sign.Signature, sign.Message) {
	rawSig, err := hexutil.Decode(sigHex)
	if err != nil {
		logger.Fatal("Invalid signature hex", "error", err)
	}
	sig, err := sign.SignatureFromBytes(rawSig)
	if err != nil {
		logger.Fatal("Invalid signature", "error", err)
	}

	payload, err := hexutil.Decode(payloadHex)
	if err != nil {
		logger.Fatal("Invalid payload hex", "error", err)
	}
	return sig, ethcrypto.Keccak256Hash(payload)
}
