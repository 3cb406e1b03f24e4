package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/kyanite-io/edseal/pkg/log"
	"github.com/kyanite-io/edseal/pkg/sign"
)

func runSignCli(logger log.Logger, conf *Config) {
	logger = logger.WithName("sign")
	if len(os.Args) < 3 {
		logger.Fatal("Usage: edseal sign <payload-hex>")
	}

	signer := signerFromConfig(logger, conf)

	payload, err := hexutil.Decode(os.Args[2])
	if err != nil {
		logger.Fatal("Invalid payload hex", "error", err)
	}

	msg := ethcrypto.Keccak256Hash(payload)
	sig, err := signer.Sign(msg)
	if err != nil {
		logger.Fatal("Signing failed", "error", err)
	}
	logger.Info("signed payload", "digest", msg.Hex(), "signer", signer.Address().Hex())

	fmt.Println(sig.String())
}

// signerFromConfig builds the signer from the configured private key.
func signerFromConfig(logger log.Logger, conf *Config) *sign.Signer {
	if conf.PrivateKeyHex == "" {
		logger.Fatal("EDSEAL_PRIVATE_KEY environment variable is required")
	}

	keyHex := conf.PrivateKeyHex
	if !strings.HasPrefix(keyHex, "0x") {
		keyHex = "0x" + keyHex
	}
	raw, err := hexutil.Decode(keyHex)
	if err != nil {
		logger.Fatal("Invalid private key hex", "error", err)
	}
	priv, err := sign.PrivKeyFromBytes(raw)
	if err != nil {
		logger.Fatal("Invalid private key", "error", err)
	}

	signer, err := sign.NewSigner(priv)
	if err != nil {
		logger.Fatal("Rejected private key", "error", err)
	}
	return signer
}
