package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/kyanite-io/edseal/pkg/log"
	"github.com/kyanite-io/edseal/pkg/sign"
)

func runKeygenCli(logger log.Logger) {
	logger = logger.WithName("keygen")

	kp := sign.GenerateKeyPair()
	addr := sign.PubkeyToAddress(kp.PubKey())
	logger.Info("generated key pair", "address", addr.Hex())

	// The private key goes to stdout on purpose; this is the one place
	// where exporting it is the point.
	fmt.Println("private key:", hexutil.Encode(kp.PrivKey().Bytes()))
	fmt.Println("public key: ", kp.PubKey().Hex())
	fmt.Println("address:    ", addr.Hex())
}

func runAddressCli(logger log.Logger) {
	logger = logger.WithName("address")
	if len(os.Args) < 3 {
		logger.Fatal("Usage: edseal address <pubkey-hex>")
	}

	raw, err := hexutil.Decode(os.Args[2])
	if err != nil {
		logger.Fatal("Invalid public key hex", "error", err)
	}
	pub, err := sign.PubKeyFromBytes(raw)
	if err != nil {
		logger.Fatal("Invalid public key", "error", err)
	}

	fmt.Println(sign.PubkeyToAddress(pub).Hex())
}
