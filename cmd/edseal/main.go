package main

import (
	"os"

	"github.com/kyanite-io/edseal/pkg/log"
)

func main() {
	logger := log.NewZapLogger(log.Config{}).WithName("edseal")

	if len(os.Args) < 2 {
		logger.Fatal("Usage: edseal <command> [args]", "commands", "keygen, address, sign, verify, recover")
	}
	runCli(logger, os.Args[1])
}

func runCli(logger log.Logger, name string) {
	conf, err := LoadConfig(logger)
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}
	logger = log.NewZapLogger(conf.Log).WithName("edseal")

	switch name {
	case "keygen":
		runKeygenCli(logger)
	case "address":
		runAddressCli(logger)
	case "sign":
		runSignCli(logger, conf)
	case "verify":
		runVerifyCli(logger)
	case "recover":
		runRecoverCli(logger)
	default:
		logger.Fatal("Unknown CLI command", "name", name)
	}
}
