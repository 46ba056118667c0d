package main

import (
	"fmt"
	"os"

	"github.com/aero-sizing/wingweight/internal/logger"
)

// wing weight surrogate CLI: baseline check, single-point evaluation, model description, REST server
func main() {
	if _, err := logger.InitLogger(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.SyncLogger()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		logger.SyncLogger()
		os.Exit(1)
	}
}
