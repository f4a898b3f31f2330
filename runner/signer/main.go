package main

import (
	"os"

	"github.com/TopiaNetwork/signer/cmd"
)

func main() {
	if cmd.RootCmd().Execute() != nil {
		os.Exit(1)
	}
}
