package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/goscript-cli/goscript/internal/cli"
)

var version = "dev"

func main() {
	// A .env in the working directory may override GOSCRIPT_HOME and
	// friends; its absence is not an error.
	_ = godotenv.Load()

	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
