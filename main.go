// Copyright (c) 2026 Passwdgen Team
// Passwdgen - password generation over UDP
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Passwdgen.
//
// Usage:
//
//	go run . [flags]
//	./passwdgen [flags]
//
// This launches the Passwdgen CLI. See --help for options.
package main

import (
	"log"
	"os"

	"github.com/passwdgen/passwdgen/ui/cli"
)

// main is the entrypoint for the Passwdgen CLI.
func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("Passwdgen CLI error: %v", err)
		os.Exit(1)
	}
}
