// Package main is the entry point for the crypto-sec-cli application.
// It registers the hash, AES, RSA, ECIES and signature command groups and executes the CLI.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Criscape/security-crypto-lab/cmd/crypto-sec-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "crypto-sec-cli",
		Short: "Cryptographic operations CLI tool",
		Long: `crypto-sec-cli runs the lab's cryptographic operations locally and prints JSON.
Supports salted SHA-512 hashing, passphrase AES, RSA-OAEP, ECIES over secp256k1
and RSA digest signatures. Every keypair is generated fresh per invocation.`,
		SilenceUsage: true,
	}

	if err := commands.InitCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
