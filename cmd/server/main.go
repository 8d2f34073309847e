// Package main is the entry point for the adventurer-api server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adventurer-api",
	Short: "On-chain adventurer metadata renderer",
	Long:  `adventurer-api renders deterministic NFT metadata, traits, and SVG images from adventurer snapshots.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(renderCmd)
}
