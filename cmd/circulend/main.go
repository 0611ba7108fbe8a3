// Package main provides the circulend CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "circulend",
		Short: "Circular readiness scoring for small businesses",
		Long: `Circulend evaluates self-reported circular economy practices against a
fixed rule table and produces explainable lending-readiness scores.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newScoreCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
