// Package main provides the entry point for the SmartMatch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Skill extraction and matching for resumes and job descriptions",
	Long:  "SmartMatch extracts skills from resumes and job descriptions, scores how well they match, and recommends how to close the gaps.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
