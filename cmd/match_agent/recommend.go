package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/smartmatch/internal/llm"
	"github.com/jonathan/smartmatch/internal/recommend"
	"github.com/jonathan/smartmatch/internal/taxonomy"
)

var recommendCommand = &cobra.Command{
	Use:   "recommend [skill]...",
	Short: "Look up learning recommendations for skills",
	Long:  "Prints a learning recommendation for each named skill. Skills outside the curated library are generated with the LLM when an API key is available.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRecommendCmd,
}

var recommendAPIKey string

func init() {
	recommendCommand.Flags().StringVar(&recommendAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(recommendCommand)
}

func runRecommendCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	library := recommend.NewLibrary(taxonomy.Default())

	var enricher *recommend.Enricher
	apiKey := recommendAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		enricher = recommend.NewEnricher(client)
	}

	for _, skill := range args {
		rec, err := library.Lookup(skill)
		if err != nil {
			if !errors.Is(err, recommend.ErrNotFound) {
				return err
			}
			if enricher == nil {
				fmt.Printf("%s: no recommendation available\n\n", skill)
				continue
			}
			rec, err = enricher.Enrich(ctx, skill, "")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not generate recommendation for %s: %v\n", skill, err)
				continue
			}
		}

		fmt.Printf("%s [%s]\n", rec.Skill, rec.Priority)
		fmt.Printf("  %s\n", rec.Description)
		if rec.LearningResource != "" {
			fmt.Printf("  %s\n", rec.LearningResource)
		}
		fmt.Println()
	}
	return nil
}
