package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/smartmatch/internal/ingestion"
	"github.com/jonathan/smartmatch/internal/llm"
	"github.com/jonathan/smartmatch/internal/matching"
	"github.com/jonathan/smartmatch/internal/taxonomy"
	"github.com/jonathan/smartmatch/internal/types"
)

var extractCommand = &cobra.Command{
	Use:   "extract",
	Short: "Extract the skill set from a document",
	Long:  "Reads a resume or job description and extracts the canonical skills it mentions, using the taxonomy phrase matcher and, when an API key is available, LLM entity recognition.",
	RunE:  runExtractCmd,
}

var (
	extractInput    string
	extractTaxonomy string
	extractAPIKey   string
	extractJSON     bool
)

func init() {
	extractCommand.Flags().StringVarP(&extractInput, "input", "i", "", "Path to resume or job description file (txt or pdf)")
	extractCommand.Flags().StringVar(&extractTaxonomy, "taxonomy", "", "Path to custom taxonomy JSON file (optional)")
	extractCommand.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	extractCommand.Flags().BoolVar(&extractJSON, "json", false, "Print skills as JSON")
	_ = extractCommand.MarkFlagRequired("input")

	rootCmd.AddCommand(extractCommand)
}

func runExtractCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	tax := taxonomy.Default()
	if extractTaxonomy != "" {
		var err error
		tax, err = taxonomy.LoadFile(extractTaxonomy)
		if err != nil {
			return fmt.Errorf("failed to load taxonomy: %w", err)
		}
	}

	matcher, err := matching.NewPhraseMatcher(tax)
	if err != nil {
		return fmt.Errorf("failed to build matcher: %w", err)
	}

	text, _, err := ingestion.IngestFromFile(extractInput)
	if err != nil {
		return fmt.Errorf("failed to ingest document: %w", err)
	}

	apiKey := extractAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var skills types.SkillSet
	if apiKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()

		skills, err = matcher.ExtractWithRecognizer(ctx, text, llm.NewRecognizer(client))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: entity recognition failed, using phrase matching only: %v\n", err)
			skills = matcher.Extract(text)
		}

		extracted, err := llm.NewSkillExtractor(client, tax).Extract(ctx, text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: model skill extraction failed, continuing without it: %v\n", err)
		} else {
			skills = skills.Union(extracted)
		}
	} else {
		skills = matcher.Extract(text)
	}

	if extractJSON {
		out, err := json.MarshalIndent(skills, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal skills: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	for _, skill := range skills.Sorted() {
		category, _ := tax.Category(skill)
		fmt.Printf("%s\t%s\n", skill, category)
	}
	return nil
}
