package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/smartmatch/internal/config"
	"github.com/jonathan/smartmatch/internal/llm"
	"github.com/jonathan/smartmatch/internal/pipeline"
	"github.com/jonathan/smartmatch/internal/recommend"
	"github.com/jonathan/smartmatch/internal/scoring"
	"github.com/jonathan/smartmatch/internal/taxonomy"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis: ingest, extract, score, and recommend",
	Long: `Analyzes a resume against a job description: ingestion -> section parsing -> skill extraction -> scoring -> gap recommendations.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath  string
	analyzeResume      string
	analyzeJob         string
	analyzeJobURL      string
	analyzeTaxonomy    string
	analyzeSimWeight   float64
	analyzeCovWeight   float64
	analyzeStrong      float64
	analyzeModerate    float64
	analyzeAPIKey      string
	analyzeUseBrowser  bool
	analyzeVerbose     bool
	analyzeDatabaseURL string
	analyzeJSON        bool
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (txt or pdf)")
	analyzeCommand.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	analyzeCommand.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	analyzeCommand.Flags().StringVar(&analyzeTaxonomy, "taxonomy", "", "Path to custom taxonomy JSON file (optional)")
	analyzeCommand.Flags().Float64Var(&analyzeSimWeight, "similarity-weight", 0, "Weight for embedding similarity (0.0-1.0)")
	analyzeCommand.Flags().Float64Var(&analyzeCovWeight, "coverage-weight", 0, "Weight for skill coverage (0.0-1.0)")
	analyzeCommand.Flags().Float64Var(&analyzeStrong, "strong-threshold", 0, "Composite score for a strong match")
	analyzeCommand.Flags().Float64Var(&analyzeModerate, "moderate-threshold", 0, "Composite score for a moderate match")
	analyzeCommand.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	analyzeCommand.Flags().BoolVar(&analyzeJSON, "json", false, "Print the match report as JSON")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for run persistence
	analyzeCommand.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Apply CLI overrides, only where the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if cmd.Flags().Changed("taxonomy") {
		cfg.Taxonomy = analyzeTaxonomy
	}
	if cmd.Flags().Changed("similarity-weight") {
		cfg.SimilarityWeight = &analyzeSimWeight
	}
	if cmd.Flags().Changed("coverage-weight") {
		cfg.CoverageWeight = &analyzeCovWeight
	}
	if cmd.Flags().Changed("strong-threshold") {
		cfg.StrongThreshold = &analyzeStrong
	}
	if cmd.Flags().Changed("moderate-threshold") {
		cfg.ModerateThreshold = &analyzeModerate
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = analyzeDatabaseURL
	}

	// Apply defaults for unset values. An explicit zero weight is a valid
	// setting (coverage-only scoring) and survives the merge.
	defaultWeights := scoring.DefaultWeights()
	defaultBands := scoring.DefaultBands()
	cfg = cfg.MergeWithDefaults(config.Config{
		SimilarityWeight:  &defaultWeights.Similarity,
		CoverageWeight:    &defaultWeights.Coverage,
		StrongThreshold:   &defaultBands.Strong,
		ModerateThreshold: &defaultBands.Moderate,
	})

	// Validate required fields
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	// API key and database URL fall back to the environment
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	opts := pipeline.RunOptions{
		ResumePath:   cfg.Resume,
		JobPath:      cfg.Job,
		JobURL:       cfg.JobURL,
		TaxonomyPath: cfg.Taxonomy,
		Weights:      scoring.Weights{Similarity: *cfg.SimilarityWeight, Coverage: *cfg.CoverageWeight},
		Bands:        scoring.Bands{Strong: *cfg.StrongThreshold, Moderate: *cfg.ModerateThreshold},
		UseBrowser:   cfg.UseBrowser,
		Verbose:      cfg.Verbose,
		DatabaseURL:  cfg.DatabaseURL,
	}

	// Wire LLM-backed capabilities when an API key is available. Without
	// one the analysis runs on phrase matching and coverage alone.
	if cfg.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()

		tax := taxonomy.Default()
		if cfg.Taxonomy != "" {
			tax, err = taxonomy.LoadFile(cfg.Taxonomy)
			if err != nil {
				return fmt.Errorf("failed to load taxonomy: %w", err)
			}
		}

		opts.Embedder = client
		opts.Recognizer = llm.NewRecognizer(client)
		opts.Extractor = llm.NewSkillExtractor(client, tax)
		opts.Enricher = recommend.NewEnricher(client)
	} else if cfg.Verbose {
		fmt.Println("No API key configured; running without similarity scoring and entity recognition.")
	}

	result, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	if analyzeJSON {
		out, err := json.MarshalIndent(result.Report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	printAnalysisSummary(result)
	return nil
}

// printAnalysisSummary prints the human-readable result of an analysis.
func printAnalysisSummary(result *pipeline.Result) {
	report := result.Report

	fmt.Printf("\nMatch: %.1f / 100 (%s)\n", report.CompositeScore, report.Band)
	if result.Degraded {
		fmt.Printf("  similarity unavailable; score reflects skill coverage only\n")
	} else {
		fmt.Printf("  similarity %.3f\n", report.SimilarityScore)
	}
	fmt.Printf("  coverage   %.1f%% (%d of %d job skills)\n",
		report.CoveragePct, report.Matched.Len(), report.Matched.Len()+report.Missing.Len())

	if report.Missing.Len() > 0 {
		fmt.Printf("\nMissing skills:\n")
		for _, skill := range report.Missing.Sorted() {
			fmt.Printf("  - %s\n", skill)
		}
	}

	if len(result.Recommendations) > 0 {
		fmt.Printf("\nRecommendations:\n")
		for _, rec := range result.Recommendations {
			fmt.Printf("  %s [%s]\n", rec.Skill, rec.Priority)
			fmt.Printf("    %s\n", rec.Description)
			if rec.LearningResource != "" {
				fmt.Printf("    %s\n", rec.LearningResource)
			}
		}
	}

	if len(result.UnknownGaps) > 0 {
		fmt.Printf("\nNo recommendation available for: %v\n", result.UnknownGaps)
	}
}
