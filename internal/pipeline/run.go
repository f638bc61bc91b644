// Package pipeline provides the high-level orchestration for the skill
// matching analysis.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/smartmatch/internal/db"
	"github.com/jonathan/smartmatch/internal/ingestion"
	"github.com/jonathan/smartmatch/internal/matching"
	"github.com/jonathan/smartmatch/internal/observability"
	"github.com/jonathan/smartmatch/internal/parsing"
	"github.com/jonathan/smartmatch/internal/recommend"
	"github.com/jonathan/smartmatch/internal/scoring"
	"github.com/jonathan/smartmatch/internal/taxonomy"
	"github.com/jonathan/smartmatch/internal/types"
)

// ProgressEvent represents a progress update during analysis
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when analysis progress occurs
type ProgressCallback func(event ProgressEvent)

// Step names reported through progress events and stored with artifacts
const (
	StepIngestResume  = "ingest_resume"
	StepIngestJob     = "ingest_job"
	StepParseSections = "parse_sections"
	StepExtractSkills = "extract_skills"
	StepScore         = "score"
	StepRecommend     = "recommend"
)

// RunOptions holds configuration for running an analysis
type RunOptions struct {
	ResumePath   string
	JobPath      string
	JobURL       string
	TaxonomyPath string

	Weights scoring.Weights
	Bands   scoring.Bands

	// Optional external capabilities. When nil the analysis degrades to
	// its deterministic parts instead of failing.
	Embedder   scoring.Embedder
	Recognizer matching.EntityRecognizer
	Extractor  SkillExtractor
	Enricher   *recommend.Enricher

	UseBrowser  bool
	Verbose     bool
	DatabaseURL string
	OnProgress  ProgressCallback
}

// Result holds everything an analysis produces.
type Result struct {
	ResumeText      string
	JobText         string
	ResumeMeta      *ingestion.Metadata
	JobMeta         *ingestion.Metadata
	ResumeSections  *types.ParsedDocument
	ResumeSkills    types.SkillSet
	JobSkills       types.SkillSet
	Report          *types.MatchReport
	Recommendations []types.Recommendation
	UnknownGaps     []string

	// Degraded is true when similarity scoring was skipped because the
	// embedder was unavailable.
	Degraded bool
	RunID    uuid.UUID
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			Content: content,
		})
	}
}

// Run executes the full analysis: ingest both documents, parse the resume
// into sections, extract skill sets from each side, score the match, and
// look up recommendations for the gaps.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	printer := observability.NewPrinter(os.Stdout)

	tax, err := loadTaxonomy(opts.TaxonomyPath)
	if err != nil {
		return nil, fmt.Errorf("taxonomy load failed: %w", err)
	}

	matcher, err := matching.NewPhraseMatcher(tax)
	if err != nil {
		return nil, fmt.Errorf("matcher build failed: %w", err)
	}

	scorer, err := scoring.NewScorer(opts.Embedder, opts.Weights, opts.Bands)
	if err != nil {
		return nil, fmt.Errorf("scorer build failed: %w", err)
	}

	// Optional database connection; analysis continues without persistence
	// when it cannot be established.
	var database *db.DB
	if opts.DatabaseURL != "" {
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
			database = nil
		} else {
			defer database.Close()
		}
	}

	result := &Result{}

	// Ingest both documents in parallel. Resume comes from a file; the job
	// description comes from a file or a URL.
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		text, meta, err := ingestion.IngestFromFile(opts.ResumePath)
		if err != nil {
			return fmt.Errorf("resume ingestion failed: %w", err)
		}
		result.ResumeText, result.ResumeMeta = text, meta
		return nil
	})

	g.Go(func() error {
		var text string
		var meta *ingestion.Metadata
		var err error
		if opts.JobURL != "" {
			text, meta, err = ingestion.IngestFromURL(gCtx, opts.JobURL, opts.UseBrowser, opts.Verbose)
		} else {
			text, meta, err = ingestion.IngestFromFile(opts.JobPath)
		}
		if err != nil {
			return fmt.Errorf("job ingestion failed: %w", err)
		}
		result.JobText, result.JobMeta = text, meta
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	emitProgress(&opts, StepIngestResume, fmt.Sprintf("Ingested resume (%d chars)", len(result.ResumeText)), nil)
	emitProgress(&opts, StepIngestJob, fmt.Sprintf("Ingested job description (%d chars)", len(result.JobText)), nil)

	if database != nil {
		result.RunID, err = database.CreateRun(ctx, result.ResumeMeta.Hash, result.JobMeta.Hash, opts.JobURL)
		if err != nil {
			fmt.Printf("Warning: Failed to create database run: %v\n", err)
		}
	}

	// Parse the resume into sections. The skills and experience sections
	// carry most of the signal; the extractor still sees the whole text.
	result.ResumeSections = parsing.NewSectionParser().Parse(result.ResumeText)
	if opts.Verbose {
		printer.PrintSections(result.ResumeSections)
	}
	emitProgress(&opts, StepParseSections, fmt.Sprintf("Parsed resume into %d classified lines", result.ResumeSections.Len()), nil)

	// Extract skill sets from both sides in parallel, memoized by content
	// hash so repeated documents are extracted once. The lexical pass is the
	// baseline; recognizer spans and model-extracted skills are unioned in
	// when those capabilities are available.
	extractor := NewMemoizedExtractor(func(ctx context.Context, text string) (types.SkillSet, error) {
		skills := matcher.Extract(text)
		if opts.Recognizer != nil {
			recognized, err := matcher.ExtractWithRecognizer(ctx, text, opts.Recognizer)
			if err == nil {
				skills = recognized
			} else if !errors.Is(err, types.ErrCapabilityUnavailable) {
				return nil, err
			} else {
				fmt.Printf("Warning: entity recognition unavailable, using phrase matching only: %v\n", err)
			}
		}
		if opts.Extractor != nil {
			extracted, err := opts.Extractor.Extract(ctx, text)
			if err != nil {
				fmt.Printf("Warning: model skill extraction unavailable, continuing without it: %v\n", err)
			} else {
				skills = skills.Union(extracted)
			}
		}
		return skills, nil
	})

	g, gCtx = errgroup.WithContext(ctx)
	g.Go(func() error {
		skills, err := extractor.Extract(gCtx, result.ResumeText)
		if err != nil {
			return fmt.Errorf("resume skill extraction failed: %w", err)
		}
		result.ResumeSkills = skills
		return nil
	})
	g.Go(func() error {
		skills, err := extractor.Extract(gCtx, result.JobText)
		if err != nil {
			return fmt.Errorf("job skill extraction failed: %w", err)
		}
		result.JobSkills = skills
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Verbose {
		printer.PrintSkillSets(result.ResumeSkills, result.JobSkills)
	}
	emitProgress(&opts, StepExtractSkills,
		fmt.Sprintf("Extracted %d resume skills, %d job skills", result.ResumeSkills.Len(), result.JobSkills.Len()), nil)

	// Score the match. When the embedder is unavailable fall back to the
	// set-overlap score instead of failing the whole analysis.
	report, err := scorer.Score(ctx, result.ResumeText, result.JobText, result.ResumeSkills, result.JobSkills)
	if err != nil {
		if !errors.Is(err, types.ErrCapabilityUnavailable) {
			return nil, fmt.Errorf("scoring failed: %w", err)
		}
		fmt.Printf("Warning: similarity scoring unavailable, reporting coverage only: %v\n", err)
		report = scorer.ScoreSets(result.ResumeSkills, result.JobSkills)
		result.Degraded = true
	}
	result.Report = report
	if opts.Verbose {
		printer.PrintMatchReport(report)
	}
	emitProgress(&opts, StepScore,
		fmt.Sprintf("Composite score %.1f (%s)", report.CompositeScore, report.Band), report)

	// Look up recommendations for the missing skills. Gaps the curated
	// library does not know are enriched with the LLM when available.
	library := recommend.NewLibrary(tax)
	recs, unknown := library.LookupAll(report.Missing)
	for _, skill := range unknown {
		if opts.Enricher == nil {
			result.UnknownGaps = append(result.UnknownGaps, skill)
			continue
		}
		rec, err := opts.Enricher.Enrich(ctx, skill, result.JobText)
		if err != nil {
			if opts.Verbose {
				fmt.Printf("[VERBOSE] enrichment failed for %s: %v\n", skill, err)
			}
			result.UnknownGaps = append(result.UnknownGaps, skill)
			continue
		}
		recs = append(recs, rec)
	}
	result.Recommendations = recs
	if opts.Verbose {
		printer.PrintRecommendations(recs)
	}
	emitProgress(&opts, StepRecommend,
		fmt.Sprintf("Prepared %d recommendations (%d unknown gaps)", len(recs), len(result.UnknownGaps)), nil)

	if database != nil && result.RunID != uuid.Nil {
		if err := database.SaveReport(ctx, result.RunID, report); err != nil {
			fmt.Printf("Warning: Failed to save report: %v\n", err)
		}
		if err := database.SaveRecommendations(ctx, result.RunID, recs); err != nil {
			fmt.Printf("Warning: Failed to save recommendations: %v\n", err)
		}
		if err := database.CompleteRun(ctx, result.RunID, db.StatusCompleted); err != nil {
			fmt.Printf("Warning: Failed to complete run: %v\n", err)
		}
	}

	return result, nil
}

// loadTaxonomy returns the taxonomy at path, or the built-in default when
// no path is given.
func loadTaxonomy(path string) (*taxonomy.Taxonomy, error) {
	if path == "" {
		return taxonomy.Default(), nil
	}
	return taxonomy.LoadFile(path)
}
