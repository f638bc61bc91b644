package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/smartmatch/internal/ingestion"
	"github.com/jonathan/smartmatch/internal/observability"
	"github.com/jonathan/smartmatch/internal/parsing"
)

var parseCommand = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume into classified sections",
	Long:  "Reads a resume file, classifies each line into contact/summary/skills/experience/education/other, and prints the sections.",
	RunE:  runParseCmd,
}

var (
	parseResume string
	parseJSON   bool
)

func init() {
	parseCommand.Flags().StringVarP(&parseResume, "resume", "r", "", "Path to resume file (txt or pdf)")
	parseCommand.Flags().BoolVar(&parseJSON, "json", false, "Print sections as JSON")
	_ = parseCommand.MarkFlagRequired("resume")

	rootCmd.AddCommand(parseCommand)
}

func runParseCmd(_ *cobra.Command, _ []string) error {
	text, _, err := ingestion.IngestFromFile(parseResume)
	if err != nil {
		return fmt.Errorf("failed to ingest resume: %w", err)
	}

	doc := parsing.NewSectionParser().Parse(text)

	if parseJSON {
		out, err := json.MarshalIndent(doc.Sections(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal sections: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintSections(doc)
	return nil
}
