package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IngestFromFile reads a resume or job description from disk, cleans it, and
// returns the text with metadata. PDF files are detected by extension and
// run through the PDF text extractor; anything else is treated as plain text.
func IngestFromFile(path string) (string, *Metadata, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var content string
	switch ext {
	case ".pdf":
		text, err := ExtractPDFText(path)
		if err != nil {
			return "", nil, fmt.Errorf("failed to extract PDF text: %w", err)
		}
		content = text
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return "", nil, fmt.Errorf("file not found: %w", err)
			}
			return "", nil, fmt.Errorf("failed to read file: %w", err)
		}
		content = string(data)
	}

	cleanedText := CleanText(content)
	metadata := NewMetadata(cleanedText, "")
	metadata.Source = path

	return cleanedText, metadata, nil
}
