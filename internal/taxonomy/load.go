package taxonomy

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/smartmatch/internal/schemas"
)

//go:embed taxonomy.schema.json
var taxonomySchema []byte

// fileFormat mirrors the taxonomy JSON file layout:
//
//	{"categories": [{"name": "...", "skills": [{"name": "...", "synonyms": [...]}]}]}
type fileFormat struct {
	Categories []fileCategory `json:"categories"`
}

type fileCategory struct {
	Name   string      `json:"name"`
	Skills []fileSkill `json:"skills"`
}

type fileSkill struct {
	Name     string   `json:"name"`
	Synonyms []string `json:"synonyms,omitempty"`
}

// LoadFile reads a taxonomy JSON file, validates it against the embedded
// schema, and builds a Taxonomy. Any structural problem is a startup error;
// a process must never begin serving analyses with a malformed taxonomy.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}
	return LoadBytes(data)
}

// LoadBytes validates and builds a Taxonomy from raw JSON.
func LoadBytes(data []byte) (*Taxonomy, error) {
	if err := schemas.ValidateBytes(taxonomySchema, data); err != nil {
		return nil, fmt.Errorf("taxonomy file rejected: %w", err)
	}

	var file fileFormat
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
	}

	var entries []Entry
	for _, category := range file.Categories {
		for _, skill := range category.Skills {
			entries = append(entries, Entry{
				CanonicalName: skill.Name,
				Category:      category.Name,
				Synonyms:      skill.Synonyms,
			})
		}
	}

	return New(entries)
}
