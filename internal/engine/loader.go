package engine

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"healthbot/internal/models"
)

// Load status constants
const (
	LoadOK        = "loaded"
	LoadMissing   = "source_missing"
	LoadMalformed = "source_malformed"
)

// LoadResult describes the outcome of a knowledge-base load. A failed
// load is not an error condition for the engine: it degrades to an empty
// knowledge base and the caller decides whether to log or alert.
type LoadResult struct {
	Status string
	Count  int
	Err    error
}

// intentsFile is the on-disk shape of a knowledge-base source.
// Unknown fields are ignored; a missing top-level intents field
// yields an empty list.
type intentsFile struct {
	Intents []models.Intent `json:"intents" yaml:"intents"`
}

// loadIntents reads the knowledge base at path. Read and parse failures
// are recovered into an empty intent list per availability-over-strictness
// policy; the LoadResult carries the reason.
func loadIntents(path string) ([]models.Intent, LoadResult) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, LoadResult{Status: LoadMissing, Err: err}
	}

	var file intentsFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		err = json.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, LoadResult{Status: LoadMalformed, Err: err}
	}

	return file.Intents, LoadResult{Status: LoadOK, Count: len(file.Intents)}
}
