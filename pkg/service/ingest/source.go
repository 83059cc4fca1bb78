package ingest

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
)

// Record is one entry of the bulk source.
type Record struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

// Source provides the finite sequence of records to ingest.
type Source interface {
	Load(ctx context.Context) ([]Record, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) ([]Record, error)

func (f SourceFunc) Load(ctx context.Context) ([]Record, error) {
	return f(ctx)
}

// FileSource reads records from a JSON file holding an array of
// {make, model, year} objects.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(ctx context.Context) ([]Record, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read bulk source", goerr.V("path", s.path))
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, goerr.Wrap(err, "failed to parse bulk source", goerr.V("path", s.path))
	}

	return records, nil
}
