package record

import (
	"encoding/json"
	"os"
	"strings"

	apperrors "github.com/cadre-oss/pyvengers/internal/errors"
	"github.com/cadre-oss/pyvengers/internal/telemetry"
)

// Store reads and rewrites the whole collection against one backing file.
// Nothing is cached between calls; every operation starts from disk.
type Store struct {
	path   string
	logger *telemetry.Logger
}

// NewStore creates a store backed by the file at path.
func NewStore(path string, logger *telemetry.Logger) *Store {
	if logger == nil {
		logger = telemetry.Discard()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full collection. A missing file is an empty collection.
func (s *Store) Load() ([]Record, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("data file absent, treating as empty", "path", s.path)
			return []Record{}, nil
		}
		return nil, apperrors.Wrapf(apperrors.CodeDataRead, err, "failed to read %s", s.path)
	}

	var records []Record
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, apperrors.Wrapf(apperrors.CodeDataParse, err, "failed to parse %s", s.path).
			WithSuggestion("Fix the JSON in the data file or move it aside to start over")
	}
	if records == nil {
		records = []Record{}
	}

	s.logger.Debug("loaded records", "path", s.path, "count", len(records))
	return records, nil
}

// Save overwrites the backing file with the full collection.
func (s *Store) Save(records []Record) error {
	if records == nil {
		records = []Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return apperrors.Wrap(apperrors.CodeDataWrite, "failed to marshal records", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return apperrors.Wrapf(apperrors.CodeDataWrite, err, "failed to write %s", s.path)
	}

	s.logger.Debug("saved records", "path", s.path, "count", len(records))
	return nil
}

// Add appends a new record to the end of the collection. Duplicate names
// are allowed.
func (s *Store) Add(name, superpower, mission string) error {
	records, err := s.Load()
	if err != nil {
		return err
	}

	records = append(records, New(name, superpower, mission))
	return s.Save(records)
}

// Search returns every record whose name contains query, case-sensitively,
// in collection order.
func (s *Store) Search(query string) ([]Record, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}

	matches := make([]Record, 0)
	for _, r := range records {
		if strings.Contains(r.Name, query) {
			matches = append(matches, r)
		}
	}

	s.logger.Debug("search complete", "query", query, "matches", len(matches))
	return matches, nil
}

// List returns the full collection unchanged.
func (s *Store) List() ([]Record, error) {
	return s.Load()
}
