package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/uniscope/uniscope-api/model"
)

// SearchLimit caps how many matches Search returns, in catalog order.
const SearchLimit = 10

// ErrNotFound is returned by GetBySlug when no record has the slug.
var ErrNotFound = errors.New("university not found")

//go:embed data/universities.json
var embeddedSnapshot []byte

// snapshot is the on-disk shape of the bundled dataset.
type snapshot struct {
	Universities []model.University `json:"universities"`
}

// Store answers read-only queries against the university snapshot. It is
// populated once before serving begins and never mutated afterwards, so
// concurrent readers need no locking.
type Store struct {
	universities []model.University
	bySlug       map[string]int
}

// Load reads the snapshot from the given file path, or from the bundled
// dataset when path is empty, and validates it. A failure here is fatal
// to process startup, not a per-call error.
func Load(path string) (*Store, error) {
	raw := embeddedSnapshot
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read university data file: %w", err)
		}
		raw = data
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse university data: %w", err)
	}

	store, err := New(snap.Universities)
	if err != nil {
		return nil, err
	}

	log.Printf("Loaded %d universities into memory", len(snap.Universities))
	return store, nil
}

// New builds a store from an already-decoded collection, validating the
// catalog invariants: unique ids and slugs, non-negative USD tuition, a
// positive rating, and a non-empty set of known degree levels.
func New(universities []model.University) (*Store, error) {
	knownLevels := map[string]bool{
		model.DegreeBachelor: true,
		model.DegreeMaster:   true,
		model.DegreePhD:      true,
	}

	bySlug := make(map[string]int, len(universities))
	seenIDs := make(map[string]bool, len(universities))

	for i, u := range universities {
		if u.ID == "" || u.Slug == "" {
			return nil, fmt.Errorf("university at index %d is missing id or slug", i)
		}
		if seenIDs[u.ID] {
			return nil, fmt.Errorf("duplicate university id %q", u.ID)
		}
		if _, ok := bySlug[u.Slug]; ok {
			return nil, fmt.Errorf("duplicate university slug %q", u.Slug)
		}
		if u.TuitionAnnualUSD < 0 {
			return nil, fmt.Errorf("university %q has negative USD tuition", u.Slug)
		}
		if u.Rating <= 0 {
			return nil, fmt.Errorf("university %q has non-positive rating %d", u.Slug, u.Rating)
		}
		if len(u.DegreeLevels) == 0 {
			return nil, fmt.Errorf("university %q has no degree levels", u.Slug)
		}
		for _, level := range u.DegreeLevels {
			if !knownLevels[level] {
				return nil, fmt.Errorf("university %q has unknown degree level %q", u.Slug, level)
			}
		}
		seenIDs[u.ID] = true
		bySlug[u.Slug] = i
	}

	return &Store{universities: universities, bySlug: bySlug}, nil
}

// ListAll returns every record in insertion order. The returned slice is
// a copy so callers may reorder it freely. The in-memory store cannot
// fail here; the error is part of the store contract so alternative
// implementations can report one.
func (s *Store) ListAll() ([]model.University, error) {
	out := make([]model.University, len(s.universities))
	copy(out, s.universities)
	return out, nil
}

// GetBySlug returns the record whose slug exactly matches, case
// sensitively. A miss returns ErrNotFound.
func (s *Store) GetBySlug(slug string) (model.University, error) {
	i, ok := s.bySlug[slug]
	if !ok {
		return model.University{}, ErrNotFound
	}
	return s.universities[i], nil
}

// Search matches the query case-insensitively against name, city and
// full country name. A blank query returns no results rather than the
// whole catalog. Results keep catalog order and are capped at
// SearchLimit; there is no relevance ranking.
func (s *Store) Search(query string) ([]model.University, error) {
	results := []model.University{}
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return results, nil
	}

	for _, u := range s.universities {
		if strings.Contains(strings.ToLower(u.Name), term) ||
			strings.Contains(strings.ToLower(u.City), term) ||
			strings.Contains(strings.ToLower(u.CountryFull), term) {
			results = append(results, u)
			if len(results) == SearchLimit {
				break
			}
		}
	}
	return results, nil
}

// Count returns the number of records in the catalog.
func (s *Store) Count() int {
	return len(s.universities)
}
