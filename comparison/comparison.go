// Package comparison implements the side-by-side comparison selection: a
// small, persisted set of universities a client has picked to compare.
// It is a client-side concern with no HTTP surface of its own; servers
// never mount it on a route.
package comparison

import (
	"context"
	"errors"

	"github.com/uniscope/uniscope-api/model"
)

// MaxEntries caps how many universities one selection can hold.
const MaxEntries = 4

var (
	// ErrAlreadyAdded means the university is already in the selection.
	ErrAlreadyAdded = errors.New("Already in comparison")
	// ErrLimitReached means the selection is full.
	ErrLimitReached = errors.New("Comparison limit reached")
)

// Selector manages one client's comparison selection, writing through to
// its store on every mutation. It is not safe for concurrent use; a
// selection belongs to a single client session.
type Selector struct {
	store   Store
	entries []model.University
}

// NewSelector hydrates a selector from the store. A missing or empty
// persisted selection yields an empty selector.
func NewSelector(ctx context.Context, store Store) (*Selector, error) {
	entries, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return &Selector{store: store, entries: entries}, nil
}

// Add appends the university to the selection. Duplicates are detected
// by id, so two records with different slugs but one id count as the
// same entry.
func (s *Selector) Add(ctx context.Context, u model.University) error {
	for _, entry := range s.entries {
		if entry.ID == u.ID {
			return ErrAlreadyAdded
		}
	}
	if len(s.entries) >= MaxEntries {
		return ErrLimitReached
	}

	s.entries = append(s.entries, u)
	return s.store.Save(ctx, s.entries)
}

// Remove deletes the university with the given id. Removing an absent
// id is a no-op, not an error.
func (s *Selector) Remove(ctx context.Context, id string) error {
	for i, entry := range s.entries {
		if entry.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return s.store.Save(ctx, s.entries)
		}
	}
	return nil
}

// Clear empties the selection
func (s *Selector) Clear(ctx context.Context) error {
	s.entries = nil
	return s.store.Clear(ctx)
}

// Contains reports whether the university with the given id is selected
func (s *Selector) Contains(id string) bool {
	for _, entry := range s.entries {
		if entry.ID == id {
			return true
		}
	}
	return false
}

// List returns the selection in insertion order
func (s *Selector) List() []model.University {
	out := make([]model.University, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of selected universities
func (s *Selector) Len() int {
	return len(s.entries)
}

// BestValues identifies which selected university wins each highlighted
// column: best (lowest) rank, lowest USD tuition and highest
// international share. On ties the earlier entry wins.
type BestValues struct {
	BestRankID      string
	LowestTuitionID string
	HighestIntlID   string
}

// BestValues computes the highlight winners for the current selection.
// An empty selection yields zero values.
func (s *Selector) BestValues() BestValues {
	if len(s.entries) == 0 {
		return BestValues{}
	}

	best := BestValues{
		BestRankID:      s.entries[0].ID,
		LowestTuitionID: s.entries[0].ID,
		HighestIntlID:   s.entries[0].ID,
	}
	bestRank := s.entries[0].Rating
	lowestTuition := s.entries[0].TuitionAnnualUSD
	highestIntl := s.entries[0].InternationalStudentsPercent

	for _, entry := range s.entries[1:] {
		if entry.Rating < bestRank {
			bestRank = entry.Rating
			best.BestRankID = entry.ID
		}
		if entry.TuitionAnnualUSD < lowestTuition {
			lowestTuition = entry.TuitionAnnualUSD
			best.LowestTuitionID = entry.ID
		}
		if entry.InternationalStudentsPercent > highestIntl {
			highestIntl = entry.InternationalStudentsPercent
			best.HighestIntlID = entry.ID
		}
	}
	return best
}
