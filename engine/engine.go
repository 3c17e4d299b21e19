// Package engine implements the pure filter/sort/score pipeline applied
// to the university catalog. It performs no I/O and keeps no state; the
// same inputs always produce the same ordering, with ties resolved by
// pre-sort position.
package engine

import (
	"sort"
	"strings"

	"github.com/uniscope/uniscope-api/model"
)

// Apply runs the full pipeline: free-text filter, the five structured
// filters in fixed order, then a single stable sort by the chosen key.
// The input slice is never modified.
func Apply(universities []model.University, query string, filters model.FilterOptions, sortBy model.SortOption) []model.University {
	result := make([]model.University, len(universities))
	copy(result, universities)

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		result = keep(result, func(u model.University) bool {
			return strings.Contains(strings.ToLower(u.Name), q) ||
				strings.Contains(strings.ToLower(u.City), q) ||
				strings.Contains(strings.ToLower(u.CountryFull), q)
		})
	}

	if len(filters.Countries) > 0 {
		allowed := toSet(filters.Countries)
		result = keep(result, func(u model.University) bool {
			return allowed[u.CountryFull]
		})
	}

	if r := filters.TuitionRange; r != nil {
		result = keep(result, func(u model.University) bool {
			return u.TuitionAnnualUSD >= r.Min && u.TuitionAnnualUSD <= r.Max
		})
	}

	if len(filters.DegreeLevels) > 0 {
		result = keep(result, func(u model.University) bool {
			for _, level := range filters.DegreeLevels {
				if u.OffersLevel(level) {
					return true
				}
			}
			return false
		})
	}

	if len(filters.Majors) > 0 {
		result = keep(result, func(u model.University) bool {
			for _, major := range filters.Majors {
				if u.HasStrongMajor(major) {
					return true
				}
			}
			return false
		})
	}

	if filters.HasGrant {
		result = keep(result, func(u model.University) bool {
			return u.HasGrant
		})
	}

	Sort(result, sortBy)
	return result
}

// Sort orders the slice in place by the given key. Sorts are stable so
// that equal keys preserve the incoming (catalog) order.
func Sort(universities []model.University, sortBy model.SortOption) {
	switch sortBy {
	case model.SortRanking:
		sort.SliceStable(universities, func(i, j int) bool {
			return universities[i].Rating < universities[j].Rating
		})
	case model.SortTuitionLow:
		sort.SliceStable(universities, func(i, j int) bool {
			return universities[i].TuitionAnnualUSD < universities[j].TuitionAnnualUSD
		})
	case model.SortTuitionHigh:
		sort.SliceStable(universities, func(i, j int) bool {
			return universities[i].TuitionAnnualUSD > universities[j].TuitionAnnualUSD
		})
	case model.SortIntlStudents:
		sort.SliceStable(universities, func(i, j int) bool {
			return universities[i].InternationalStudentsPercent > universities[j].InternationalStudentsPercent
		})
	case model.SortBestFit:
		sort.SliceStable(universities, func(i, j int) bool {
			return BestFitScore(universities[i]) > BestFitScore(universities[j])
		})
	}
}

// BestFitScore computes the fixed composite heuristic used by the
// best-fit sort. Rank and tuition contributions clamp at zero so a very
// low rank or very high tuition never subtracts from the other terms.
func BestFitScore(u model.University) float64 {
	score := max(0, 100-float64(u.Rating)) * 2
	score += max(0, (100000-u.TuitionAnnualUSD)/1000)
	if u.HasGrant {
		score += 30
	}
	score += u.InternationalStudentsPercent
	score += float64(len(u.StrongMajors)) * 5
	return score
}

// Countries returns the distinct full country names present in the
// list, sorted alphabetically. Used to populate the country filter.
func Countries(universities []model.University) []string {
	return distinct(universities, func(u model.University) []string {
		return []string{u.CountryFull}
	})
}

// StrongMajors returns the distinct strong majors across the list,
// sorted alphabetically. Used to populate the major filter.
func StrongMajors(universities []model.University) []string {
	return distinct(universities, func(u model.University) []string {
		return u.StrongMajors
	})
}

func keep(universities []model.University, pred func(model.University) bool) []model.University {
	filtered := universities[:0]
	for _, u := range universities {
		if pred(u) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func distinct(universities []model.University, extract func(model.University) []string) []string {
	seen := map[string]bool{}
	values := []string{}
	for _, u := range universities {
		for _, v := range extract(u) {
			if v != "" && !seen[v] {
				seen[v] = true
				values = append(values, v)
			}
		}
	}
	sort.Strings(values)
	return values
}
