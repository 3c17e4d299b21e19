package model

// SortOption selects the ordering applied after filtering.
type SortOption string

const (
	SortRanking      SortOption = "ranking"
	SortTuitionLow   SortOption = "tuition-low"
	SortTuitionHigh  SortOption = "tuition-high"
	SortIntlStudents SortOption = "intl-students"
	SortBestFit      SortOption = "best-fit"
)

// TuitionRange is an inclusive [min, max] bound on tuitionAnnualUSD.
type TuitionRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterOptions narrows the catalog along independent axes. A nil/empty
// field means "no restriction on this axis"; HasGrant false means the
// scholarship filter is off, not "no scholarship".
type FilterOptions struct {
	Countries    []string      `json:"countries,omitempty"`
	TuitionRange *TuitionRange `json:"tuitionRange,omitempty"`
	DegreeLevels []string      `json:"degreeLevels,omitempty"`
	Majors       []string      `json:"majors,omitempty"`
	HasGrant     bool          `json:"hasGrant,omitempty"`
}
