package model

// Known degree levels offered by universities in the catalog.
const (
	DegreeBachelor = "Bachelor"
	DegreeMaster   = "Master"
	DegreePhD      = "PhD"
)

// University represents a single institution in the catalog.
// The JSON field names match the wire format served to clients, so the
// struct doubles as both the snapshot schema and the API response shape.
type University struct {
	ID                           string                `json:"id"`
	Slug                         string                `json:"slug"`
	Name                         string                `json:"name"`
	Country                      string                `json:"country"`
	CountryFull                  string                `json:"countryFull"`
	City                         string                `json:"city"`
	Founded                      *int                  `json:"founded"`
	Rating                       int                   `json:"rating"`
	TuitionAnnual                float64               `json:"tuitionAnnual"`
	TuitionAnnualUSD             float64               `json:"tuitionAnnualUSD"`
	Currency                     string                `json:"currency"`
	HasGrant                     bool                  `json:"hasGrant"`
	Languages                    []string              `json:"languages"`
	DegreeLevels                 []string              `json:"degreeLevels"`
	Majors                       []string              `json:"majors"`
	StrongMajors                 []string              `json:"strongMajors"`
	Summary                      string                `json:"summary"`
	Tagline                      string                `json:"tagline"`
	Website                      string                `json:"website"`
	Logo                         string                `json:"logo,omitempty"`
	EmploymentRate               *float64              `json:"employmentRate"`
	InternationalStudentsPercent float64               `json:"internationalStudentsPercent"`
	Cases                        []Case                `json:"cases"`
	Deadlines                    []Deadline            `json:"deadlines"`
	AdmissionRequirements        AdmissionRequirements `json:"admissionRequirements"`
}

// Case is an alumni success story attached to a university.
type Case struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Link    string `json:"link,omitempty"`
}

// Deadline is one admission deadline round for a given level and term.
type Deadline struct {
	Level        string  `json:"level"`
	Term         string  `json:"term"`
	RoundName    string  `json:"roundName"`
	DeadlineDate *string `json:"deadlineDate"`
	Notes        string  `json:"notes"`
	Link         string  `json:"link,omitempty"`
}

// LevelRequirements holds the admission requirements for one degree level.
type LevelRequirements struct {
	GPA                    string `json:"gpa"`
	StandardizedTests      string `json:"standardizedTests"`
	EnglishProficiency     string `json:"englishProficiency"`
	AdditionalRequirements string `json:"additionalRequirements"`
	ApplicationDeadline    string `json:"applicationDeadline"`
}

// AdmissionRequirements is the two-way bachelor/master requirements block.
type AdmissionRequirements struct {
	Bachelor LevelRequirements `json:"bachelor"`
	Master   LevelRequirements `json:"master"`
}

// OffersLevel reports whether the university offers the given degree level.
func (u *University) OffersLevel(level string) bool {
	for _, l := range u.DegreeLevels {
		if l == level {
			return true
		}
	}
	return false
}

// HasStrongMajor reports whether the given major is one of the
// university's strong majors (not merely an offered major).
func (u *University) HasStrongMajor(major string) bool {
	for _, m := range u.StrongMajors {
		if m == major {
			return true
		}
	}
	return false
}
