package model

// ResultStatus is the outcome of one iteration of the generation loop
type ResultStatus string

const (
	StatusSaved    ResultStatus = "saved"     // box printed and line appended
	StatusNotSaved ResultStatus = "not_saved" // box printed, append failed
	StatusSkipped  ResultStatus = "skipped"   // generation failed, nothing printed
)

// Result represents the outcome for a single wallet index
type Result struct {
	Sequence int
	Status   ResultStatus
	Err      error
}

// Summary aggregates results of a whole run
type Summary struct {
	Requested int `json:"requested"`
	Generated int `json:"generated"` // boxes printed
	Saved     int `json:"saved"`     // lines appended
	Skipped   int `json:"skipped"`
}

// Add counts a single iteration result.
func (s *Summary) Add(r Result) {
	switch r.Status {
	case StatusSaved:
		s.Generated++
		s.Saved++
	case StatusNotSaved:
		s.Generated++
	case StatusSkipped:
		s.Skipped++
	}
}

// Unsaved returns the number of wallets that were displayed but not written.
func (s *Summary) Unsaved() int {
	return s.Generated - s.Saved
}
