package metrics

// RunStats summarizes a generation run across one or more months.
type RunStats struct {
	MonthsRequested int `json:"monthsRequested"`
	MonthsGenerated int `json:"monthsGenerated"`
	DaysGenerated   int `json:"daysGenerated"`
	Failures        int `json:"failures,omitempty"`
}

// Add folds the outcome of a single month into the run totals.
func (s *RunStats) Add(days int, err error) {
	s.MonthsRequested++
	if err != nil {
		s.Failures++
		return
	}
	s.MonthsGenerated++
	s.DaysGenerated += days
}
