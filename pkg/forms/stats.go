package forms

// Stats summarizes visit and submission counters.
type Stats struct {
	Visits         int     `json:"visits"`
	Submissions    int     `json:"submissions"`
	SubmissionRate float64 `json:"submissionRate"`
	BounceRate     float64 `json:"bounceRate"`
}

// ComputeStats derives the rates from raw counters. Rates are percentages
// and both are zero when there are no visits.
func ComputeStats(visits, submissions int) Stats {
	stats := Stats{Visits: visits, Submissions: submissions}
	if visits > 0 {
		stats.SubmissionRate = float64(submissions) / float64(visits) * 100
		stats.BounceRate = 100 - stats.SubmissionRate
	}
	return stats
}

// StatsOf aggregates the counters of forms.
func StatsOf(list []Form) Stats {
	var visits, submissions int
	for _, form := range list {
		visits += form.Visits
		submissions += form.Submissions
	}
	return ComputeStats(visits, submissions)
}
