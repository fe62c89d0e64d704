package model

import "time"

// PairResult records the outcome of one (near, far) pair: the detected
// event count, or the error that made the pipeline skip the pair.
type PairResult struct {
	// Near is the near network of the pair.
	Near Network

	// Far is the far network of the pair.
	Far Network

	// Events is the number of detected congestion events.
	Events int

	// Err is the query failure that skipped the pair, if any.
	// A pair with zero events and a nil Err completed cleanly.
	Err error
}

// RunSummary aggregates the per-pair outcomes of a whole run.
type RunSummary struct {
	// Started is the run's anchor time.
	Started time.Time

	// Months is the lookback length in 30-day months.
	Months int

	// Pairs holds one result per processed (near, far) pair, in
	// processing order.
	Pairs []PairResult
}

// TotalEvents returns the number of events detected across all pairs.
func (s *RunSummary) TotalEvents() int {
	var n int
	for _, p := range s.Pairs {
		n += p.Events
	}
	return n
}
