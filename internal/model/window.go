package model

import "time"

// WindowLength is the fixed length of a single query window.
// The measurement API rejects range queries longer than 30 days, so a long
// lookback period is decomposed into windows of exactly this size.
const WindowLength = 30 * 24 * time.Hour

// Window is a half-open date range [Start, End) submitted as one query's
// start/end parameters. Windows are immutable once produced.
type Window struct {
	// Start is the inclusive lower bound of the window.
	Start time.Time

	// End is the exclusive upper bound of the window.
	// Always exactly 30 days after Start.
	End time.Time
}

// GenerateWindows produces the ordered sequence of query windows covering
// the lookback period of monthCount "months" ending at anchor.
//
// A month is approximated as a fixed 30-day block rather than a calendar
// month: boundaries are built by repeatedly subtracting 30 days from the
// anchor, and consecutive boundary pairs form the windows. The result is
// exactly monthCount contiguous, non-overlapping windows ordered oldest to
// newest, with the last window's End equal to anchor.
//
// monthCount of zero yields an empty slice: no window means no query, and
// the pair is treated as having zero events.
//
// This is a pure function of its arguments and may be called repeatedly
// with the same anchor to reproduce the same windows.
func GenerateWindows(monthCount int, anchor time.Time) []Window {
	if monthCount <= 0 {
		return nil
	}

	// Build monthCount+1 boundaries, oldest first.
	boundaries := make([]time.Time, monthCount+1)
	boundaries[monthCount] = anchor
	for i := monthCount - 1; i >= 0; i-- {
		boundaries[i] = boundaries[i+1].Add(-WindowLength)
	}

	windows := make([]Window, 0, monthCount)
	for i := 0; i < monthCount; i++ {
		windows = append(windows, Window{
			Start: boundaries[i],
			End:   boundaries[i+1],
		})
	}
	return windows
}
