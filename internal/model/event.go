package model

// Event is a single congestion assertion reported by the measurement API.
//
// Events carry no identity beyond their timestamp and value. Lookback
// windows are disjoint, so the same assertion should never appear twice,
// but the pipeline performs no deduplication.
type Event struct {
	// Time is the assertion timestamp as received from the API.
	// The value is an ISO-like string (e.g. "2019-04-10T00:00:00");
	// it is preserved verbatim for report output and only its date
	// prefix is parsed when deriving visualization ranges.
	Time string

	// Congestion is the congestion measurement for the assertion.
	// The API reports it as either a JSON string or a JSON number;
	// it is preserved textually rather than forced into a float.
	Congestion string
}
