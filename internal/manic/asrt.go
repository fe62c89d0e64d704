package manic

import (
	"encoding/json"

	"github.com/nao1215/congestionscan/internal/model"
)

// AsrtResponse is the parsed body of an /asrt range query.
//
// The endpoint groups assertions by link: the top-level "data" array holds
// one group per congested link, and each group's nested "data" array holds
// the individual timestamped assertions. Groups without assertions appear
// with an empty nested array and carry no events.
//
// Data is a pointer so decoding can distinguish a response with zero groups
// ("data": []) from one that lacks the field entirely, which is malformed.
type AsrtResponse struct {
	// Data holds the assertion groups in the order the API returned them.
	Data *[]AssertionGroup `json:"data"`
}

// AssertionGroup is one link's worth of congestion assertions.
type AssertionGroup struct {
	// Data holds the group's assertions in the order the API returned them.
	Data []Assertion `json:"data"`
}

// Assertion is a single congestion assertion on the wire.
type Assertion struct {
	// Time is the assertion timestamp, an ISO-like string.
	Time string `json:"time"`

	// Congestion is the congestion measurement.
	Congestion CongestionValue `json:"congestion"`
}

// CongestionValue preserves the congestion measurement textually.
// The API reports it as either a JSON string or a JSON number depending on
// the assertion source, and the reports carry it through verbatim, so the
// value is never forced into a float.
type CongestionValue string

// UnmarshalJSON accepts both string and number encodings.
func (v *CongestionValue) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = CongestionValue(s)
		return nil
	}
	if string(b) == "null" {
		*v = ""
		return nil
	}
	*v = CongestionValue(b)
	return nil
}

// Events flattens the response into the normalized congestion events it
// asserts, skipping groups whose nested data is empty and preserving
// cross-group and intra-group order exactly as received. This order becomes
// the row order in report sheets.
//
// Each call walks the same parsed response again, so the extraction is
// restartable; the returned slice is freshly allocated.
func (r *AsrtResponse) Events() []model.Event {
	if r == nil || r.Data == nil {
		return nil
	}

	var events []model.Event
	for _, group := range *r.Data {
		if len(group.Data) == 0 {
			continue
		}
		for _, a := range group.Data {
			events = append(events, model.Event{
				Time:       a.Time,
				Congestion: string(a.Congestion),
			})
		}
	}
	return events
}
