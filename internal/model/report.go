package model

// SheetHeader is the fixed header row written at row 0 of every report
// sheet. Data rows start at row 1.
var SheetHeader = []string{
	"Time",
	"Congestion",
	"Visualization - Day Granularity",
	"Visualization - Month Granularity",
}

// Row is one detected congestion event as it appears in a report sheet:
// the assertion timestamp and value plus the two derived visualization
// links.
type Row struct {
	// Time is the assertion timestamp, verbatim from the API.
	Time string

	// Congestion is the congestion value, verbatim from the API.
	Congestion string

	// DayLink is the day-granularity visualization URL.
	DayLink string

	// MonthLink is the month-granularity visualization URL.
	MonthLink string
}

// Sheet accumulates the detected events for one (near, far) network pair.
// Rows are appended in detection order, which follows window order and the
// API's assertion order within each window; the row index therefore
// increases monotonically across windows and is never reset per window.
type Sheet struct {
	// Far is the far network this sheet covers.
	Far Network

	// Rows are the accumulated event rows, oldest window first.
	Rows []Row
}

// NewSheet creates an empty sheet for the given far network.
func NewSheet(far Network) *Sheet {
	return &Sheet{Far: far}
}

// Append adds one event row to the sheet.
func (s *Sheet) Append(row Row) {
	s.Rows = append(s.Rows, row)
}

// HasEvents reports whether the sheet contains at least one event row.
func (s *Sheet) HasEvents() bool {
	return len(s.Rows) > 0
}

// Report owns the per-far-network sheets accumulated for one near network.
// A report is persisted as a single workbook named after the near network's
// display name, but only when at least one sheet is non-empty.
type Report struct {
	// Near is the near network this report covers.
	Near Network

	// Sheets holds one non-empty sheet per far network with detected
	// events, in processing order.
	Sheets []*Sheet
}

// NewReport creates an empty report for the given near network.
func NewReport(near Network) *Report {
	return &Report{Near: near}
}

// AddSheet attaches a pair's sheet to the report. Sheets with zero rows are
// discarded: a pair without detected events contributes nothing to the
// workbook.
func (r *Report) AddSheet(s *Sheet) {
	if s == nil || !s.HasEvents() {
		return
	}
	r.Sheets = append(r.Sheets, s)
}

// EventCount returns the total number of event rows across all sheets.
func (r *Report) EventCount() int {
	var n int
	for _, s := range r.Sheets {
		n += len(s.Rows)
	}
	return n
}

// HasEvents reports whether the report should be persisted. A report whose
// sheets are all empty is never written, and its absence is not an error.
func (r *Report) HasEvents() bool {
	return r.EventCount() > 0
}
