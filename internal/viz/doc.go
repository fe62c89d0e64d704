// Package viz derives visualization links for detected congestion events.
//
// The MANIC visualization tool is a Grafana dashboard that plots all links
// from a vantage-point network to a neighbor network over a date range. For
// every detected event, two links are derived: a day-granularity view
// anchored on the event day, and a month-granularity view centered on it.
//
// Link derivation is pure string manipulation; the links are written into
// reports and never fetched by this tool.
package viz
