// Package pipeline drives the congestion detection flow for network pairs.
//
// For each (near, far) pair the Finder walks the precomputed lookback
// windows in order, issues one measurement query per window, flattens the
// response into events, derives the visualization links per event, and
// accumulates the rows into a per-pair sheet. Sheets aggregate into one
// report per near network.
//
// Execution is strictly sequential: networks, then far ASNs, then windows,
// one blocking call at a time. The measurement API is the bottleneck and
// serial queries keep the tool a polite client; cancellation is handled via
// context rather than concurrency.
package pipeline
