// Package model provides the core data structures for congestion detection.
//
// This package contains the domain types shared across the application:
//   - Window: a fixed-size date range submitted as one measurement query
//   - Event: a single timestamped congestion assertion
//   - Network: an ASN paired with its resolved display name
//   - Sheet and Report: accumulated per-pair and per-network results
//
// Design decision: We keep data structures separate from the API client and
// report writers so that the orchestration pipeline can be tested with stub
// collaborators, and new output formats can be added without touching the
// domain types.
package model
