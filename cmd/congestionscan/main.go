// Package main provides the entry point for the congestionscan CLI.
//
// congestionscan finds instances of interdomain congestion between network
// operators and their peer ASNs over a bounded lookback history, using the
// MANIC measurement API, and writes one spreadsheet report per network with
// visualization links for every detected event.
//
// Usage:
//
//	congestionscan find
//	congestionscan find --months 24 --markdown
//
// See --help for all available options.
package main

// main is the entry point for congestionscan.
func main() {
	Execute()
}
