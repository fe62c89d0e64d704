// Package database provides SQLite-backed persistence for resolved ASN
// names.
//
// ASN display names change rarely, while a full run issues one /asns
// lookup per network it reports on. Caching resolved names across runs
// keeps repeat runs from re-asking the API for the same handful of names.
//
// The database lives in the user's XDG cache directory by default and is
// safe to delete at any time; it only memoizes remote lookups.
package database
