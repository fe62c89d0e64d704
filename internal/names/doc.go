// Package names resolves ASN identifiers to their registered names.
//
// The registered name is the one the measurement API's /asns endpoint
// reports for an ASN (e.g. ATT-INTERNET4 for AS7018). It is shown in the
// per-pair progress transcript, alongside the configured display names that
// label report files and worksheets.
//
// Resolution consults, in order: an in-run memo, the persistent name cache,
// and finally the remote /asns lookup. Each ASN is resolved remotely at
// most once per run, and the cache carries resolutions across runs.
//
// Name resolution failures are remote failures: the caller decides whether
// they abort the run or only the pair being processed, the same way query
// failures are scoped.
package names
