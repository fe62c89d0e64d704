package model

// Network identifies a network operator by ASN together with its resolved
// human-readable name.
//
// The display name is resolved once per ASN per run (see the names package)
// and the struct is read-only afterwards; all windows and events referencing
// the same ASN share one resolved identity.
type Network struct {
	// ASN is the Autonomous System Number as a decimal string (e.g. "7018").
	ASN string

	// Name is the human-readable operator name (e.g. "AT&T").
	Name string
}
