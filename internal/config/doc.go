// Package config provides configuration for congestionscan.
//
// Configuration comes from three layers: documented defaults (including the
// built-in near-network and far-ASN tables), an optional YAML configuration
// file, and CLI flags. The Config struct is populated once at startup and
// passed through the application by dependency injection; nothing mutates
// it after validation.
package config
