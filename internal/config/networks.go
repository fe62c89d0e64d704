package config

import "github.com/nao1215/congestionscan/internal/model"

// DefaultNearNetworks returns the built-in near-network table: the access
// and transit operators reports are generated for. The display names are
// the operator names reports are filed under; the registered ASN names
// differ (e.g. AS7018 is registered as ATT-INTERNET4).
func DefaultNearNetworks() []model.Network {
	return []model.Network{
		{ASN: "7018", Name: "AT&T"},
		{ASN: "209", Name: "CENTURYLINK"},
		{ASN: "20115", Name: "CHARTER"},
		{ASN: "7922", Name: "COMCAST"},
		{ASN: "22773", Name: "COX"},
		{ASN: "6939", Name: "HURRICANE"},
		{ASN: "3356", Name: "LEVEL3"},
		{ASN: "6079", Name: "RCS"},
		{ASN: "18214", Name: "TELUS-INTERNATIONAL"},
		{ASN: "852", Name: "TELUS-CANADA"},
		{ASN: "7843", Name: "TIME-WARNER-CABLE"},
		{ASN: "16115", Name: "VERIZON-ASRANK"},
		{ASN: "701", Name: "VERIZON-MANIC"},
	}
}

// DefaultFarNetworks returns the built-in far-ASN table: the content and
// transit networks each near network is checked against. The full far set
// of a run additionally includes the near networks themselves; see
// Config.MergeNearIntoFar.
func DefaultFarNetworks() []model.Network {
	return []model.Network{
		{ASN: "16509", Name: "AMAZON-02"},
		{ASN: "40027", Name: "NETFLIX"},
		{ASN: "20940", Name: "AKAMAI"},
		{ASN: "8075", Name: "MICROSOFT"},
		{ASN: "174", Name: "COGENT"},
	}
}
